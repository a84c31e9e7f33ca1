package services

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"gorm.io/gorm"
	"gorm.io/hints"

	"github.com/localnerve/truckerdb/internal/models"
	"github.com/localnerve/truckerdb/internal/registry"
	"github.com/localnerve/truckerdb/internal/storage"
	"github.com/localnerve/truckerdb/internal/types"
)

// Documents manages the attachment rows and files of one entity. Typed
// entities hold one row per (owner, type) upload and accumulate; untyped
// entities hold a single current receipt per owner, replaced on upload.
type Documents struct {
	db     *gorm.DB
	files  *storage.Store
	schema registry.Schema
}

// NewDocuments builds a Documents manager for an entity schema that carries
// an attachments table.
func NewDocuments(db *gorm.DB, files *storage.Store, schema registry.Schema) *Documents {
	if schema.Documents == nil {
		panic("services: entity " + schema.Name + " has no documents table")
	}
	return &Documents{db: db, files: files, schema: schema}
}

func (d *Documents) table() *gorm.DB {
	return d.db.Table(d.schema.Documents.Table)
}

// storedName builds the deterministic on-disk name for an upload.
func (d *Documents) storedName(owner, docType, filename string) string {
	filename = filepath.Base(filename)
	doc := d.schema.Documents
	if doc.Typed {
		return fmt.Sprintf("%s%s_%s_%s", doc.Prefix, owner, docType, filename)
	}
	return fmt.Sprintf("%s%s_%s", doc.Prefix, owner, filename)
}

// List returns the attachment rows of an owner. An owner with no rows is
// ErrNotFound.
func (d *Documents) List(owner string) ([]models.Document, error) {
	var docs []models.Document
	err := d.table().
		Clauses(hints.CommentBefore("select", "documents "+d.schema.Name)).
		Where("owner_key = ?", owner).
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("list %s documents for %s: %w", d.schema.Name, owner, err)
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	return docs, nil
}

// Upload stores a document file and its row. For replace-on-upload entities
// the previous receipt (file and row) is removed first, so at most one
// current receipt exists per owner.
func (d *Documents) Upload(owner, docType, filename string, r io.Reader) (*models.Document, error) {
	doc := d.schema.Documents

	if doc.Replace {
		var old []models.Document
		if err := d.table().Where("owner_key = ?", owner).Find(&old).Error; err != nil {
			return nil, fmt.Errorf("find previous %s receipt for %s: %w", d.schema.Name, owner, err)
		}
		for _, prev := range old {
			if err := d.files.Remove(doc.Dir, prev.URL); err != nil {
				return nil, err
			}
		}
		if len(old) > 0 {
			if err := d.table().Where("owner_key = ?", owner).
				Delete(&models.Document{}).Error; err != nil {
				return nil, fmt.Errorf("clear previous %s receipt for %s: %w", d.schema.Name, owner, err)
			}
		}
	}

	name := d.storedName(owner, docType, filename)
	if err := d.files.Save(doc.Dir, name, r); err != nil {
		return nil, err
	}

	row := models.Document{
		OwnerKey:   owner,
		Type:       docType,
		URL:        name,
		UploadedAt: types.Today(),
	}
	if err := d.table().Create(&row).Error; err != nil {
		d.files.Remove(doc.Dir, name)
		return nil, fmt.Errorf("record %s document for %s: %w", d.schema.Name, owner, err)
	}
	return &row, nil
}

// Resolve finds the first matching attachment and returns its on-disk path.
// A row whose file is gone from disk resolves to ErrFileMissing.
func (d *Documents) Resolve(owner, docType string) (string, *models.Document, error) {
	q := d.table().Where("owner_key = ?", owner)
	if d.schema.Documents.Typed {
		q = q.Where("type = ?", docType)
	}

	var row models.Document
	err := q.Order("id").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrNotFound
	}
	if err != nil {
		return "", nil, fmt.Errorf("resolve %s document for %s: %w", d.schema.Name, owner, err)
	}

	if !d.files.Exists(d.schema.Documents.Dir, row.URL) {
		return "", &row, ErrFileMissing
	}
	return d.files.Path(d.schema.Documents.Dir, row.URL), &row, nil
}

// Delete removes every matching attachment, files before rows. No match is
// ErrNotFound.
func (d *Documents) Delete(owner, docType string) error {
	q := d.table().Where("owner_key = ?", owner)
	if d.schema.Documents.Typed {
		q = q.Where("type = ?", docType)
	}

	var docs []models.Document
	if err := q.Find(&docs).Error; err != nil {
		return fmt.Errorf("find %s documents for %s: %w", d.schema.Name, owner, err)
	}
	if len(docs) == 0 {
		return ErrNotFound
	}

	for _, row := range docs {
		if err := d.files.Remove(d.schema.Documents.Dir, row.URL); err != nil {
			return err
		}
		if err := d.table().Where("id = ?", row.ID).
			Delete(&models.Document{}).Error; err != nil {
			return fmt.Errorf("delete %s document row %d: %w", d.schema.Name, row.ID, err)
		}
	}
	return nil
}
