package services

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/hints"

	"github.com/localnerve/truckerdb/internal/models"
	"github.com/localnerve/truckerdb/internal/registry"
	"github.com/localnerve/truckerdb/internal/storage"
)

// Store implements list/get/create/update/delete for one record type. The
// registry schema supplies the table, key column and updatable column set;
// the model type T supplies the row shape.
type Store[T any] struct {
	db           *gorm.DB
	files        *storage.Store
	schema       registry.Schema
	beforeUpdate func(*T)
}

// NewStore builds a Store for the given entity schema.
func NewStore[T any](db *gorm.DB, files *storage.Store, schema registry.Schema) *Store[T] {
	return &Store[T]{db: db, files: files, schema: schema}
}

// OnUpdate installs a hook run on the incoming row before an update is
// written. Used to recompute server-owned columns.
func (s *Store[T]) OnUpdate(fn func(*T)) *Store[T] {
	s.beforeUpdate = fn
	return s
}

// Schema returns the registry schema the store serves.
func (s *Store[T]) Schema() registry.Schema {
	return s.schema
}

// List returns every row. An empty table yields an empty slice, not an error.
func (s *Store[T]) List() ([]T, error) {
	rows := make([]T, 0)
	err := s.db.
		Clauses(hints.CommentBefore("select", "list "+s.schema.Name)).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.schema.Name, err)
	}
	return rows, nil
}

// Get returns the row with the given key.
func (s *Store[T]) Get(key interface{}) (*T, error) {
	var row T
	err := s.db.Where(s.schema.KeyField+" = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s %v: %w", s.schema.Name, key, err)
	}
	return &row, nil
}

// Create inserts a new row. A duplicate key maps to ErrConflict.
func (s *Store[T]) Create(row *T) error {
	err := s.db.Create(row).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	if err != nil {
		return fmt.Errorf("create %s: %w", s.schema.Name, err)
	}
	return nil
}

// Update fully replaces the non-key columns of the keyed row. The write
// selects the schema's column set explicitly so fields omitted from the
// request body are cleared, not preserved.
func (s *Store[T]) Update(key interface{}, row *T) error {
	if s.beforeUpdate != nil {
		s.beforeUpdate(row)
	}
	res := s.db.Model(new(T)).
		Where(s.schema.KeyField+" = ?", key).
		Select(s.schema.Columns).
		Updates(row)
	if res.Error != nil {
		return fmt.Errorf("update %s %v: %w", s.schema.Name, key, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the keyed row and its attachment rows in one transaction.
// Files come off disk only after the transaction commits, so a rollback
// never orphans database rows pointing at deleted files.
func (s *Store[T]) Delete(key interface{}) error {
	var orphaned []string

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if doc := s.schema.Documents; doc != nil {
			var docs []models.Document
			owner := fmt.Sprint(key)
			if err := tx.Table(doc.Table).
				Where("owner_key = ?", owner).
				Find(&docs).Error; err != nil {
				return err
			}
			for _, d := range docs {
				orphaned = append(orphaned, d.URL)
			}
			if len(docs) > 0 {
				if err := tx.Table(doc.Table).
					Where("owner_key = ?", owner).
					Delete(&models.Document{}).Error; err != nil {
					return err
				}
			}
		}

		res := tx.Where(s.schema.KeyField+" = ?", key).Delete(new(T))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete %s %v: %w", s.schema.Name, key, err)
	}

	for _, name := range orphaned {
		if err := s.files.Remove(s.schema.Documents.Dir, name); err != nil {
			log.Printf("delete %s %v: orphaned file %s not removed: %v", s.schema.Name, key, name, err)
		}
	}
	return nil
}
