package models

import (
	"github.com/localnerve/truckerdb/internal/types"
)

// Document is the shared row shape for every per-entity attachments table
// (employee_documents, truck_documents, fine_documents, ...). The concrete
// table is selected at query time with db.Table, so all attachment tables
// share one normalized column set.
type Document struct {
	ID         int64      `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	OwnerKey   string     `gorm:"column:owner_key;size:255;not null;index" json:"owner"`
	Type       string     `gorm:"size:64;index" json:"type,omitempty"`
	URL        string     `gorm:"size:512;not null" json:"url"`
	UploadedAt types.Date `gorm:"column:uploaded_at" json:"uploaded_at"`
}
