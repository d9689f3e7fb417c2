package wiki

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Export records one wiki data export.
type Export struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Entity    string    `gorm:"column:entity;size:64;index" json:"entity"`
	FileName  string    `gorm:"column:file_name;size:255" json:"file_name"`
	Records   int       `gorm:"column:records" json:"records"`
	Bytes     int       `gorm:"column:bytes" json:"bytes"`
	ObjectKey string    `gorm:"column:object_key;size:255" json:"object_key,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the table name.
func (Export) TableName() string {
	return "wiki_exports"
}

// Store persists the export history.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store on db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the export table.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&Export{}); err != nil {
		return fmt.Errorf("failed to migrate wiki exports: %w", err)
	}
	return nil
}

// Create records an export.
func (s *Store) Create(ctx context.Context, export *Export) error {
	if err := s.db.WithContext(ctx).Create(export).Error; err != nil {
		return fmt.Errorf("failed to record wiki export: %w", err)
	}
	return nil
}

// List returns the latest exports, newest first. An empty entity lists all.
func (s *Store) List(ctx context.Context, entityName string, limit int) ([]Export, error) {
	if limit <= 0 {
		limit = 20
	}
	q := s.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Limit(limit)
	if entityName != "" {
		q = q.Where("entity = ?", entityName)
	}

	var exports []Export
	if err := q.Find(&exports).Error; err != nil {
		return nil, fmt.Errorf("failed to list wiki exports: %w", err)
	}
	return exports, nil
}
