// Package postgres adapts PostgreSQL to the document-store port. All six
// collections share one table: each row carries the collection name and the
// document payload as JSONB through GORM's json serializer.
package postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/commercekit/commerce-api/internal/resource/domain"
	"github.com/commercekit/commerce-api/internal/resource/ports"
)

var _ ports.Store = (*Store)(nil)

// Store wraps one GORM connection. The caller owns the DB lifecycle.
type Store struct {
	db *gorm.DB
}

// NewStore wires a postgres-backed document store and ensures the documents
// table exists.
func NewStore(db *gorm.DB) *Store {
	store := &Store{db: db}
	if db != nil {
		if err := db.AutoMigrate(&documentRecord{}); err != nil {
			slog.Warn("documents table migration failed", slog.String("error", err.Error()))
		}
	}
	return store
}

// Collection returns a handle scoped to one collection name.
func (s *Store) Collection(name string) ports.Collection {
	return &Collection{db: s.db, name: name}
}

type documentRecord struct {
	// text rather than uuid: merge-create stores client-chosen ids verbatim.
	ID         string          `gorm:"primaryKey;column:id;type:text"`
	Collection string          `gorm:"column:collection;type:varchar(64);index"`
	Data       domain.Document `gorm:"column:data;serializer:json;type:jsonb"`
	CreatedAt  time.Time       `gorm:"column:created_at"`
	UpdatedAt  time.Time       `gorm:"column:updated_at"`
}

func (documentRecord) TableName() string { return "documents" }

var _ ports.Collection = (*Collection)(nil)

// Collection executes document operations against one collection's rows.
type Collection struct {
	db   *gorm.DB
	name string
}

// Add inserts a row under a fresh uuid.
func (c *Collection) Add(ctx context.Context, doc domain.Document) (string, error) {
	record := documentRecord{
		ID:         uuid.NewString(),
		Collection: c.name,
		Data:       doc.Clone(),
	}
	if err := c.db.WithContext(ctx).Create(&record).Error; err != nil {
		return "", err
	}
	return record.ID, nil
}

// Get fetches one row by collection and id.
func (c *Collection) Get(ctx context.Context, id string) (domain.Document, error) {
	var record documentRecord
	err := c.db.WithContext(ctx).
		First(&record, "collection = ? AND id = ?", c.name, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.Data, nil
}

// List returns every row of the collection in table scan order.
func (c *Collection) List(ctx context.Context) ([]domain.Entry, error) {
	var records []documentRecord
	if err := c.db.WithContext(ctx).Find(&records, "collection = ?", c.name).Error; err != nil {
		return nil, err
	}
	entries := make([]domain.Entry, 0, len(records))
	for _, record := range records {
		entries = append(entries, domain.Entry{ID: record.ID, Data: record.Data})
	}
	return entries, nil
}

// Merge reads the current payload, overlays the supplied fields, and writes
// the row back, creating it when absent. The read-modify-write is not
// serialized against concurrent writers; the contract offers no concurrency
// control on the same document.
func (c *Collection) Merge(ctx context.Context, id string, partial domain.Document) error {
	var record documentRecord
	err := c.db.WithContext(ctx).
		First(&record, "collection = ? AND id = ?", c.name, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = documentRecord{ID: id, Collection: c.name, Data: partial.Clone()}
		return c.db.WithContext(ctx).Create(&record).Error
	}
	if err != nil {
		return err
	}
	merged := record.Data.Clone()
	if merged == nil {
		merged = domain.Document{}
	}
	for k, v := range partial {
		merged[k] = v
	}
	return c.db.WithContext(ctx).
		Model(&documentRecord{}).
		Where("collection = ? AND id = ?", c.name, id).
		Update("data", merged).Error
}

// Delete removes the row; zero affected rows is still success.
func (c *Collection) Delete(ctx context.Context, id string) error {
	return c.db.WithContext(ctx).
		Delete(&documentRecord{}, "collection = ? AND id = ?", c.name, id).Error
}
