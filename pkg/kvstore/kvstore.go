package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the durable local key-value surface the state engines persist
// through. Values are opaque serialized documents; absence is not an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Entry is one persisted key-value row.
type Entry struct {
	Key       string `gorm:"primaryKey;size:128"`
	Value     string
	UpdatedAt time.Time
}

// TableName keeps the table name stable across drivers.
func (Entry) TableName() string {
	return "kv_entries"
}

// Client is the GORM-backed Store implementation.
type Client struct {
	db *gorm.DB
}

// New auto-migrates the kv table and returns a client bound to the
// provided connection.
func New(db *gorm.DB) (*Client, error) {
	if db == nil {
		return nil, fmt.Errorf("gorm db is required")
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("migrating kv_entries: %w", err)
	}
	return &Client{db: db}, nil
}

// Get returns the value stored at key. A missing key reports ok=false with
// a nil error.
func (c *Client) Get(ctx context.Context, key string) (string, bool, error) {
	var entry Entry
	err := c.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set upserts the value at key.
func (c *Client) Set(ctx context.Context, key, value string) error {
	entry := Entry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return c.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).
		Error
}

// Delete removes the key if present; deleting an absent key is a no-op.
func (c *Client) Delete(ctx context.Context, key string) error {
	return c.db.WithContext(ctx).Delete(&Entry{}, "key = ?", key).Error
}
