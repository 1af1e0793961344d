package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amanahdev/ramadan-companion/models"
	"github.com/amanahdev/ramadan-companion/utils"
)

// GormStore keeps records in the state_records table, one JSON blob per key.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a database-backed store.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Load fetches and unmarshals the record under key. Corrupt JSON is logged
// and reported as not found; the stale row is overwritten on the next Save.
func (s *GormStore) Load(ctx context.Context, key string, v interface{}) (bool, error) {
	var rec models.StateRecord
	err := s.db.WithContext(ctx).First(&rec, "`key` = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(rec.Value, v); err != nil {
		if utils.Sugar != nil {
			utils.Sugar.Warnf("discarding malformed state record key=%s err=%v", key, err)
		}
		return false, nil
	}
	return true, nil
}

// Save marshals v and upserts it under key.
func (s *GormStore) Save(ctx context.Context, key string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	rec := models.StateRecord{Key: key, Value: b, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
}
