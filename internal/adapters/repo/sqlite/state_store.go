package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one named, independently-serialized value. Collections live here
// as whole JSON arrays; preferences as plain tokens.
type Entry struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value string `gorm:"type:text"`
}

func (Entry) TableName() string { return "kv_entries" }

type StateStore struct{ db *gorm.DB }

func NewStateStore(db *gorm.DB) *StateStore { return &StateStore{db: db} }

func (s *StateStore) Migrate() error {
	return s.db.AutoMigrate(&Entry{})
}

func (s *StateStore) Load(ctx context.Context, key string) (string, bool, error) {
	var e Entry
	if err := s.db.WithContext(ctx).First(&e, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return e.Value, true, nil
}

// Save rewrites the whole value for the key. No deltas, no coalescing.
func (s *StateStore) Save(ctx context.Context, key, value string) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "key"}}, DoUpdates: clause.AssignmentColumns([]string{"value"})}).
		Create(&Entry{Key: key, Value: value}).Error
}

func (s *StateStore) Reset(ctx context.Context) error {
	return s.db.WithContext(ctx).Where("1 = 1").Delete(&Entry{}).Error
}
