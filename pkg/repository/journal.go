package repository

import (
	"context"
	"database/sql"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/BeerDiary/pkg/model"
)

const tastingKeyCondition = "user_id = ? AND beer_id = ? AND tasted_on = ?"

// Two read committed transactions could both miss the row and both insert it.
var serializable = &sql.TxOptions{Isolation: sql.LevelSerializable}

type JournalRepository interface {
	AddTasting(ctx context.Context, entry model.TastingEntry) (*model.TastingEntry, error)
	AddTastingIfAbsent(ctx context.Context, entry model.TastingEntry) (*model.TastingEntry, bool, error)
	DeleteTastings(ctx context.Context, key model.TastingKey) (int64, error)
	GetTastingsForUser(ctx context.Context, userID string) ([]*model.TastingEntry, error)
}

func (r *Repository) AddTasting(ctx context.Context, entry model.TastingEntry) (*model.TastingEntry, error) {
	if result := r.DB.WithContext(ctx).Create(&entry); result.Error != nil {
		return nil, result.Error
	}

	return &entry, nil
}

// AddTastingIfAbsent inserts entry unless a row with the same key exists. The
// lookup and the insert share one serializable transaction; a concurrent
// insert of the same key makes one of them fail instead of both succeeding.
func (r *Repository) AddTastingIfAbsent(ctx context.Context, entry model.TastingEntry) (*model.TastingEntry, bool, error) {
	created := false

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64

		key := entry.Key()
		if result := tx.Model(&model.TastingEntry{}).
			Where(tastingKeyCondition, key.UserID, key.BeerID, key.TastedOn).
			Count(&count); result.Error != nil {
			return result.Error
		}

		if count > 0 {
			return nil
		}

		if result := tx.Create(&entry); result.Error != nil {
			return result.Error
		}

		created = true

		return nil
	}, serializable)
	if err != nil {
		return nil, false, err
	}

	return &entry, created, nil
}

func (r *Repository) GetTastingsForUser(ctx context.Context, userID string) ([]*model.TastingEntry, error) {
	entries := []*model.TastingEntry{}

	result := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("tasted_on DESC, id ASC").
		Find(&entries)
	if result.Error != nil {
		r.Logger.Error("error getting tastings for user", zap.String("user_id", userID), zap.Error(result.Error))

		return nil, result.Error
	}

	return entries, nil
}

func (r *Repository) DeleteTastings(ctx context.Context, key model.TastingKey) (int64, error) {
	result := r.DB.WithContext(ctx).
		Where(tastingKeyCondition, key.UserID, key.BeerID, key.TastedOn).
		Delete(&model.TastingEntry{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
