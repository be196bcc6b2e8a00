package moderation

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Shared gorm plumbing for the per-kind repositories.

// WrapFindErr converts a gorm read error into the engine taxonomy.
func WrapFindErr(err error, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{ID: id}
	}
	return &StorageError{Op: "find", Err: err}
}

// ApplyFilter translates a Filter into query clauses.
func ApplyFilter(q *gorm.DB, f Filter) *gorm.DB {
	if f.OwnerID != "" {
		q = q.Where("owner_id = ?", f.OwnerID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ShowOnHome != nil {
		q = q.Where("show_on_home = ?", *f.ShowOnHome)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	return q.Order("created_at DESC")
}

// CASUpdate writes the full entity guarded by its version column. Exactly
// one of two concurrent writers lands; the other gets ConflictError.
func CASUpdate(ctx context.Context, db *gorm.DB, c Content, expectedVersion int64) error {
	m := c.Moderation()
	m.Version = expectedVersion + 1

	tx := db.WithContext(ctx).
		Model(c).
		Where("id = ? AND version = ?", m.ID, expectedVersion).
		Select("*").
		Updates(c)
	if tx.Error != nil {
		m.Version = expectedVersion
		return &StorageError{Op: "update", Err: tx.Error}
	}
	if tx.RowsAffected == 0 {
		m.Version = expectedVersion
		var count int64
		if err := db.WithContext(ctx).Model(c).Where("id = ?", m.ID).Count(&count).Error; err != nil {
			return &StorageError{Op: "update", Err: err}
		}
		if count == 0 {
			return &NotFoundError{ID: m.ID}
		}
		return &ConflictError{ID: m.ID}
	}
	return nil
}
