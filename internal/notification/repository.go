package notification

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("notification not found")

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Insert(ctx context.Context, n *Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *Repository) ListByUser(ctx context.Context, userID string, limit int) ([]Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	var notifications []Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

// ListActionRequired is the admin's open request queue.
func (r *Repository) ListActionRequired(ctx context.Context, userID string) ([]Notification, error) {
	var notifications []Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND action_required = ?", userID, true).
		Order("created_at ASC").
		Find(&notifications).Error
	return notifications, err
}

func (r *Repository) MarkRead(ctx context.Context, userID, id string) error {
	tx := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ResolveActionRequired closes every open request pointing at relatedID and
// stamps the audit suffix onto the message.
func (r *Repository) ResolveActionRequired(ctx context.Context, relatedID, suffix string) error {
	return r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("related_id = ? AND action_required = ?", relatedID, true).
		Updates(map[string]any{
			"action_required": false,
			"message":         gorm.Expr("message || ?", suffix),
		}).Error
}
