package story

import (
	"context"

	"photomarket/internal/moderation"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Find(ctx context.Context, id string) (moderation.Content, error) {
	var s Story
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, moderation.WrapFindErr(err, id)
	}
	return &s, nil
}

func (r *Repository) List(ctx context.Context, f moderation.Filter) ([]moderation.Content, error) {
	var stories []Story
	q := moderation.ApplyFilter(r.db.WithContext(ctx).Model(&Story{}), f)
	if err := q.Find(&stories).Error; err != nil {
		return nil, &moderation.StorageError{Op: "list", Err: err}
	}
	out := make([]moderation.Content, len(stories))
	for i := range stories {
		out[i] = &stories[i]
	}
	return out, nil
}

func (r *Repository) Insert(ctx context.Context, c moderation.Content) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return &moderation.StorageError{Op: "insert", Err: err}
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, c moderation.Content, expectedVersion int64) error {
	return moderation.CASUpdate(ctx, r.db, c, expectedVersion)
}
