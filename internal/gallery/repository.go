package gallery

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
	var g Gallery
	if err := r.db.WithContext(ctx).First(&g, "id = ?", id).Error; err != nil {
		return nil, moderation.WrapFindErr(err, id)
	}
	return &g, nil
}

func (r *Repository) List(ctx context.Context, f moderation.Filter) ([]moderation.Content, error) {
	var galleries []Gallery
	q := moderation.ApplyFilter(r.db.WithContext(ctx).Model(&Gallery{}), f)
	if err := q.Find(&galleries).Error; err != nil {
		return nil, &moderation.StorageError{Op: "list", Err: err}
	}
	out := make([]moderation.Content, len(galleries))
	for i := range galleries {
		out[i] = &galleries[i]
	}
	return out, nil
}

// ListPublic serves the browsable gallery index: approved items only,
// optionally narrowed by category and city.
func (r *Repository) ListPublic(ctx context.Context, category, city string) ([]Gallery, error) {
	var galleries []Gallery
	q := r.db.WithContext(ctx).Where("status = ?", moderation.StatusApproved)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if city != "" {
		q = q.Where("city = ?", city)
	}
	if err := q.Order("created_at DESC").Find(&galleries).Error; err != nil {
		return nil, &moderation.StorageError{Op: "list", Err: err}
	}
	return galleries, nil
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
