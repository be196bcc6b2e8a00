package taxonomy

import (
	"context"
	"time"

	"photomarket/internal/moderation"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SuggestionRepository is a moderation.Store scoped to one suggestion
// kind, so the engine's kind-agnostic lookup stays precise.
type SuggestionRepository struct {
	db   *gorm.DB
	kind SuggestionKind
}

func NewSuggestionRepository(db *gorm.DB, kind SuggestionKind) *SuggestionRepository {
	return &SuggestionRepository{db: db, kind: kind}
}

func (r *SuggestionRepository) Find(ctx context.Context, id string) (moderation.Content, error) {
	var s Suggestion
	err := r.db.WithContext(ctx).First(&s, "id = ? AND suggestion_kind = ?", id, r.kind).Error
	if err != nil {
		return nil, moderation.WrapFindErr(err, id)
	}
	return &s, nil
}

func (r *SuggestionRepository) List(ctx context.Context, f moderation.Filter) ([]moderation.Content, error) {
	var suggestions []Suggestion
	q := r.db.WithContext(ctx).Model(&Suggestion{}).Where("suggestion_kind = ?", r.kind)
	if err := moderation.ApplyFilter(q, f).Find(&suggestions).Error; err != nil {
		return nil, &moderation.StorageError{Op: "list", Err: err}
	}
	out := make([]moderation.Content, len(suggestions))
	for i := range suggestions {
		out[i] = &suggestions[i]
	}
	return out, nil
}

func (r *SuggestionRepository) Insert(ctx context.Context, c moderation.Content) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return &moderation.StorageError{Op: "insert", Err: err}
	}
	return nil
}

func (r *SuggestionRepository) Update(ctx context.Context, c moderation.Content, expectedVersion int64) error {
	return moderation.CASUpdate(ctx, r.db, c, expectedVersion)
}

type CategoryRepository struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository { return &CategoryRepository{db: db} }

// Ensure inserts the category if it is not already a filter value.
// Re-approving a suggestion must not duplicate rows.
func (r *CategoryRepository) Ensure(ctx context.Context, name string) error {
	c := Category{ID: uuid.NewString(), Name: name, CreatedAt: time.Now().UTC()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&c).Error
}

func (r *CategoryRepository) List(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

type CityRepository struct{ db *gorm.DB }

func NewCityRepository(db *gorm.DB) *CityRepository { return &CityRepository{db: db} }

func (r *CityRepository) Ensure(ctx context.Context, name, region string) error {
	c := City{ID: uuid.NewString(), Name: name, Region: region, CreatedAt: time.Now().UTC()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&c).Error
}

func (r *CityRepository) List(ctx context.Context) ([]City, error) {
	var cities []City
	err := r.db.WithContext(ctx).Order("name ASC").Find(&cities).Error
	return cities, err
}
