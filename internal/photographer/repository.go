package photographer

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("photographer not found")

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, p *Photographer) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*Photographer, error) {
	var p Photographer
	err := r.db.WithContext(ctx).First(&p, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Photographer, error) {
	var p Photographer
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Save(ctx context.Context, p *Photographer) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *Repository) List(ctx context.Context, city, category string) ([]Photographer, error) {
	var photographers []Photographer
	q := r.db.WithContext(ctx).Model(&Photographer{})
	if city != "" {
		q = q.Where("city = ?", city)
	}
	if category != "" {
		q = q.Where("categories LIKE ?", "%"+category+"%")
	}
	err := q.Order("name ASC").Find(&photographers).Error
	return photographers, err
}
