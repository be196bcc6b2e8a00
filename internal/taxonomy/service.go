package taxonomy

import (
	"context"
	"fmt"

	"photomarket/internal/moderation"
)

type CategoryStore interface {
	Ensure(ctx context.Context, name string) error
	List(ctx context.Context) ([]Category, error)
}

type CityStore interface {
	Ensure(ctx context.Context, name, region string) error
	List(ctx context.Context) ([]City, error)
}

type Service struct {
	engine     *moderation.Engine
	categories CategoryStore
	cities     CityStore
}

// NewService wires the promotion hooks: an approved suggestion becomes a
// selectable Category or City row.
func NewService(engine *moderation.Engine, categories CategoryStore, cities CityStore) *Service {
	s := &Service{engine: engine, categories: categories, cities: cities}
	engine.OnApprove(moderation.KindCategorySuggestion, s.promote)
	engine.OnApprove(moderation.KindCitySuggestion, s.promote)
	return s
}

func (s *Service) Suggest(ctx context.Context, ownerID, ownerName string, kind SuggestionKind, name, region string) (*Suggestion, error) {
	if kind != SuggestCategory && kind != SuggestCity {
		return nil, &moderation.ValidationError{Reason: "suggestion kind must be category or city"}
	}
	sug := &Suggestion{
		Moderated: moderation.Moderated{
			OwnerID:   ownerID,
			OwnerName: ownerName,
		},
		SuggestionKind: kind,
		Name:           name,
		Region:         region,
	}
	if err := s.engine.Submit(ctx, sug); err != nil {
		return nil, err
	}
	return sug, nil
}

func (s *Service) promote(ctx context.Context, c moderation.Content) error {
	sug, ok := c.(*Suggestion)
	if !ok {
		return fmt.Errorf("promote: unexpected content type %T", c)
	}
	if sug.SuggestionKind == SuggestCity {
		return s.cities.Ensure(ctx, sug.Name, sug.Region)
	}
	return s.categories.Ensure(ctx, sug.Name)
}

func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.categories.List(ctx)
}

func (s *Service) ListCities(ctx context.Context) ([]City, error) {
	return s.cities.List(ctx)
}

// AddCategory and AddCity are the admin's direct taxonomy management,
// bypassing the suggestion flow.

func (s *Service) AddCategory(ctx context.Context, name string) error {
	if name == "" {
		return &moderation.ValidationError{Reason: "name is required"}
	}
	return s.categories.Ensure(ctx, name)
}

func (s *Service) AddCity(ctx context.Context, name, region string) error {
	if name == "" {
		return &moderation.ValidationError{Reason: "name is required"}
	}
	return s.cities.Ensure(ctx, name, region)
}
