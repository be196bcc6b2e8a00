package taxonomy

import (
	"time"

	"photomarket/internal/moderation"
)

// Category and City are the selectable filter values. Rows are created by
// the admin directly or by promotion of an approved suggestion.

type Category struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
}

type City struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex:idx_city_name_region"`
	Region    string    `json:"region" gorm:"uniqueIndex:idx_city_name_region"`
	CreatedAt time.Time `json:"created_at"`
}

type SuggestionKind string

const (
	SuggestCategory SuggestionKind = "category"
	SuggestCity     SuggestionKind = "city"
)

// Suggestion is a photographer-proposed category or city. There is no
// draft stage: a non-admin suggestion is pending the instant it exists.
type Suggestion struct {
	moderation.Moderated
	SuggestionKind SuggestionKind `json:"suggestion_kind" gorm:"index"`
	Name           string         `json:"name"`
	Region         string         `json:"region,omitempty"`
}

func (s *Suggestion) Moderation() *moderation.Moderated { return &s.Moderated }

func (s *Suggestion) ContentKind() moderation.Kind {
	if s.SuggestionKind == SuggestCity {
		return moderation.KindCitySuggestion
	}
	return moderation.KindCategorySuggestion
}

func (s *Suggestion) DisplayTitle() string {
	if s.Region != "" {
		return s.Name + ", " + s.Region
	}
	return s.Name
}
