package story

import "photomarket/internal/moderation"

// Story is a long-form shoot write-up, optionally linked to a gallery.
type Story struct {
	moderation.Moderated
	Title     string `json:"title"`
	Body      string `json:"body"`
	GalleryID string `json:"gallery_id,omitempty" gorm:"index"`
	CoverURL  string `json:"cover_url"`
}

func (s *Story) Moderation() *moderation.Moderated { return &s.Moderated }
func (s *Story) ContentKind() moderation.Kind      { return moderation.KindStory }
func (s *Story) DisplayTitle() string              { return s.Title }
