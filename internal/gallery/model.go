package gallery

import "photomarket/internal/moderation"

type Gallery struct {
	moderation.Moderated
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category" gorm:"index"`
	City        string `json:"city" gorm:"index"`
	CoverURL    string `json:"cover_url"`
}

func (g *Gallery) Moderation() *moderation.Moderated { return &g.Moderated }
func (g *Gallery) ContentKind() moderation.Kind      { return moderation.KindGallery }
func (g *Gallery) DisplayTitle() string              { return g.Title }
