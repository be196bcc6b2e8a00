package moderation

import "time"

// AdminID is the distinguished recipient/approver identity. It is not a
// photographer row and must never be enumerable as one.
const AdminID = "admin"

type Status string

const (
	StatusDraft    Status = "draft"
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Kind string

const (
	KindGallery            Kind = "gallery"
	KindStory              Kind = "story"
	KindCategorySuggestion Kind = "category_suggestion"
	KindCitySuggestion     Kind = "city_suggestion"
)

func (k Kind) Label() string {
	switch k {
	case KindGallery:
		return "Gallery"
	case KindStory:
		return "Story"
	case KindCategorySuggestion:
		return "Category Suggestion"
	case KindCitySuggestion:
		return "City Suggestion"
	}
	return string(k)
}

// Moderated is embedded by every entity subject to admin approval.
// Invariant: ShowOnHome is true only while Status is approved.
type Moderated struct {
	ID             string     `json:"id" gorm:"primaryKey"`
	OwnerID        string     `json:"owner_id" gorm:"index"`
	OwnerName      string     `json:"owner_name"`
	Status         Status     `json:"status" gorm:"index"`
	ShowOnHome     bool       `json:"show_on_home"`
	ApprovedBy     string     `json:"approved_by,omitempty"`
	ApprovedByName string     `json:"approved_by_name,omitempty"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
	Version        int64      `json:"version"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Content is what the engine knows about a moderated entity. Concrete
// types (gallery, story, taxonomy suggestion) carry their own fields.
type Content interface {
	Moderation() *Moderated
	ContentKind() Kind
	DisplayTitle() string
}
