package notification

import "time"

// Notification rows are created by the moderation engine as transition
// side effects. The engine never deletes them; the only mutations are
// marking read and resolving action_required.
type Notification struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	Type           string    `json:"type" gorm:"index"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	UserID         string    `json:"user_id" gorm:"index"`
	RelatedID      string    `json:"related_id" gorm:"index"`
	ActionRequired bool      `json:"action_required"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}
