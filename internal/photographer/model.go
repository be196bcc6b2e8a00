package photographer

import "time"

type Photographer struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Bio          string    `json:"bio"`
	City         string    `json:"city" gorm:"index"`
	Categories   string    `json:"categories"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
