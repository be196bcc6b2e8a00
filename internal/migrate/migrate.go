package migrate

import (
	"photomarket/internal/gallery"
	"photomarket/internal/notification"
	"photomarket/internal/photographer"
	"photomarket/internal/story"
	"photomarket/internal/taxonomy"

	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&photographer.Photographer{},
		&gallery.Gallery{},
		&story.Story{},
		&taxonomy.Category{},
		&taxonomy.City{},
		&taxonomy.Suggestion{},
		&notification.Notification{},
	)
}
