package postgres

import (
	"github.com/asif/shops-platform/internal/domain"
	"github.com/asif/shops-platform/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables. The unique indexes on users.user_name and
	// shops.shop_name are what actually enforce the uniqueness contract
	// under concurrent signups.
	err = db.AutoMigrate(
		&domain.User{},
		&domain.Shop{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User: NewUserRepository(db),
		Shop: NewShopRepository(db),
	}
}
