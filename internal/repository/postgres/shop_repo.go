package postgres

import (
	"context"
	"errors"

	"github.com/asif/shops-platform/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type shopRepository struct {
	db *gorm.DB
}

func NewShopRepository(db *gorm.DB) *shopRepository {
	return &shopRepository{db: db}
}

func (r *shopRepository) GetByName(ctx context.Context, shopName string) (*domain.Shop, error) {
	var shop domain.Shop
	err := r.db.WithContext(ctx).First(&shop, "shop_name = ?", shopName).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShopNotFound
		}
		return nil, err
	}
	return &shop, nil
}

func (r *shopRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Shop, error) {
	var shops []*domain.Shop
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&shops).Error
	if err != nil {
		return nil, err
	}
	return shops, nil
}
