package service

import (
	"context"

	"github.com/asif/shops-platform/internal/domain"
	"github.com/asif/shops-platform/internal/repository"
	"github.com/google/uuid"
)

type ShopService struct {
	shopRepo repository.ShopRepository
}

func NewShopService(shopRepo repository.ShopRepository) *ShopService {
	return &ShopService{shopRepo: shopRepo}
}

// GetByName surfaces domain.ErrShopNotFound for unregistered labels; the
// tenant resolver itself never checks existence.
func (s *ShopService) GetByName(ctx context.Context, shopName string) (*domain.Shop, error) {
	return s.shopRepo.GetByName(ctx, shopName)
}

func (s *ShopService) ListOwned(ctx context.Context, userID uuid.UUID) ([]*domain.Shop, error) {
	return s.shopRepo.ListByUserID(ctx, userID)
}
