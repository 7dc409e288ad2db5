package repository

import (
	"context"

	"github.com/asif/shops-platform/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	// CreateWithShops persists the user and all of its shops as one
	// transaction. A uniqueness conflict on either table rolls back the
	// whole unit and is reported as domain.ErrUserNameTaken or
	// domain.ErrShopNameTaken.
	CreateWithShops(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUserName(ctx context.Context, userName string) (*domain.User, error)
}

type ShopRepository interface {
	GetByName(ctx context.Context, shopName string) (*domain.Shop, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Shop, error)
}

type Repositories struct {
	User UserRepository
	Shop ShopRepository
}
