package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/asif/shops-platform/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres unique_violation error code.
const uniqueViolation = "23505"

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateWithShops(ctx context.Context, user *domain.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Creating the user cascades into its Shops association, so the
		// account and every shop land in the same transaction.
		return tx.Create(user).Error
	})
	return translateConflict(err)
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Preload("Shops").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Preload("Shops").First(&user, "user_name = ?", userName).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// translateConflict maps a Postgres unique violation onto the domain error
// for whichever constraint was hit. Raw driver errors never leave the
// repository layer for conflicts the caller is expected to handle.
func translateConflict(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		switch {
		case strings.Contains(pgErr.ConstraintName, "shop_name"):
			return domain.ErrShopNameTaken
		case strings.Contains(pgErr.ConstraintName, "user_name"):
			return domain.ErrUserNameTaken
		}
	}
	return err
}
