package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/asif/shops-platform/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	userName  string
	password  string
	shopNames []string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		userName: fmt.Sprintf("testuser_%s", suffix),
		password: "testpass1!",
		shopNames: []string{
			fmt.Sprintf("shop-a-%s", suffix),
			fmt.Sprintf("shop-b-%s", suffix),
			fmt.Sprintf("shop-c-%s", suffix),
		},
	}
}

// WithUserName sets the user name
func (b *UserBuilder) WithUserName(name string) *UserBuilder {
	b.userName = name
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithShopNames sets the shop names
func (b *UserBuilder) WithShopNames(names ...string) *UserBuilder {
	b.shopNames = names
	return b
}

// Build creates the user and its shops in the database and returns the user
// with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		UserName:     b.userName,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
	}
	for _, name := range b.shopNames {
		user.Shops = append(user.Shops, domain.Shop{
			ID:        uuid.New(),
			ShopName:  name,
			UserID:    user.ID,
			CreatedAt: time.Now(),
		})
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}
