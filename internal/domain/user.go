package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"user_id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserName     string    `json:"user_name" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
	Shops        []Shop    `json:"shops" gorm:"foreignKey:UserID"`
}

// Shop is a tenant namespace owned by exactly one user. The name doubles as
// a DNS subdomain label, so it is unique across all users, not per owner.
type Shop struct {
	ID        uuid.UUID `json:"shop_id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ShopName  string    `json:"shop_name" gorm:"uniqueIndex;not null"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null"`
	CreatedAt time.Time `json:"createdAt"`
}
