package service

import (
	"github.com/asif/shops-platform/internal/config"
	"github.com/asif/shops-platform/internal/repository"
)

type Services struct {
	Auth *AuthService
	Shop *ShopService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	tokens := NewTokenIssuer(cfg)
	return &Services{
		Auth: NewAuthService(repos.User, tokens, cfg),
		Shop: NewShopService(repos.Shop),
	}
}
