package service

import (
	"context"
	"errors"
	"time"

	"github.com/asif/shops-platform/internal/config"
	"github.com/asif/shops-platform/internal/domain"
	"github.com/asif/shops-platform/internal/observability"
	"github.com/asif/shops-platform/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo repository.UserRepository
	tokens   *TokenIssuer
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, tokens *TokenIssuer, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		cfg:      cfg,
	}
}

type SignupInput struct {
	UserName  string
	Password  string
	ShopNames []string
}

type SigninInput struct {
	UserName   string
	Password   string
	RememberMe bool
}

type SigninResult struct {
	User  *domain.User
	Token string
}

// Signup creates the account and all of its shops as one atomic unit. The
// early uniqueness check gives a friendly failure for the common case; the
// database constraints remain the authority when two signups race.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*domain.User, error) {
	existing, err := s.userRepo.GetByUserName(ctx, input.UserName)
	if err == nil && existing != nil {
		return nil, domain.ErrUserNameTaken
	}
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		UserName:     input.UserName,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
	}
	for _, name := range input.ShopNames {
		user.Shops = append(user.Shops, domain.Shop{
			ID:        uuid.New(),
			ShopName:  name,
			UserID:    user.ID,
			CreatedAt: time.Now(),
		})
	}

	if err := s.userRepo.CreateWithShops(ctx, user); err != nil {
		observability.SignupsTotal.WithLabelValues("conflict").Inc()
		return nil, err
	}

	observability.SignupsTotal.WithLabelValues("ok").Inc()
	return user, nil
}

func (s *AuthService) Signin(ctx context.Context, input SigninInput) (*SigninResult, error) {
	user, err := s.userRepo.GetByUserName(ctx, input.UserName)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			observability.SigninsTotal.WithLabelValues("not_found").Inc()
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	// A malformed stored hash also fails the comparison; either way the
	// caller only learns the credentials were rejected.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		observability.SigninsTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.UserName, input.RememberMe)
	if err != nil {
		return nil, err
	}

	observability.SigninsTotal.WithLabelValues("ok").Inc()
	return &SigninResult{User: user, Token: token}, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *AuthService) Tokens() *TokenIssuer {
	return s.tokens
}
