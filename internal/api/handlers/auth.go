package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/asif/shops-platform/internal/api/middleware"
	"github.com/asif/shops-platform/internal/domain"
	"github.com/asif/shops-platform/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type SignupRequest struct {
	UserName  string   `json:"user_name"`
	Password  string   `json:"password"`
	ShopNames []string `json:"shopNames"`
}

type SigninRequest struct {
	UserName   string `json:"user_name"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

type SigninResponse struct {
	Message string     `json:"message"`
	Data    SigninData `json:"data"`
}

type SigninData struct {
	UserName string `json:"userName"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	shopNames, err := req.Validate()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.authService.Signup(r.Context(), service.SignupInput{
		UserName:  req.UserName,
		Password:  req.Password,
		ShopNames: shopNames,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNameTaken):
			http.Error(w, "Username Unavailable!", http.StatusBadRequest)
		case errors.Is(err, domain.ErrShopNameTaken):
			http.Error(w, "Shop name must be globally unique", http.StatusBadRequest)
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
}

func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.UserName == "" || req.Password == "" {
		http.Error(w, "user_name and password are required", http.StatusBadRequest)
		return
	}

	result, err := h.authService.Signin(r.Context(), service.SigninInput{
		UserName:   req.UserName,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			http.Error(w, "User not found!", http.StatusNotFound)
		case errors.Is(err, domain.ErrInvalidCredentials):
			http.Error(w, "Incorrect password!", http.StatusUnauthorized)
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	http.SetCookie(w, h.authService.Tokens().Cookie(result.Token, req.RememberMe))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SigninResponse{
		Message: "Login successful!",
		Data:    SigninData{UserName: result.User.UserName},
	})
}

// Logout clears the client's cookie. With stateless tokens there is nothing
// server-side to revoke, so this succeeds even without an active session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.authService.Tokens().ClearCookie())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Logged out"})
}

// Session returns the authenticated account's profile with its shops.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthenticated", http.StatusUnauthorized)
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		http.Error(w, "Unauthenticated", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}
