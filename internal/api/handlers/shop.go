package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/asif/shops-platform/internal/api/middleware"
	"github.com/asif/shops-platform/internal/domain"
	"github.com/asif/shops-platform/internal/service"
	"github.com/asif/shops-platform/internal/tenant"
)

type ShopHandler struct {
	shopService *service.ShopService
}

func NewShopHandler(shopService *service.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

// List returns the shops owned by the authenticated account.
func (h *ShopHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthenticated", http.StatusUnauthorized)
		return
	}

	shops, err := h.shopService.ListOwned(r.Context(), userID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(shops)
}

// Current resolves the tenant from the request's Host and returns the
// matching shop. An unregistered subdomain label yields 404.
func (h *ShopHandler) Current(w http.ResponseWriter, r *http.Request) {
	label := tenant.Resolve(r.Host)

	shop, err := h.shopService.GetByName(r.Context(), label)
	if err != nil {
		if errors.Is(err, domain.ErrShopNotFound) {
			http.Error(w, "Shop not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(shop)
}
