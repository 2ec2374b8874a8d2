package store

import (
	"errors"

	"github.com/JamesBarr456/tienda-api/models"
)

// ErrVersionConflict is returned (wrapped in a StorageError) when a save
// loses the optimistic-lock race. Callers should re-read and retry.
var ErrVersionConflict = errors.New("cart version conflict")

// Sort keys accepted by ProductStore.List.
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

const DefaultPerPage = 12

type ProductFilter struct {
	Genre   models.Genre
	Size    int // 0 = any size
	Sort    string
	Page    int // 1-based, 0 = first page
	PerPage int
}

type ProductPage struct {
	Products   []models.Product `json:"products"`
	Total      int              `json:"total_products"`
	TotalPages int              `json:"total_pages"`
}

// CartStore persists carts keyed per user. Implementations must not
// alias returned carts with their internal state.
type CartStore interface {
	// ActiveCart returns the user's single active cart, or a
	// NotFoundError when the user has none yet.
	ActiveCart(userID string) (models.Cart, error)
	// Save creates the cart (Version 0) or replaces it, checking and
	// incrementing Version.
	Save(cart models.Cart) error
	// ByUser returns every cart of the user, active and completed.
	ByUser(userID string) ([]models.Cart, error)
}

type ProductStore interface {
	ByID(id string) (models.Product, error)
	ByName(name string) (models.Product, error)
	List(f ProductFilter) (ProductPage, error)
}

type UserStore interface {
	ByID(id string) (models.User, error)
	ByEmail(email string) (models.User, error)
}
