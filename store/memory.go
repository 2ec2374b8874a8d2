package store

import (
	"sort"
	"strings"
	"sync"

	"github.com/JamesBarr456/tienda-api/errs"
	"github.com/JamesBarr456/tienda-api/models"
)

// MemoryCartStore keeps carts in process memory. It mirrors the gorm
// store's contract, including the version check, so the cart service
// behaves identically against either backend.
type MemoryCartStore struct {
	mu    sync.RWMutex
	carts map[string]models.Cart // keyed by cart ID
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string]models.Cart)}
}

func (s *MemoryCartStore) ActiveCart(userID string) (models.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, cart := range s.carts {
		if cart.UserID == userID && cart.Status == models.CartStatusActive {
			return cloneCart(cart), nil
		}
	}
	return models.Cart{}, errs.NotFound("active cart", userID)
}

func (s *MemoryCartStore) Save(cart models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, exists := s.carts[cart.ID]
	if cart.Version == 0 {
		if exists {
			return errs.Storage("cart.save", ErrVersionConflict)
		}
		cart.Version = 1
	} else {
		if !exists || current.Version != cart.Version {
			return errs.Storage("cart.save", ErrVersionConflict)
		}
		cart.Version++
	}

	s.carts[cart.ID] = cloneCart(cart)
	return nil
}

func (s *MemoryCartStore) ByUser(userID string) ([]models.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var carts []models.Cart
	for _, cart := range s.carts {
		if cart.UserID == userID {
			carts = append(carts, cloneCart(cart))
		}
	}
	sort.Slice(carts, func(i, j int) bool {
		return carts[i].CreatedAt.Before(carts[j].CreatedAt)
	})
	return carts, nil
}

func cloneCart(cart models.Cart) models.Cart {
	out := cart
	out.Items = make([]models.CartItem, len(cart.Items))
	copy(out.Items, cart.Items)
	return out
}

// MemoryProductStore is the mock catalog backend.
type MemoryProductStore struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewMemoryProductStore(products []models.Product) *MemoryProductStore {
	return &MemoryProductStore{products: append([]models.Product(nil), products...)}
}

func (s *MemoryProductStore) ByID(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, errs.NotFound("product", id)
}

func (s *MemoryProductStore) ByName(name string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return models.Product{}, errs.NotFound("product", name)
}

func (s *MemoryProductStore) List(f ProductFilter) (ProductPage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if f.Genre != "" && p.Genre != f.Genre {
			continue
		}
		if f.Size != 0 && !p.HasSize(f.Size) {
			continue
		}
		results = append(results, p)
	}

	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Price.LessThan(results[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(results, func(i, j int) bool {
			return results[j].Price.LessThan(results[i].Price)
		})
	}

	return paginate(results, f)
}

// MemoryUserStore is the mock session backend.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users []models.User
}

func NewMemoryUserStore(users []models.User) *MemoryUserStore {
	return &MemoryUserStore{users: append([]models.User(nil), users...)}
}

func (s *MemoryUserStore) ByID(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, errs.NotFound("user", id)
}

func (s *MemoryUserStore) ByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, errs.NotFound("user", email)
}
