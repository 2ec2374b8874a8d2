package services

import (
	"time"

	"github.com/JamesBarr456/tienda-api/errs"
	"github.com/JamesBarr456/tienda-api/models"
	"github.com/JamesBarr456/tienda-api/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartService owns the cart invariants: one active cart per user, line
// totals recomputed on every change, and the cart total always equal to
// the sum of its line totals. A mutation either persists the fully
// recomputed cart or fails without touching storage.
type CartService struct {
	carts    store.CartStore
	products store.ProductStore
}

func NewCartService(carts store.CartStore, products store.ProductStore) *CartService {
	return &CartService{carts: carts, products: products}
}

// ItemPatch carries the updatable fields of a line item. Nil means
// "keep the current value".
type ItemPatch struct {
	ID        string           `json:"id"`
	Quantity  *int             `json:"quantity,omitempty"`
	Size      *int             `json:"size,omitempty"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// GetActiveCart returns the user's active cart, lazily creating and
// persisting an empty one on first access. Repeated calls without an
// intervening write return the same cart.
func (s *CartService) GetActiveCart(userID string) (models.Cart, error) {
	cart, err := s.carts.ActiveCart(userID)
	if err == nil {
		return cart, nil
	}
	if !errs.IsNotFound(err) {
		return models.Cart{}, err
	}

	now := time.Now()
	cart = models.Cart{
		ID:            uuid.NewString(),
		UserID:        userID,
		Status:        models.CartStatusActive,
		Items:         []models.CartItem{},
		TotalAmount:   decimal.Zero,
		PromoDiscount: decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.carts.Save(cart); err != nil {
		return models.Cart{}, err
	}
	cart.Version = 1
	return cart, nil
}

// AddItem adds quantity units of a product in the given size to the
// user's active cart. An existing (product, size) line is merged:
// quantities accumulate and the line total is recomputed at the
// product's current unit price.
func (s *CartService) AddItem(userID, productID string, quantity, size int) (models.Cart, error) {
	if quantity <= 0 {
		return models.Cart{}, errs.Invalid("quantity", "must be greater than zero")
	}

	// Resolve the product before any cart write so an unknown product
	// leaves storage untouched.
	product, err := s.products.ByID(productID)
	if err != nil {
		return models.Cart{}, err
	}

	cart, err := s.GetActiveCart(userID)
	if err != nil {
		return models.Cart{}, err
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID && cart.Items[i].Size == size {
			cart.Items[i].Quantity += quantity
			cart.Items[i].UnitPrice = product.Price
			cart.Items[i].LineTotal = lineTotal(cart.Items[i].Quantity, product.Price)
			merged = true
			break
		}
	}

	if !merged {
		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}
		cart.Items = append(cart.Items, models.CartItem{
			ID:        uuid.NewString(),
			CartID:    cart.ID,
			Position:  nextPosition(cart.Items),
			ProductID: product.ID,
			Name:      product.Name,
			Image:     image,
			Size:      size,
			Quantity:  quantity,
			UnitPrice: product.Price,
			LineTotal: lineTotal(quantity, product.Price),
			SKU:       product.SKU,
		})
	}

	return s.saveRecomputed(cart)
}

// UpdateItem merges the patch into the matching line item and
// recomputes its line total from the patched-or-current quantity and
// unit price.
func (s *CartService) UpdateItem(userID string, patch ItemPatch) (models.Cart, error) {
	if patch.Quantity != nil && *patch.Quantity <= 0 {
		return models.Cart{}, errs.Invalid("quantity", "must be greater than zero")
	}
	if patch.UnitPrice != nil && patch.UnitPrice.IsNegative() {
		return models.Cart{}, errs.Invalid("unit_price", "must not be negative")
	}

	cart, err := s.carts.ActiveCart(userID)
	if err != nil {
		return models.Cart{}, err
	}

	index := -1
	for i := range cart.Items {
		if cart.Items[i].ID == patch.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return models.Cart{}, errs.NotFound("cart item", patch.ID)
	}

	item := &cart.Items[index]
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.Size != nil {
		item.Size = *patch.Size
	}
	if patch.UnitPrice != nil {
		item.UnitPrice = *patch.UnitPrice
	}
	item.LineTotal = lineTotal(item.Quantity, item.UnitPrice)

	return s.saveRecomputed(cart)
}

// RemoveItem removes the line item with the given id. Removing an id
// that is not in the cart is a no-op, not an error.
func (s *CartService) RemoveItem(userID, itemID string) (models.Cart, error) {
	cart, err := s.GetActiveCart(userID)
	if err != nil {
		return models.Cart{}, err
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept

	return s.saveRecomputed(cart)
}

// SetPromoDiscount records a promo discount on the active cart. The
// stored total is the pre-discount amount; the discount is applied at
// display and checkout time only.
func (s *CartService) SetPromoDiscount(userID string, discount decimal.Decimal) (models.Cart, error) {
	if discount.IsNegative() {
		return models.Cart{}, errs.Invalid("discount", "must not be negative")
	}

	cart, err := s.GetActiveCart(userID)
	if err != nil {
		return models.Cart{}, err
	}

	cart.PromoDiscount = discount
	cart.UpdatedAt = time.Now()
	if err := s.carts.Save(cart); err != nil {
		return models.Cart{}, err
	}
	cart.Version++
	return cart, nil
}

// CompleteCart marks the user's active cart as completed. The cart is
// kept for order history; the next GetActiveCart starts a fresh one.
func (s *CartService) CompleteCart(userID string) error {
	cart, err := s.carts.ActiveCart(userID)
	if err != nil {
		return err
	}

	cart.Status = models.CartStatusCompleted
	cart.UpdatedAt = time.Now()
	return s.carts.Save(cart)
}

// CartHistory returns all carts of the user, completed ones included.
func (s *CartService) CartHistory(userID string) ([]models.Cart, error) {
	return s.carts.ByUser(userID)
}

func (s *CartService) saveRecomputed(cart models.Cart) (models.Cart, error) {
	cart.TotalAmount = cartTotal(cart.Items)
	cart.UpdatedAt = time.Now()
	if err := s.carts.Save(cart); err != nil {
		return models.Cart{}, err
	}
	cart.Version++
	return cart, nil
}

func lineTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

func cartTotal(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal)
	}
	return total
}

func nextPosition(items []models.CartItem) int {
	max := -1
	for _, item := range items {
		if item.Position > max {
			max = item.Position
		}
	}
	return max + 1
}
