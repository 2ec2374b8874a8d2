package store

import (
	"errors"
	"math"

	"github.com/JamesBarr456/tienda-api/errs"
	"github.com/JamesBarr456/tienda-api/models"
	"gorm.io/gorm"
)

// GormCartStore is the persisted-backend cart store. Access is per user
// key; saves run in a transaction guarded by the Version column so a
// stale writer fails instead of silently discarding a concurrent update.
type GormCartStore struct {
	db *gorm.DB
}

func NewGormCartStore(db *gorm.DB) *GormCartStore {
	return &GormCartStore{db: db}
}

func (s *GormCartStore) ActiveCart(userID string) (models.Cart, error) {
	var cart models.Cart
	err := s.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("user_id = ? AND status = ?", userID, models.CartStatusActive).
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Cart{}, errs.NotFound("active cart", userID)
	}
	if err != nil {
		return models.Cart{}, errs.Storage("cart.active", err)
	}
	return cart, nil
}

func (s *GormCartStore) Save(cart models.Cart) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if cart.Version == 0 {
			cart.Version = 1
			return tx.Create(&cart).Error
		}

		res := tx.Model(&models.Cart{}).
			Where("id = ? AND version = ?", cart.ID, cart.Version).
			Updates(map[string]interface{}{
				"status":         cart.Status,
				"total_amount":   cart.TotalAmount,
				"promo_discount": cart.PromoDiscount,
				"updated_at":     cart.UpdatedAt,
				"version":        cart.Version + 1,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrVersionConflict
		}

		// Replace line items wholesale; the cart is the write unit.
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		for i := range cart.Items {
			cart.Items[i].CartID = cart.ID
		}
		if len(cart.Items) > 0 {
			if err := tx.Create(&cart.Items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errs.Storage("cart.save", err)
	}
	return nil
}

func (s *GormCartStore) ByUser(userID string) ([]models.Cart, error) {
	var carts []models.Cart
	err := s.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&carts).Error
	if err != nil {
		return nil, errs.Storage("cart.by_user", err)
	}
	return carts, nil
}

type GormProductStore struct {
	db *gorm.DB
}

func NewGormProductStore(db *gorm.DB) *GormProductStore {
	return &GormProductStore{db: db}
}

func (s *GormProductStore) ByID(id string) (models.Product, error) {
	var product models.Product
	err := s.db.First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, errs.NotFound("product", id)
	}
	if err != nil {
		return models.Product{}, errs.Storage("product.by_id", err)
	}
	return product, nil
}

func (s *GormProductStore) ByName(name string) (models.Product, error) {
	var product models.Product
	err := s.db.First(&product, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, errs.NotFound("product", name)
	}
	if err != nil {
		return models.Product{}, errs.Storage("product.by_name", err)
	}
	return product, nil
}

func (s *GormProductStore) List(f ProductFilter) (ProductPage, error) {
	query := s.db.Model(&models.Product{})

	if f.Genre != "" {
		query = query.Where("genre = ?", f.Genre)
	}

	switch f.Sort {
	case SortPriceAsc:
		query = query.Order("price asc")
	case SortPriceDesc:
		query = query.Order("price desc")
	default:
		query = query.Order("created_at desc")
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return ProductPage{}, errs.Storage("product.list", err)
	}

	// Size membership lives in a serialized column, so it is filtered
	// after the query.
	if f.Size != 0 {
		filtered := products[:0]
		for _, p := range products {
			if p.HasSize(f.Size) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	return paginate(products, f)
}

func paginate(products []models.Product, f ProductFilter) (ProductPage, error) {
	perPage := f.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	total := len(products)
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	if totalPages == 0 {
		totalPages = 1
	}

	page := f.Page
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	return ProductPage{Products: products[start:end], Total: total, TotalPages: totalPages}, nil
}

type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) ByID(id string) (models.User, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, errs.NotFound("user", id)
	}
	if err != nil {
		return models.User{}, errs.Storage("user.by_id", err)
	}
	return user, nil
}

func (s *GormUserStore) ByEmail(email string) (models.User, error) {
	var user models.User
	err := s.db.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, errs.NotFound("user", email)
	}
	if err != nil {
		return models.User{}, errs.Storage("user.by_email", err)
	}
	return user, nil
}
