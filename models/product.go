package models

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Genre string

const (
	GenreHombre Genre = "hombre"
	GenreMujer  Genre = "mujer"
	GenreKids   Genre = "kids"
)

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

type Product struct {
	ID          string          `gorm:"primaryKey" json:"id"`
	SKU         string          `gorm:"uniqueIndex;not null" json:"sku"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric;not null" json:"price"`
	Discount    decimal.Decimal `gorm:"type:numeric" json:"discount"`
	Stock       int             `json:"stock"`
	Sizes       SizeList        `gorm:"type:text" json:"sizes"`
	Images      StringList      `gorm:"type:text" json:"images"`
	Genre       Genre           `gorm:"type:VARCHAR(10)" json:"genre"`
	Brand       Brand           `gorm:"embedded;embeddedPrefix:brand_" json:"brand"`
	Status      ProductStatus   `gorm:"type:VARCHAR(20);default:'active'" json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

type Brand struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// HasSize reports whether the product is offered in the given size.
func (p Product) HasSize(size int) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// SizeList stores numeric size variants as a comma separated text column.
type SizeList []int

func (l SizeList) Value() (driver.Value, error) {
	parts := make([]string, len(l))
	for i, s := range l {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ","), nil
}

func (l *SizeList) Scan(value interface{}) error {
	s, err := scanString(value)
	if err != nil {
		return err
	}
	*l = nil
	if s == "" {
		return nil
	}
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("invalid size %q: %w", part, err)
		}
		*l = append(*l, n)
	}
	return nil
}

// StringList stores image URLs as a comma separated text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return strings.Join(l, ","), nil
}

func (l *StringList) Scan(value interface{}) error {
	s, err := scanString(value)
	if err != nil {
		return err
	}
	*l = nil
	if s == "" {
		return nil
	}
	*l = strings.Split(s, ",")
	return nil
}

func scanString(value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("unsupported column type %T", value)
	}
}
