package store

import (
	"time"

	"github.com/JamesBarr456/tienda-api/models"
	"github.com/shopspring/decimal"
)

// SeedProducts is the mock catalog used when no database is configured.
func SeedProducts() []models.Product {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	p := func(id, sku, name string, price int64, genre models.Genre, sizes ...int) models.Product {
		return models.Product{
			ID:        id,
			SKU:       sku,
			Name:      name,
			Price:     decimal.NewFromInt(price),
			Discount:  decimal.Zero,
			Stock:     25,
			Sizes:     models.SizeList(sizes),
			Images:    models.StringList{"/uploads/" + sku + ".webp"},
			Genre:     genre,
			Brand:     models.Brand{Name: "Urbana", Image: "/uploads/brand-urbana.webp"},
			Status:    models.ProductStatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	return []models.Product{
		p("prod-001", "ZAP-RUN-001", "Zapatilla Runner Negra", 38000, models.GenreHombre, 39, 40, 41, 42, 43),
		p("prod-002", "ZAP-URB-002", "Zapatilla Urbana Blanca", 42500, models.GenreMujer, 35, 36, 37, 38, 39),
		p("prod-003", "BOT-TRK-003", "Botita Trekking", 56000, models.GenreHombre, 40, 41, 42, 43, 44, 45),
		p("prod-004", "SAN-VER-004", "Sandalia Verano", 21000, models.GenreMujer, 35, 36, 37, 38),
		p("prod-005", "ZAP-KID-005", "Zapatilla Kids Luces", 19500, models.GenreKids, 28, 29, 30, 31, 32),
		p("prod-006", "ALP-CLA-006", "Alpargata Clasica", 15000, models.GenreHombre, 39, 40, 41, 42),
	}
}

// SeedUsers provides the mock accounts the session endpoint accepts.
func SeedUsers() []models.User {
	return []models.User{
		{
			ID:        "user-001",
			Email:     "cliente@tienda.test",
			FirstName: "Maria",
			LastName:  "Gonzalez",
			DNI:       "30123456",
			Phone:     models.Phone{AreaCode: "379", Number: "4701723"},
			CreatedAt: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:        "user-002",
			Email:     "invitado@tienda.test",
			FirstName: "Juan",
			LastName:  "Perez",
			DNI:       "28987654",
			Phone:     models.Phone{AreaCode: "379", Number: "4556677"},
			CreatedAt: time.Date(2025, 2, 2, 9, 0, 0, 0, time.UTC),
		},
	}
}
