package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/JamesBarr456/tienda-api/checkout"
	checkoutControllers "github.com/JamesBarr456/tienda-api/controllers/checkout"
	"github.com/JamesBarr456/tienda-api/models"
	"github.com/JamesBarr456/tienda-api/routes"
	"github.com/JamesBarr456/tienda-api/services"
	"github.com/JamesBarr456/tienda-api/store"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	carts, products, users := initStores()

	cartService := services.NewCartService(carts, products)
	orderFeed := checkoutControllers.NewOrderFeed()
	checkoutService := checkout.NewService(cartService, orderFeed)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, routes.Deps{
		Carts:     cartService,
		Checkout:  checkoutService,
		Products:  products,
		Users:     users,
		OrderFeed: orderFeed,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initStores picks the persisted backend when a database is configured
// and the seeded in-memory mock backend otherwise.
func initStores() (store.CartStore, store.ProductStore, store.UserStore) {
	if os.Getenv("DATABASE_URL") == "" && os.Getenv("DB_HOST") == "" {
		log.Println("ℹ️ No database configured, using in-memory stores with the mock catalog")
		return store.NewMemoryCartStore(),
			store.NewMemoryProductStore(store.SeedProducts()),
			store.NewMemoryUserStore(store.SeedUsers())
	}

	db := initDatabase()

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	return store.NewGormCartStore(db), store.NewGormProductStore(db), store.NewGormUserStore(db)
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}
