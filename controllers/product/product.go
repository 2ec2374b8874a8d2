package productControllers

import (
	"net/http"
	"strconv"

	"github.com/JamesBarr456/tienda-api/errs"
	"github.com/JamesBarr456/tienda-api/models"
	"github.com/JamesBarr456/tienda-api/store"
	"github.com/gin-gonic/gin"
)

// GET /user/products
func GetProducts(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := store.ProductFilter{
			Genre: models.Genre(c.Query("genre")),
			Sort:  c.Query("sort"),
		}

		if sizeStr := c.Query("size"); sizeStr != "" {
			size, err := strconv.Atoi(sizeStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid size"})
				return
			}
			filter.Size = size
		}
		if pageStr := c.Query("page"); pageStr != "" {
			page, err := strconv.Atoi(pageStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
				return
			}
			filter.Page = page
		}

		page, err := products.List(filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// GET /user/products/:id
func GetProductByID(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := products.ByID(c.Param("id"))
		if err != nil {
			if errs.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GET /user/products/by-name/:name
func GetProductByName(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := products.ByName(c.Param("name"))
		if err != nil {
			if errs.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
