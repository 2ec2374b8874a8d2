package productControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/JamesBarr456/tienda-api/store"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// GET /user/products/export
func ExportProductsToExcel(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := products.List(store.ProductFilter{PerPage: 1 << 20})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "SKU", "Name", "Description", "Price", "Discount",
			"Stock", "Sizes", "Genre", "Brand", "Status", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range page.Products {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.SKU)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price.StringFixed(2))
			row.AddCell().SetValue(p.Discount.StringFixed(2))
			row.AddCell().SetValue(p.Stock)

			var sizes []string
			for _, s := range p.Sizes {
				sizes = append(sizes, strconv.Itoa(s))
			}
			row.AddCell().SetValue(strings.Join(sizes, ","))

			row.AddCell().SetValue(string(p.Genre))
			row.AddCell().SetValue(p.Brand.Name)
			row.AddCell().SetValue(string(p.Status))
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(p.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
