package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/castororo/Rajabakkiam-traders/internal/catalog"
	"github.com/castororo/Rajabakkiam-traders/internal/config"
	"github.com/castororo/Rajabakkiam-traders/internal/http/render"
	"github.com/castororo/Rajabakkiam-traders/internal/storage"
	"github.com/castororo/Rajabakkiam-traders/pkg/view"
)

// ProductsHandler serves the catalog listing with search and category
// filters.
type ProductsHandler struct {
	Business config.Business
	Assets   *storage.Resolver
}

func NewProductsHandler(b config.Business, assets *storage.Resolver) *ProductsHandler {
	return &ProductsHandler{Business: b, Assets: assets}
}

func (h *ProductsHandler) List(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	category := catalog.ParseCategory(c.Query("category"))

	matched := catalog.Filter(query, category)

	var rice, premium, grocery []catalog.Product
	for _, p := range matched {
		switch p.Category {
		case catalog.CategoryRice:
			rice = append(rice, p)
		case catalog.CategoryPremiumBrand:
			premium = append(premium, p)
		case catalog.CategoryGrocery:
			grocery = append(grocery, p)
		}
	}

	c.HTML(http.StatusOK, "products", view.ProductsPage{
		Page:     render.NewPage(c, h.Business, "Our Products", "products"),
		Query:    query,
		Category: string(category),
		Total:    len(matched),
		Rice:     productCards(rice, h.Assets),
		Premium:  productCards(premium, h.Assets),
		Grocery:  productCards(grocery, h.Assets),
	})
}
