package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/castororo/Rajabakkiam-traders/internal/catalog"
	"github.com/castororo/Rajabakkiam-traders/internal/config"
	"github.com/castororo/Rajabakkiam-traders/internal/http/render"
	"github.com/castororo/Rajabakkiam-traders/internal/storage"
	"github.com/castororo/Rajabakkiam-traders/pkg/view"
)

// PagesHandler serves the static marketing pages: home and about.
type PagesHandler struct {
	Business config.Business
	Assets   *storage.Resolver
}

func NewPagesHandler(b config.Business, assets *storage.Resolver) *PagesHandler {
	return &PagesHandler{Business: b, Assets: assets}
}

// Home renders hero, benefits, featured rice and premium brands.
func (h *PagesHandler) Home(c *gin.Context) {
	featured := catalog.Rice
	if len(featured) > 4 {
		featured = featured[:4]
	}
	brands := catalog.PremiumBrands
	if len(brands) > 6 {
		brands = brands[:6]
	}

	c.HTML(http.StatusOK, "home", view.HomePage{
		Page:     render.NewPage(c, h.Business, "Fresh rice & Groceries for Salem", "home"),
		Benefits: benefitViews(catalog.Benefits),
		Featured: productCards(featured, h.Assets),
		Brands:   productCards(brands, h.Assets),
	})
}

func (h *PagesHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about", render.NewPage(c, h.Business, "About Us", "about"))
}
