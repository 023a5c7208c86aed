// Package http wires middleware, handlers and templates into the gin
// engine.
package http

import (
	"html/template"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/castororo/Rajabakkiam-traders/internal/config"
	"github.com/castororo/Rajabakkiam-traders/internal/http/cartcookie"
	"github.com/castororo/Rajabakkiam-traders/internal/http/flash"
	"github.com/castororo/Rajabakkiam-traders/internal/http/handlers"
	"github.com/castororo/Rajabakkiam-traders/internal/http/middleware"
	"github.com/castororo/Rajabakkiam-traders/internal/shared/apperr"
	"github.com/castororo/Rajabakkiam-traders/internal/storage"
)

const (
	flashCookieName = "raajabaackiam_flash"
	cartCookieName  = "raajabaackiam_cart"
)

func NewRouter(l *slog.Logger, cfg config.Config, assets storage.FactoryResult) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	secret := []byte(cfg.CookieSecret)
	flashCodec := flash.NewCodec(secret, flashCookieName, cfg.SecureCookie)
	cartCodec := cartcookie.New(secret, cartCookieName, cfg.SecureCookie)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(l),
		middleware.Recovery(l),
		middleware.ErrorHandler(l),
		middleware.FlashMiddleware(flashCodec),
		middleware.CartCount(cartCodec, l),
	)

	r.SetFuncMap(template.FuncMap{
		"inc": func(n int) int { return n + 1 },
		"dec": func(n int) int { return n - 1 },
	})
	r.LoadHTMLGlob("templates/*.tmpl")

	r.Static("/static/css", "./static/css")
	if assets.Driver == "local" {
		if dir := os.Getenv("LOCAL_ASSET_DIR"); dir != "" {
			r.Static("/static/img", dir)
		} else {
			r.Static("/static/img", "./static/img")
		}
	}

	pages := handlers.NewPagesHandler(cfg.Business, assets.Resolver)
	products := handlers.NewProductsHandler(cfg.Business, assets.Resolver)
	contact := handlers.NewContactHandler(cfg.Business, flashCodec)
	cart := handlers.NewCartHandler(cfg.Business, flashCodec, cartCodec, l)
	orders := handlers.NewOrderHandler(cfg.Business, flashCodec)

	r.GET("/", pages.Home)
	r.GET("/products", products.List)
	r.GET("/about", pages.About)
	r.GET("/contact", contact.Get)
	r.POST("/contact", contact.Post)

	r.GET("/cart", cart.Get)
	r.GET("/cart/badge", cart.Badge)
	r.POST("/cart/add", cart.Add)
	r.POST("/cart/items/update", cart.Update)
	r.POST("/cart/items/remove", cart.Remove)
	r.POST("/cart/clear", cart.Clear)
	r.POST("/cart/checkout", cart.Checkout)

	r.GET("/order", orders.Get)
	r.POST("/order", orders.Post)

	r.NoRoute(func(c *gin.Context) {
		middleware.Fail(c, apperr.NotFoundErr("The page you're looking for doesn't exist."))
	})

	return r
}
