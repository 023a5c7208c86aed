// Package render bridges handlers and the HTML templates: it fills
// the shared page chrome (flash, cart badge, business block) and
// handles flash-carrying redirects.
package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/castororo/Rajabakkiam-traders/internal/config"
	"github.com/castororo/Rajabakkiam-traders/internal/http/flash"
	"github.com/castororo/Rajabakkiam-traders/internal/http/middleware"
	"github.com/castororo/Rajabakkiam-traders/internal/order"
	"github.com/castororo/Rajabakkiam-traders/pkg/view"
)

// BusinessView maps the config block onto the view model once per
// render; templates never see config directly.
func BusinessView(b config.Business) view.Business {
	return view.Business{
		Name:         b.Name,
		Phone:        b.Phone,
		PhoneDisplay: b.PhoneDisplay,
		Email:        b.Email,
		Address:      b.Address,
		Hours:        b.Hours,
		MapsEmbedURL: b.MapsEmbedURL,
		WhatsAppLink: b.WhatsAppLink,
		TelLink:      order.TelLink(b.Phone),
	}
}

// NewPage assembles the shared chrome for a page render.
func NewPage(c *gin.Context, b config.Business, title, active string) view.Page {
	return view.Page{
		Title:     title,
		Active:    active,
		Flash:     middleware.GetFlash(c),
		CartCount: middleware.GetCartCount(c),
		Business:  BusinessView(b),
	}
}

func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, msg string) {
	middleware.SetFlashCookie(c, codec, view.Flash{Kind: kind, Message: msg})
	c.Redirect(http.StatusFound, location)
}

func RedirectWithFlashTitle(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, title, msg string) {
	middleware.SetFlashCookie(c, codec, view.Flash{Kind: kind, Title: title, Message: msg})
	c.Redirect(http.StatusFound, location)
}
