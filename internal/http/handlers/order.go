package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/castororo/Rajabakkiam-traders/internal/catalog"
	"github.com/castororo/Rajabakkiam-traders/internal/config"
	"github.com/castororo/Rajabakkiam-traders/internal/http/flash"
	"github.com/castororo/Rajabakkiam-traders/internal/http/middleware"
	"github.com/castororo/Rajabakkiam-traders/internal/http/render"
	"github.com/castororo/Rajabakkiam-traders/internal/order"
	"github.com/castororo/Rajabakkiam-traders/pkg/view"
)

// OrderHandler serves the single-product order form and turns a valid
// submission into the business's WhatsApp link with the message
// pre-filled.
type OrderHandler struct {
	Business config.Business
	Flash    *flash.Codec
}

func NewOrderHandler(b config.Business, fl *flash.Codec) *OrderHandler {
	return &OrderHandler{Business: b, Flash: fl}
}

// Get handles GET /order. An optional ?product= pre-selects the
// product, as the product cards link here.
func (h *OrderHandler) Get(c *gin.Context) {
	h.renderForm(c, view.OrderForm{
		Product:      c.Query("product"),
		QuantityUnit: "kg",
	})
}

// Post handles POST /order. Validation surfaces one error at a time in
// field order; entered values are echoed back so nothing is lost.
func (h *OrderHandler) Post(c *gin.Context) {
	var f order.Form
	if err := c.ShouldBind(&f); err != nil {
		render.RedirectWithFlash(c, h.Flash, "/order", view.FlashError, "The submitted form is invalid.")
		return
	}
	if f.QuantityUnit == "" {
		f.QuantityUnit = "kg"
	}

	if err := f.Validate(); err != nil {
		fl := &view.Flash{Kind: view.FlashError, Message: "Please fill in the missing details."}
		var ve *order.ValidationError
		if errors.As(err, &ve) {
			fl = &view.Flash{Kind: view.FlashError, Title: ve.Title, Message: ve.Message}
		}
		c.Set(middleware.CtxKeyFlash, fl)
		h.renderForm(c, view.OrderForm{
			Name:          f.Name,
			Phone:         f.Phone,
			Address:       f.Address,
			Product:       f.Product,
			QuantityValue: f.QuantityValue,
			QuantityUnit:  f.QuantityUnit,
			DeliveryDate:  f.DeliveryDate,
			Notes:         f.Notes,
		})
		return
	}

	middleware.SetFlashCookie(c, h.Flash, view.Flash{
		Kind:    view.FlashSuccess,
		Title:   "Opening WhatsApp...",
		Message: "Please send the pre-filled message to confirm your order.",
	})
	c.Redirect(http.StatusFound, order.Link(h.Business.WhatsAppLink, f.Message()))
}

func (h *OrderHandler) renderForm(c *gin.Context, f view.OrderForm) {
	c.HTML(http.StatusOK, "order", view.OrderPage{
		Page:     render.NewPage(c, h.Business, "Place Your Order", ""),
		Form:     f,
		Products: productNames(catalog.All()),
		Units:    order.Units,
	})
}
