package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/castororo/Rajabakkiam-traders/internal/cart"
	"github.com/castororo/Rajabakkiam-traders/internal/catalog"
	"github.com/castororo/Rajabakkiam-traders/internal/config"
	"github.com/castororo/Rajabakkiam-traders/internal/http/cartcookie"
	"github.com/castororo/Rajabakkiam-traders/internal/http/flash"
	"github.com/castororo/Rajabakkiam-traders/internal/http/middleware"
	"github.com/castororo/Rajabakkiam-traders/internal/http/render"
	"github.com/castororo/Rajabakkiam-traders/internal/order"
	"github.com/castororo/Rajabakkiam-traders/pkg/view"
)

// CartHandler owns the cart page and every cart mutation. The store is
// rebuilt from the signed cookie on each request and written back on
// every change.
type CartHandler struct {
	Business config.Business
	Flash    *flash.Codec
	CK       *cartcookie.Codec
	Log      *slog.Logger
}

func NewCartHandler(b config.Business, fl *flash.Codec, ck *cartcookie.Codec, l *slog.Logger) *CartHandler {
	return &CartHandler{Business: b, Flash: fl, CK: ck, Log: l}
}

// notice captures the store's toast so the handler can turn it into a
// flash after the mutation.
type notice struct {
	kind    cart.NoticeKind
	title   string
	message string
}

func (h *CartHandler) loadStore(c *gin.Context, last *notice) *cart.Store {
	items, err := h.CK.Get(c)
	if err != nil {
		// Corrupt snapshot: start empty, keep the diagnostic out of
		// the visitor's way.
		h.Log.LogAttrs(c.Request.Context(), slog.LevelWarn, "cart_rehydrate_failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.Any("err", err),
		)
	}

	persist := func(items []cart.Item) { h.CK.Set(c, items) }
	notify := func(kind cart.NoticeKind, title, message string) {
		if last != nil {
			*last = notice{kind: kind, title: title, message: message}
		}
	}
	return cart.NewStore(items, persist, notify)
}

// Get handles GET /cart.
func (h *CartHandler) Get(c *gin.Context) {
	store := h.loadStore(c, nil)

	vm := view.CartPage{
		Page:       render.NewPage(c, h.Business, "Shopping Cart", ""),
		TotalItems: store.TotalItems(),
	}
	for _, it := range store.Items() {
		vm.Items = append(vm.Items, view.CartItem{
			ID:        it.ID,
			Name:      it.Name,
			TamilName: it.TamilName,
			Size:      it.Size,
			Quantity:  it.Quantity,
		})
	}

	c.HTML(http.StatusOK, "cart", vm)
}

// Add handles POST /cart/add.
func (h *CartHandler) Add(c *gin.Context) {
	productID := strings.TrimSpace(c.PostForm("product_id"))
	size := strings.TrimSpace(c.PostForm("size"))

	p, ok := catalog.FindByID(productID)
	if !ok || size == "" {
		render.RedirectWithFlash(c, h.Flash, "/products", view.FlashError, "Please pick a product and pack size.")
		return
	}

	var n notice
	store := h.loadStore(c, &n)
	store.Add(p, size)

	target := "/products"
	if store.Opened() {
		target = "/cart"
	}
	render.RedirectWithFlashTitle(c, h.Flash, target, view.FlashSuccess, n.title, n.message)
}

// Update handles POST /cart/items/update.
func (h *CartHandler) Update(c *gin.Context) {
	id := strings.TrimSpace(c.PostForm("item_id"))
	if id == "" {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Item not found.")
		return
	}

	qty := 1
	if v := strings.TrimSpace(c.PostForm("qty")); v != "" {
		if num, err := strconv.Atoi(v); err == nil {
			qty = num
		}
	}
	if qty > 99 {
		qty = 99
	}

	store := h.loadStore(c, nil)
	store.UpdateQuantity(id, qty)

	c.Redirect(http.StatusFound, "/cart")
}

// Remove handles POST /cart/items/remove.
func (h *CartHandler) Remove(c *gin.Context) {
	id := strings.TrimSpace(c.PostForm("item_id"))
	if id == "" {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashWarning, "Item not found.")
		return
	}

	store := h.loadStore(c, nil)
	store.Remove(id)

	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "Item removed from cart.")
}

// Clear handles POST /cart/clear.
func (h *CartHandler) Clear(c *gin.Context) {
	store := h.loadStore(c, nil)
	store.Clear()

	c.Redirect(http.StatusFound, "/cart")
}

// Checkout handles POST /cart/checkout: validate, compose the order
// text, and send the visitor to WhatsApp with it. Nothing is
// transmitted by the site itself.
func (h *CartHandler) Checkout(c *gin.Context) {
	address := c.PostForm("address")

	store := h.loadStore(c, nil)
	msg, err := order.CheckoutMessage(store.Items(), address)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrEmptyCart):
			render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashWarning, "Your cart is empty.")
		case errors.Is(err, order.ErrBlankAddress):
			render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Please enter your delivery address to proceed.")
		default:
			render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Checkout failed. Please try again.")
		}
		return
	}

	c.Redirect(http.StatusFound, order.WhatsAppCheckoutLink(h.Business.Phone, msg))
}

// Badge handles GET /cart/badge, the JSON count for the header badge.
func (h *CartHandler) Badge(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": middleware.GetCartCount(c)})
}
