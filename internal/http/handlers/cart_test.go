package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castororo/Rajabakkiam-traders/internal/cart"
	"github.com/castororo/Rajabakkiam-traders/internal/config"
	"github.com/castororo/Rajabakkiam-traders/internal/http/cartcookie"
	"github.com/castororo/Rajabakkiam-traders/internal/http/flash"
	"github.com/castororo/Rajabakkiam-traders/internal/http/middleware"
)

type cartTestApp struct {
	engine    *gin.Engine
	cartCodec *cartcookie.Codec
	flCodec   *flash.Codec
}

// newCartTestApp wires only the redirecting cart routes; nothing here
// renders a template.
func newCartTestApp(t *testing.T) *cartTestApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	secret := []byte("test-secret")
	flCodec := flash.NewCodec(secret, "flash", false)
	cartCodec := cartcookie.New(secret, "cart", false)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	biz := config.Business{
		Name:         "Raajabaackiam Traders",
		Phone:        "+91 94433 55596",
		WhatsAppLink: "https://wa.me/919443355596",
	}
	h := NewCartHandler(biz, flCodec, cartCodec, log)

	r := gin.New()
	r.Use(middleware.FlashMiddleware(flCodec), middleware.CartCount(cartCodec, log))
	r.POST("/cart/add", h.Add)
	r.POST("/cart/items/update", h.Update)
	r.POST("/cart/items/remove", h.Remove)
	r.POST("/cart/clear", h.Clear)
	r.POST("/cart/checkout", h.Checkout)
	r.GET("/cart/badge", h.Badge)

	return &cartTestApp{engine: r, cartCodec: cartCodec, flCodec: flCodec}
}

func (a *cartTestApp) post(t *testing.T, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func (a *cartTestApp) get(t *testing.T, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

// responseCookie returns the last cookie set under name; a corrupt
// cookie is cleared before the fresh value is written, so the last
// write wins.
func responseCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	var found *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == name {
			found = ck
		}
	}
	return found
}

func cartItems(t *testing.T, a *cartTestApp, w *httptest.ResponseRecorder) []cart.Item {
	t.Helper()
	ck := responseCookie(t, w, "cart")
	require.NotNil(t, ck, "no cart cookie set")
	items, err := a.cartCodec.Decode(ck.Value)
	require.NoError(t, err)
	return items
}

func TestAddRedirectsToCartAndPersists(t *testing.T) {
	a := newCartTestApp(t)

	w := a.post(t, "/cart/add", url.Values{"product_id": {"ponni-rice"}, "size": {"5kg"}})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/cart", w.Header().Get("Location"))

	items := cartItems(t, a, w)
	require.Len(t, items, 1)
	assert.Equal(t, "ponni-rice-5kg", items[0].ID)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, "Ponni Rice", items[0].Name)

	fl := responseCookie(t, w, "flash")
	require.NotNil(t, fl)
	f, err := a.flCodec.Decode(fl.Value)
	require.NoError(t, err)
	assert.Equal(t, "Added to Cart", f.Title)
}

func TestAddAgainIncrementsExistingLine(t *testing.T) {
	a := newCartTestApp(t)

	w1 := a.post(t, "/cart/add", url.Values{"product_id": {"ponni-rice"}, "size": {"5kg"}})
	ck := responseCookie(t, w1, "cart")
	require.NotNil(t, ck)

	w2 := a.post(t, "/cart/add", url.Values{"product_id": {"ponni-rice"}, "size": {"5kg"}}, ck)

	items := cartItems(t, a, w2)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	fl := responseCookie(t, w2, "flash")
	require.NotNil(t, fl)
	f, err := a.flCodec.Decode(fl.Value)
	require.NoError(t, err)
	assert.Equal(t, "Updated Cart", f.Title)
}

func TestAddUnknownProductRedirectsBack(t *testing.T) {
	a := newCartTestApp(t)

	w := a.post(t, "/cart/add", url.Values{"product_id": {"no-such"}, "size": {"5kg"}})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/products", w.Header().Get("Location"))
	assert.Nil(t, responseCookie(t, w, "cart"))
}

func TestUpdateToZeroRemovesLine(t *testing.T) {
	a := newCartTestApp(t)

	w1 := a.post(t, "/cart/add", url.Values{"product_id": {"ponni-rice"}, "size": {"5kg"}})
	ck := responseCookie(t, w1, "cart")

	w2 := a.post(t, "/cart/items/update", url.Values{"item_id": {"ponni-rice-5kg"}, "qty": {"0"}}, ck)

	assert.Equal(t, "/cart", w2.Header().Get("Location"))
	assert.Empty(t, cartItems(t, a, w2))
}

func TestUpdateClampsQuantity(t *testing.T) {
	a := newCartTestApp(t)

	w1 := a.post(t, "/cart/add", url.Values{"product_id": {"sugar"}, "size": {"1kg"}})
	ck := responseCookie(t, w1, "cart")

	w2 := a.post(t, "/cart/items/update", url.Values{"item_id": {"sugar-1kg"}, "qty": {"500"}}, ck)

	items := cartItems(t, a, w2)
	require.Len(t, items, 1)
	assert.Equal(t, 99, items[0].Quantity)
}

func TestRemoveAndClear(t *testing.T) {
	a := newCartTestApp(t)

	w1 := a.post(t, "/cart/add", url.Values{"product_id": {"sugar"}, "size": {"1kg"}})
	ck := responseCookie(t, w1, "cart")

	w2 := a.post(t, "/cart/items/remove", url.Values{"item_id": {"sugar-1kg"}}, ck)
	assert.Empty(t, cartItems(t, a, w2))

	w3 := a.post(t, "/cart/clear", url.Values{}, ck)
	assert.Equal(t, "/cart", w3.Header().Get("Location"))
	assert.Empty(t, cartItems(t, a, w3))
}

func TestCheckoutEmptyCart(t *testing.T) {
	a := newCartTestApp(t)

	w := a.post(t, "/cart/checkout", url.Values{"address": {"12 Car Street"}})

	assert.Equal(t, "/cart", w.Header().Get("Location"))
	fl := responseCookie(t, w, "flash")
	require.NotNil(t, fl)
	f, err := a.flCodec.Decode(fl.Value)
	require.NoError(t, err)
	assert.Equal(t, "Your cart is empty.", f.Message)
}

func TestCheckoutBlankAddress(t *testing.T) {
	a := newCartTestApp(t)

	w1 := a.post(t, "/cart/add", url.Values{"product_id": {"ponni-rice"}, "size": {"5kg"}})
	ck := responseCookie(t, w1, "cart")

	w2 := a.post(t, "/cart/checkout", url.Values{"address": {"   "}}, ck)

	assert.Equal(t, "/cart", w2.Header().Get("Location"))
	f, err := a.flCodec.Decode(responseCookie(t, w2, "flash").Value)
	require.NoError(t, err)
	assert.Equal(t, "Please enter your delivery address to proceed.", f.Message)
}

func TestCheckoutRedirectsToWhatsApp(t *testing.T) {
	a := newCartTestApp(t)

	w1 := a.post(t, "/cart/add", url.Values{"product_id": {"ponni-rice"}, "size": {"5kg"}})
	ck := responseCookie(t, w1, "cart")

	w2 := a.post(t, "/cart/checkout", url.Values{"address": {"12 Car Street, Salem"}}, ck)

	assert.Equal(t, http.StatusFound, w2.Code)
	loc := w2.Header().Get("Location")
	assert.True(t, strings.HasPrefix(loc, "https://wa.me/919443355596?text="), loc)

	u, err := url.Parse(loc)
	require.NoError(t, err)
	text := u.Query().Get("text")
	assert.Contains(t, text, "Hello Raajabaackiam Traders, I would like to place an order:")
	assert.Contains(t, text, "1. Ponni Rice (பொன்னி அரிசி) - 5kg x 1")
	assert.Contains(t, text, "Delivery Address:\n12 Car Street, Salem")
}

func TestBadgeCountsQuantities(t *testing.T) {
	a := newCartTestApp(t)

	w1 := a.post(t, "/cart/add", url.Values{"product_id": {"ponni-rice"}, "size": {"5kg"}})
	ck := responseCookie(t, w1, "cart")
	w2 := a.post(t, "/cart/add", url.Values{"product_id": {"ponni-rice"}, "size": {"5kg"}}, ck)
	ck = responseCookie(t, w2, "cart")

	w3 := a.get(t, "/cart/badge", ck)

	assert.Equal(t, http.StatusOK, w3.Code)
	assert.JSONEq(t, `{"count": 2}`, w3.Body.String())
}

func TestCorruptCartCookieStartsEmpty(t *testing.T) {
	a := newCartTestApp(t)
	bad := &http.Cookie{Name: "cart", Value: "tampered.cookie"}

	w := a.post(t, "/cart/add", url.Values{"product_id": {"sugar"}, "size": {"1kg"}}, bad)

	items := cartItems(t, a, w)
	require.Len(t, items, 1)
	assert.Equal(t, "sugar-1kg", items[0].ID)
	assert.Equal(t, 1, items[0].Quantity)
}
