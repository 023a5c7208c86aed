// Package cartcookie mirrors the cart into a signed cookie so it
// survives page loads. Two tabs editing at once race with
// last-write-wins on the cookie; accepted.
package cartcookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/castororo/Rajabakkiam-traders/internal/cart"
)

var ErrInvalid = errors.New("invalid cart cookie")

const schemaVersion = 1

// envelope wraps the persisted items with a schema version so a future
// shape change can be told apart from corruption.
type envelope struct {
	V     int         `json:"v"`
	Items []cart.Item `json:"items"`
}

type Codec struct {
	Secret     []byte
	CookieName string
	Secure     bool
}

func New(secret []byte, name string, secure bool) *Codec {
	return &Codec{Secret: secret, CookieName: name, Secure: secure}
}

// value format: base64(json envelope).base64(hmac)
func (c *Codec) Encode(items []cart.Item) (string, error) {
	b, err := json.Marshal(envelope{V: schemaVersion, Items: items})
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	return payload + "." + sign(c.Secret, payload), nil
}

func (c *Codec) Decode(v string) ([]cart.Item, error) {
	parts := strings.Split(v, ".")
	if len(parts) != 2 {
		return nil, ErrInvalid
	}
	payload, sig := parts[0], parts[1]
	if !verify(c.Secret, payload, sig) {
		return nil, ErrInvalid
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalid
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, ErrInvalid
	}
	if env.V != schemaVersion {
		return nil, ErrInvalid
	}
	return env.Items, nil
}

// Get reads the cart from the request cookie. A missing cookie is an
// empty cart; a corrupt one is cleared and reported so the caller can
// log it.
func (c *Codec) Get(ctx *gin.Context) ([]cart.Item, error) {
	v, err := ctx.Cookie(c.CookieName)
	if err != nil || v == "" {
		return nil, nil
	}
	items, err := c.Decode(v)
	if err != nil {
		c.Clear(ctx)
		return nil, err
	}
	return items, nil
}

func (c *Codec) Set(ctx *gin.Context, items []cart.Item) {
	val, err := c.Encode(items)
	if err != nil {
		return
	}
	maxAge := int((30 * 24 * time.Hour).Seconds())
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, val, maxAge, "/", "", c.Secure, true)
}

func (c *Codec) Clear(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, "", -1, "/", "", c.Secure, true)
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func verify(secret []byte, payload, sig string) bool {
	return hmac.Equal([]byte(sign(secret, payload)), []byte(sig))
}
