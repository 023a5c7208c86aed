package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/castororo/Rajabakkiam-traders/internal/catalog"
)

func TestResolverURL(t *testing.T) {
	r := NewResolver("/static/img/")

	assert.Equal(t, "/static/img/rice-ponni.jpg", r.URL("rice-ponni"))
	assert.Equal(t, "/static/img/white-ponni.png", r.URL("white-ponni"))
}

func TestResolverUnknownKeyFallsBack(t *testing.T) {
	r := NewResolver("https://cdn.example.com/assets")

	assert.Equal(t, "https://cdn.example.com/assets/groceries.jpg", r.URL("no-such-key"))
	assert.Equal(t, "https://cdn.example.com/assets/groceries.jpg", r.URL(""))
}

func TestEveryCatalogImageKeyResolves(t *testing.T) {
	files := Files()
	for _, p := range catalog.All() {
		_, ok := files[p.Image]
		assert.True(t, ok, "image key %q of product %s has no file", p.Image, p.ID)
	}
}

func TestFilesReturnsCopy(t *testing.T) {
	Files()["rice-ponni"] = "tampered.jpg"

	r := NewResolver("")
	assert.Equal(t, "/rice-ponni.jpg", r.URL("rice-ponni"))
}
