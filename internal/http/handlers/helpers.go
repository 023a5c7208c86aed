package handlers

import (
	"github.com/castororo/Rajabakkiam-traders/internal/catalog"
	"github.com/castororo/Rajabakkiam-traders/internal/storage"
	"github.com/castororo/Rajabakkiam-traders/pkg/view"
)

func productCards(ps []catalog.Product, assets *storage.Resolver) []view.ProductCard {
	out := make([]view.ProductCard, 0, len(ps))
	for _, p := range ps {
		out = append(out, view.ProductCard{
			ID:          p.ID,
			Name:        p.Name,
			TamilName:   p.TamilName,
			Description: p.Description,
			PackSizes:   p.PackSizes,
			Category:    string(p.Category),
			ImageURL:    assets.URL(p.Image),
		})
	}
	return out
}

func benefitViews(bs []catalog.Benefit) []view.Benefit {
	out := make([]view.Benefit, 0, len(bs))
	for _, b := range bs {
		out = append(out, view.Benefit{Title: b.Title, Description: b.Description, Icon: b.Icon})
	}
	return out
}

func productNames(ps []catalog.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Name)
	}
	return out
}
