package storage

import "strings"

// DefaultImageKey backs every unknown image key. The groceries shot is
// generic enough to stand in for anything in the range.
const DefaultImageKey = "groceries"

// imageFiles maps catalog image keys to asset filenames. Keys missing
// here fall back to the default; a lookup miss is never an error.
var imageFiles = map[string]string{
	"rice-ponni":        "rice-ponni.jpg",
	"rice-basmati":      "rice-basmati.jpg",
	"rice-brown":        "rice-brown.jpg",
	"rice-black":        "rice-black.jpg",
	"rice-red":          "rice-red.jpg",
	"rice-idly":         "rice-idly.jpg",
	"millets":           "millets.jpg",
	"groceries":         "groceries.jpg",
	"malgova-malligai":  "malgova-malligai.jpeg",
	"malgova-kichadi":   "malgova-kichadi.jpeg",
	"rettaikili-kolam":  "rettaikili-kolam.jpeg",
	"rettaikili-ponni":  "rettaikili-ponni.jpeg",
	"white-ponni":       "white-ponni.png",
	"bpt-ponni":         "bpt-ponni.png",
	"dlx-ponni":         "dlx-ponni.png",
	"nei-kichadi":       "nei-kichadi.png",
	"wheat-flour":       "wheat-flour.png",
	"edible-oil":        "edible-oil.png",
	"sugar":             "sugar.png",
	"cherry-brand":      "cherry-rice.png",
	"double-deer":       "double-deer.png",
	"royal-bullet":      "royal-bullet.png",
}

// Resolver turns an image key into a browser-loadable URL under the
// driver's public base.
type Resolver struct {
	BaseURL string
}

func NewResolver(baseURL string) *Resolver {
	return &Resolver{BaseURL: strings.TrimRight(baseURL, "/")}
}

func (r *Resolver) URL(key string) string {
	f, ok := imageFiles[key]
	if !ok {
		f = imageFiles[DefaultImageKey]
	}
	return r.BaseURL + "/" + f
}

// Files exposes the key-to-filename map for the sync tool.
func Files() map[string]string {
	out := make(map[string]string, len(imageFiles))
	for k, v := range imageFiles {
		out[k] = v
	}
	return out
}
