// Package storage owns product image assets: a write side used by the
// syncassets tool to push files to the configured driver, and a read
// side that resolves catalog image keys to public URLs.
package storage

import (
	"context"
	"io"
)

type PutInput struct {
	// Key pins the object name; empty means the driver picks one.
	Key         string
	Filename    string
	ContentType string
	Size        int64
}

type PutResult struct {
	Key string
	URL string
}

type Storage interface {
	Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error)
	Delete(ctx context.Context, key string) error
}
