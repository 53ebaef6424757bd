package services

import (
	"context"
	"io"
)

// Storage is the object-storage contract: upload a file and get a stable
// URL back, delete by that same URL later.
type Storage interface {
	Upload(ctx context.Context, file io.Reader, filename string) (string, error)
	Delete(ctx context.Context, url string) error
}
