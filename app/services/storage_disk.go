package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DiskStorage keeps uploads on the local filesystem and serves them under
// baseURL. Used when Cloudinary credentials are not configured.
type DiskStorage struct {
	dir     string
	baseURL string
}

func NewDiskStorage(dir, baseURL string) (*DiskStorage, error) {
	if dir == "" {
		dir = "uploads/products"
	}
	if baseURL == "" {
		baseURL = "/uploads/products"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}
	return &DiskStorage{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

func (s *DiskStorage) Upload(ctx context.Context, file io.Reader, filename string) (string, error) {
	ext := filepath.Ext(filename)
	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	destination := filepath.Join(s.dir, name)

	out, err := os.Create(destination)
	if err != nil {
		return "", fmt.Errorf("could not create file %s: %w", destination, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return "", fmt.Errorf("could not save file %s: %w", destination, err)
	}

	return s.baseURL + "/" + name, nil
}

func (s *DiskStorage) Delete(ctx context.Context, url string) error {
	name := filepath.Base(url)
	if name == "." || name == "/" || name == "" {
		return fmt.Errorf("cannot derive filename from url %s", url)
	}
	return os.Remove(filepath.Join(s.dir, name))
}

// Dir is the directory the static file route serves from.
func (s *DiskStorage) Dir() string {
	return s.dir
}
