package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const cloudinaryFolder = "products"

type CloudinaryStorage struct {
	client *cloudinary.Cloudinary
}

func NewCloudinaryStorage(cloudName, apiKey, apiSecret string) (*CloudinaryStorage, error) {
	client, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary client: %w", err)
	}
	return &CloudinaryStorage{client: client}, nil
}

func (s *CloudinaryStorage) Upload(ctx context.Context, file io.Reader, filename string) (string, error) {
	result, err := s.client.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: cloudinaryFolder,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed for %s: %w", filename, err)
	}
	return result.SecureURL, nil
}

// Delete derives the public ID from the delivery URL: everything after the
// /upload/ segment, minus the version prefix and file extension.
func (s *CloudinaryStorage) Delete(ctx context.Context, url string) error {
	publicID := publicIDFromURL(url)
	if publicID == "" {
		return fmt.Errorf("cannot derive public id from url %s", url)
	}

	_, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy failed for %s: %w", publicID, err)
	}
	return nil
}

func publicIDFromURL(url string) string {
	_, after, found := strings.Cut(url, "/upload/")
	if !found {
		return ""
	}

	// Strip the "v123456789/" version segment when present.
	if strings.HasPrefix(after, "v") {
		if slash := strings.Index(after, "/"); slash > 0 {
			version := after[1:slash]
			if version != "" && strings.Trim(version, "0123456789") == "" {
				after = after[slash+1:]
			}
		}
	}

	if dot := strings.LastIndex(after, "."); dot > 0 {
		after = after[:dot]
	}
	return after
}
