package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService uploads listing images and returns their public URL.
type StorageService interface {
	UploadImage(ctx context.Context, file io.Reader, folder string) (string, error)
}

// CloudinaryStorage implements StorageService using Cloudinary.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage creates a StorageService over the given Cloudinary client.
func NewCloudinaryStorage(cld *cloudinary.Cloudinary) StorageService {
	return &CloudinaryStorage{cld: cld}
}

// UploadImage uploads the file into the given folder and returns its secure URL.
func (s *CloudinaryStorage) UploadImage(ctx context.Context, file io.Reader, folder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", fmt.Errorf("storage: failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("storage: no URL returned for upload")
	}
	return result.SecureURL, nil
}
