package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/salesops-id/salesops-backend-go/internal/pkg/storage"
)

type FileService interface {
	// KTP photo uploads for slik verification
	UploadKTPImage(ctx context.Context, profileID string, file io.Reader, filename string) (string, error)

	// Avatar uploads
	UploadAvatar(ctx context.Context, profileID string, file io.Reader, filename string) (string, error)

	// Generic operations
	DeleteFile(ctx context.Context, path string) error
	GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

func validateImageExt(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png":
		return ext, nil
	}
	return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
}

func contentTypeForExt(ext string) string {
	if ext == ".png" {
		return "image/png"
	}
	return "image/jpeg"
}

// UploadKTPImage uploads a KTP card photo scoped under the uploading profile.
func (s *fileServiceImpl) UploadKTPImage(ctx context.Context, profileID string, file io.Reader, filename string) (string, error) {
	ext, err := validateImageExt(filename)
	if err != nil {
		return "", err
	}

	newFilename := fmt.Sprintf("ktp-%s%s", uuid.New().String(), ext)
	path := filepath.Join("ktp", profileID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path, contentTypeForExt(ext))
	if err != nil {
		return "", fmt.Errorf("failed to upload ktp image: %w", err)
	}

	return uploadedPath, nil
}

// UploadAvatar uploads a profile avatar.
func (s *fileServiceImpl) UploadAvatar(ctx context.Context, profileID string, file io.Reader, filename string) (string, error) {
	ext, err := validateImageExt(filename)
	if err != nil {
		return "", err
	}

	newFilename := fmt.Sprintf("%s-%s%s", profileID, uuid.New().String(), ext)
	path := filepath.Join("avatars", profileID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path, contentTypeForExt(ext))
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	return uploadedPath, nil
}

// DeleteFile removes a stored file.
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

// GetFileURL returns an access URL for a stored file.
func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return s.storage.GetURL(ctx, path, expiry)
}
