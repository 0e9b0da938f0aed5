package supabase

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
)

// ErrStorage marks any failure to persist an image in object storage. A
// submit that hits this error must not create a record referencing the image.
var ErrStorage = errors.New("storage upload failed")

const wireframeFolder = "wireframes"

type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, serviceRoleKey, bucket string) (*StorageClient, error) {
	// Ensure URL doesn't have trailing slash
	baseURL := supabaseURL
	if len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	client := storage.NewClient(baseURL+"/storage/v1", serviceRoleKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// UploadWireframeImage stores raw image bytes under a collision-resistant key
// in the wireframes folder and returns the storage path plus a publicly
// fetchable URL. The key combines a nanosecond timestamp with a short random
// suffix so two uploads in the same instant cannot collide.
func (s *StorageClient) UploadWireframeImage(data []byte, contentType string) (string, string, error) {
	if contentType == "" {
		contentType = "image/png"
	}

	key := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), uuid.New().String()[:8], extensionFor(contentType))
	storagePath := fmt.Sprintf("%s/%s", wireframeFolder, key)

	upsert := false
	_, err := s.client.UploadFile(s.bucket, storagePath, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return storagePath, s.GetPublicURL(storagePath), nil
}

func (s *StorageClient) GetPublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		s.baseURL, s.bucket, storagePath)
}

func (s *StorageClient) DeleteFile(storagePath string) error {
	_, err := s.client.RemoveFile(s.bucket, []string{storagePath})
	return err
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
