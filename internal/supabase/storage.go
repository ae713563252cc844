package supabase

import (
	"bytes"
	"fmt"

	storage "github.com/supabase-community/storage-go"
)

type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, apiKey, bucket string) (*StorageClient, error) {
	// Ensure URL doesn't have trailing slash
	baseURL := supabaseURL
	if len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	client := storage.NewClient(baseURL+"/storage/v1", apiKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// Upload stores an object under the given key and returns its public URL.
// Upsert is disabled: keys embed a nanosecond timestamp and batch index, and
// an existing key must never be overwritten.
func (s *StorageClient) Upload(key string, data []byte, contentType string) (string, error) {
	upsert := false
	_, err := s.client.UploadFile(s.bucket, key, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	return s.PublicURL(key), nil
}

func (s *StorageClient) PublicURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, key)
}

func (s *StorageClient) Delete(key string) error {
	_, err := s.client.RemoveFile(s.bucket, []string{key})
	return err
}

// DeleteProjectObjects removes every stored object under a project's
// namespace. Used when the operator deletes a project.
func (s *StorageClient) DeleteProjectObjects(projectID string) error {
	prefix := projectID + "/"

	files, err := s.client.ListFiles(s.bucket, prefix, storage.FileSearchOptions{
		Limit: 1000,
	})
	if err != nil {
		return fmt.Errorf("failed to list objects: %w", err)
	}

	if len(files) > 0 {
		keys := make([]string, len(files))
		for i, file := range files {
			keys[i] = file.Name
		}
		if _, err := s.client.RemoveFile(s.bucket, keys); err != nil {
			return fmt.Errorf("failed to delete objects: %w", err)
		}
	}

	return nil
}
