package storage_test

import (
	"errors"
	"fmt"
	"testing"

	"aoe4-sync/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		useSSL   bool
	}{
		{"BareHost", "localhost:9000", false},
		{"HTTPScheme", "http://localhost:9000", false},
		{"HTTPSScheme", "https://s3.amazonaws.com", true},
		{"HTTPSSchemeWithoutFlag", "https://s3.amazonaws.com/", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(storage.Config{
				Endpoint:  tt.endpoint,
				AccessKey: "key",
				SecretKey: "secret",
				UseSSL:    tt.useSSL,
				Region:    "us-east-1",
			})
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}

	t.Run("EmptyEndpoint", func(t *testing.T) {
		_, err := storage.NewClient(storage.Config{Endpoint: "https://"})
		assert.Error(t, err)
	})
}

func TestConfig_Configured(t *testing.T) {
	assert.True(t, storage.Config{Endpoint: "minio:9000", AccessKey: "a", SecretKey: "b"}.Configured())
	assert.False(t, storage.Config{Endpoint: "minio:9000", AccessKey: "a"}.Configured())
	assert.False(t, storage.Config{AccessKey: "a", SecretKey: "b"}.Configured())
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, storage.IsNotFound(minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404}))
	assert.True(t, storage.IsNotFound(minio.ErrorResponse{Code: "NoSuchBucket", StatusCode: 404}))
	assert.False(t, storage.IsNotFound(minio.ErrorResponse{Code: "AccessDenied", StatusCode: 403}))
	assert.False(t, storage.IsNotFound(errors.New("connection reset")))
	assert.False(t, storage.IsNotFound(nil))
	// Wrapping hides the response code.
	assert.False(t, storage.IsNotFound(fmt.Errorf("get: %w", minio.ErrorResponse{Code: "NoSuchKey"})))
}
