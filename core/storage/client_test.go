package storage_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"jalsetu/core/storage"
	"jalsetu/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "jalsetu",
			Region:    "ap-south-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestPutJSON(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "bucket", "snapshots/LGD1.json", mock.Anything, mock.AnythingOfType("int64"),
		mock.MatchedBy(func(opts minio.PutObjectOptions) bool { return opts.ContentType == "application/json" })).
		Return(minio.UploadInfo{}, nil)

	err := storage.PutJSON(context.Background(), client, "bucket", "snapshots/LGD1.json", map[string]int{"bills": 3})
	assert.NoError(t, err)
	client.AssertExpectations(t)
}

func TestPutJSON_UploadError(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "bucket", "x.json", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("boom"))

	err := storage.PutJSON(context.Background(), client, "bucket", "x.json", struct{}{})
	assert.ErrorContains(t, err, "failed to upload x.json")
}

func TestGetJSON(t *testing.T) {
	t.Run("Decodes", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "bucket", "x.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader(`{"bills":3}`)), nil)

		var out map[string]int
		require.NoError(t, storage.GetJSON(context.Background(), client, "bucket", "x.json", &out))
		assert.Equal(t, 3, out["bills"])
	})

	t.Run("NoSuchKey", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "bucket", "x.json", mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404})

		var out map[string]int
		err := storage.GetJSON(context.Background(), client, "bucket", "x.json", &out)
		assert.ErrorIs(t, err, storage.ErrObjectNotFound)
	})

	t.Run("BadJSON", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "bucket", "x.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader(`{`)), nil)

		var out map[string]int
		err := storage.GetJSON(context.Background(), client, "bucket", "x.json", &out)
		assert.ErrorContains(t, err, "failed to decode x.json")
	})
}
