package checks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"jalsetu/core/snapshot"
	"jalsetu/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func objects(infos ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(infos))
	for _, info := range infos {
		ch <- info
	}
	close(ch)
	return ch
}

func snapshotBody(t *testing.T, tenant string) io.ReadCloser {
	data, err := json.Marshal(snapshot.Snapshot{TenantID: tenant})
	require.NoError(t, err)
	return io.NopCloser(bytes.NewReader(data))
}

func TestCheckArchive(t *testing.T) {
	t.Run("Bucket Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "jalsetu").Return(false, nil)

		report, err := CheckArchive(context.Background(), client, "jalsetu", "snapshots")
		require.NoError(t, err)
		assert.Equal(t, []string{MissingBucket, MissingPrefix}, report.Missing)
		assert.False(t, report.OK())
	})

	t.Run("Bucket Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "jalsetu").Return(false, errors.New("unreachable"))

		_, err := CheckArchive(context.Background(), client, "jalsetu", "snapshots")
		assert.ErrorContains(t, err, "failed to check bucket existence")
	})

	t.Run("Prefix Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "jalsetu").Return(true, nil)
		client.On("ListObjects", mock.Anything, "jalsetu", mock.Anything).Return(objects())

		report, err := CheckArchive(context.Background(), client, "jalsetu", "snapshots")
		require.NoError(t, err)
		assert.Equal(t, []string{MissingPrefix}, report.Missing)
	})

	t.Run("Snapshots Scanned", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "jalsetu").Return(true, nil)
		client.On("ListObjects", mock.Anything, "jalsetu", mock.MatchedBy(func(o minio.ListObjectsOptions) bool {
			return !o.Recursive
		})).Return(objects(minio.ObjectInfo{Key: "snapshots/"}))
		client.On("ListObjects", mock.Anything, "jalsetu", mock.MatchedBy(func(o minio.ListObjectsOptions) bool {
			return o.Recursive && o.Prefix == "snapshots/"
		})).Return(objects(
			minio.ObjectInfo{Key: "snapshots/"},
			minio.ObjectInfo{Key: "snapshots/LGD1.json"},
			minio.ObjectInfo{Key: "snapshots/LGD2.json"},
			minio.ObjectInfo{Key: "snapshots/LGD3.json"},
		))
		client.On("GetObject", mock.Anything, "jalsetu", "snapshots/LGD1.json", mock.Anything).Return(snapshotBody(t, "LGD1"), nil)
		client.On("GetObject", mock.Anything, "jalsetu", "snapshots/LGD2.json", mock.Anything).Return(snapshotBody(t, "LGD9"), nil)
		client.On("GetObject", mock.Anything, "jalsetu", "snapshots/LGD3.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader("{")), nil)

		report, err := CheckArchive(context.Background(), client, "jalsetu", "snapshots")
		require.NoError(t, err)
		assert.Empty(t, report.Missing)
		assert.Equal(t, 3, report.Snapshots)
		assert.Equal(t, []string{"snapshots/LGD2.json", "snapshots/LGD3.json"}, report.Unreadable)
	})
}

func TestFixArchive(t *testing.T) {
	client := new(mocks.Client)
	client.On("MakeBucket", mock.Anything, "jalsetu", mock.Anything).Return(nil)
	client.On("PutObject", mock.Anything, "jalsetu", "snapshots/", mock.Anything, int64(0), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	err := FixArchive(context.Background(), client, "jalsetu", "snapshots", zap.NewNop(), []string{MissingBucket, MissingPrefix})
	require.NoError(t, err)
	client.AssertExpectations(t)

	failing := new(mocks.Client)
	failing.On("MakeBucket", mock.Anything, "jalsetu", mock.Anything).Return(errors.New("denied"))
	err = FixArchive(context.Background(), failing, "jalsetu", "snapshots", zap.NewNop(), []string{MissingBucket})
	assert.Error(t, err)
}
