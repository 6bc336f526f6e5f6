package photos

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chris/debt-ledger/pkg/photos/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var shotAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestDecodeDataURL(t *testing.T) {
	payload := []byte{0xff, 0xd8, 0xff, 0xe0}
	encoded := base64.StdEncoding.EncodeToString(payload)

	t.Run("Data URL", func(t *testing.T) {
		data, err := DecodeDataURL("data:image/jpeg;base64," + encoded)
		require.NoError(t, err)
		assert.Equal(t, payload, data)
	})

	t.Run("Bare Base64", func(t *testing.T) {
		data, err := DecodeDataURL(encoded)
		require.NoError(t, err)
		assert.Equal(t, payload, data)
	})

	t.Run("Not Base64", func(t *testing.T) {
		_, err := DecodeDataURL("data:image/jpeg;base64,@@@")
		assert.ErrorIs(t, err, ErrInvalidImage)
	})

	t.Run("Missing Encoding", func(t *testing.T) {
		_, err := DecodeDataURL("data:image/jpeg," + encoded)
		assert.ErrorIs(t, err, ErrInvalidImage)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := DecodeDataURL("  ")
		assert.ErrorIs(t, err, ErrInvalidImage)
	})
}

func TestObjectKey(t *testing.T) {
	pattern := regexp.MustCompile(`^2024-05/(.+)_2024-05-01_[0-9a-f]{8}\.jpg$`)

	for name, want := range map[string]string{
		"John Doe":       "John_Doe",
		"Алия Серикова":  "Алия_Серикова",
		"O'Brien/../etc": "OBrienetc",
		"!!!":            "unknown",
	} {
		t.Run(want, func(t *testing.T) {
			m := pattern.FindStringSubmatch(objectKey(name, shotAt))
			require.NotNil(t, m)
			assert.Equal(t, want, m[1])
		})
	}
}

func TestIsReference(t *testing.T) {
	assert.True(t, IsReference("/uploads/2024-05/a.jpg"))
	assert.True(t, IsReference("s3://bucket/uploads/a.jpg"))
	assert.False(t, IsReference("data:image/jpeg;base64,AAAA"))
}

func TestLocalStore(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)
	store.Now = func() time.Time { return shotAt }

	ref, err := store.Save(context.Background(), "John Doe", []byte("jpeg"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "/uploads/2024-05/John_Doe_2024-05-01_"))

	written, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(ref, "/uploads/"))))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg"), written)
}

func TestLocalStoreDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	ref, err := store.Save(context.Background(), "John Doe", []byte("jpeg"))
	require.NoError(t, err)
	target := filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(ref, "/uploads/")))

	require.NoError(t, store.Delete(context.Background(), ref))
	_, err = os.Stat(target)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, store.Delete(context.Background(), ref), "already removed")
	assert.NoError(t, store.Delete(context.Background(), "https://example.com/a.jpg"))
}

func TestS3Store(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.S3API)
		store := NewS3StoreWithClient(mockClient, "photos")
		store.Now = func() time.Time { return shotAt }

		mockClient.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
			return *in.Bucket == "photos" &&
				strings.HasPrefix(*in.Key, "uploads/2024-05/Jane_2024-05-01_") &&
				*in.ContentLength == 4
		})).Once().Return(&s3.PutObjectOutput{}, nil)

		ref, err := store.Save(context.Background(), "Jane", []byte("jpeg"))

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(ref, "s3://photos/uploads/2024-05/Jane_2024-05-01_"))
		mockClient.AssertExpectations(t)
	})

	t.Run("Upload Error", func(t *testing.T) {
		mockClient := new(mocks.S3API)
		store := NewS3StoreWithClient(mockClient, "photos")

		mockClient.On("PutObject", mock.Anything, mock.Anything).Once().Return(nil, errors.New("access denied"))

		_, err := store.Save(context.Background(), "Jane", []byte("jpeg"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to upload photo")
	})

	t.Run("Delete", func(t *testing.T) {
		mockClient := new(mocks.S3API)
		store := NewS3StoreWithClient(mockClient, "photos")

		mockClient.On("DeleteObject", mock.Anything, mock.MatchedBy(func(in *s3.DeleteObjectInput) bool {
			return *in.Bucket == "photos" && *in.Key == "uploads/2024-05/Jane.jpg"
		})).Once().Return(&s3.DeleteObjectOutput{}, nil)

		require.NoError(t, store.Delete(context.Background(), "s3://photos/uploads/2024-05/Jane.jpg"))
		require.NoError(t, store.Delete(context.Background(), "s3://other/uploads/2024-05/Jane.jpg"))
		mockClient.AssertExpectations(t)
	})
}
