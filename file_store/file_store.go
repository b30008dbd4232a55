package file_store

import (
	"context"
	"os"

	"github.com/pkg/errors"
)

const (
	LocalStore = "local"
	S3Store    = "s3"
	MinioStore = "minio"
)

// ImageStore keeps post images, addressed by object key such as
// "posts/<uuid>.gif".
type ImageStore interface {
	Store(ctx context.Context, key string, contentType string, data []byte) error
	GetUrlFromKey(key string) string
	// Delete removes the object, deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// NewImageStoreFromEnv builds the store selected by FILE_STORE, local disk
// under MEDIA_ROOT is the default.
func NewImageStoreFromEnv(ctx context.Context) (ImageStore, error) {
	switch os.Getenv("FILE_STORE") {
	case S3Store:
		return NewS3FileStore(os.Getenv("S3_BUCKET"), os.Getenv("S3_REGION"), os.Getenv("S3_PUBLIC_URL"))
	case MinioStore:
		return NewMinioFileStore(ctx, MinioConfig{
			Endpoint:  os.Getenv("MINIO_ENDPOINT"),
			AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			Bucket:    os.Getenv("MINIO_BUCKET"),
			UseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
		})
	case LocalStore, "":
		root := os.Getenv("MEDIA_ROOT")
		if root == "" {
			root = DefaultMediaRoot
		}
		return NewLocalFileStore(root, MediaUrlPrefix)
	}
	return nil, errors.Errorf("unknown FILE_STORE %q", os.Getenv("FILE_STORE"))
}
