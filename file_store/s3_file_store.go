package file_store

import (
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/pkg/errors"
)

const (
	DefaultS3Region = "us-west-1"
)

type S3FileStore struct {
	bucket   string
	uploader *s3manager.Uploader
	svc      *s3.S3
	// publicUrl is the CDN or bucket url objects are served from.
	publicUrl string
}

func NewS3FileStore(bucket string, region string, publicUrl string) (*S3FileStore, error) {
	if bucket == "" {
		return nil, errors.New("S3_BUCKET is required for the s3 file store")
	}
	if region == "" {
		region = DefaultS3Region
	}
	// AWS client session
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, errors.Wrap(err, "cannot create aws session")
	}
	if publicUrl == "" {
		publicUrl = "https://" + bucket + ".s3." + region + ".amazonaws.com/"
	}

	return &S3FileStore{
		bucket:    bucket,
		uploader:  s3manager.NewUploader(sess),
		svc:       s3.New(sess),
		publicUrl: publicUrl,
	}, nil
}

func (s *S3FileStore) Store(ctx context.Context, key string, contentType string, data []byte) error {
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		ACL:         aws.String("public-read"),
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		Body:        bytes.NewReader(data),
	})
	if err != nil {
		return errors.Wrapf(err, "cannot upload %s to s3", key)
	}
	return nil
}

func (s *S3FileStore) GetUrlFromKey(key string) string {
	return s.publicUrl + key
}

func (s *S3FileStore) Delete(ctx context.Context, key string) error {
	_, err := s.svc.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return errors.Wrapf(err, "cannot delete %s from s3", key)
	}
	return nil
}
