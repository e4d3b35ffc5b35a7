// internal/storage/s3.go
package storage

import (
	"context"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type s3Storage struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewS3Storage stores objects in the given bucket and resolves their public
// URLs against publicBaseURL.
func NewS3Storage(client *s3.Client, bucket, publicBaseURL string) ObjectStorage {
	return &s3Storage{client: client, bucket: bucket, publicBaseURL: publicBaseURL}
}

func (s *s3Storage) Save(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	uploader := manager.NewUploader(s.client)
	_, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return strings.TrimRight(s.publicBaseURL, "/") + "/" + key, nil
}
