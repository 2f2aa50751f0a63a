// Package storage uploads report files to S3 for retention and sharing.
package storage

import (
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/hashicorp/go-hclog"
)

// S3Uploader stores report files in an S3 bucket. Credentials come from the
// standard AWS environment or shared config.
type S3Uploader struct {
	bucket string
	sess   *session.Session
	logger hclog.Logger
}

// NewS3Uploader creates an uploader for the given bucket and region.
func NewS3Uploader(bucket, region string, logger hclog.Logger) (*S3Uploader, error) {
	if bucket == "" {
		return nil, fmt.Errorf("S3 bucket is not configured")
	}
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}
	return &S3Uploader{
		bucket: bucket,
		sess:   sess,
		logger: logger,
	}, nil
}

// Upload stores the file under the given key and returns the object location.
func (u *S3Uploader) Upload(path, key string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open report file %q: %w", path, err)
	}
	defer f.Close()

	uploader := s3manager.NewUploader(u.sess)
	out, err := uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   f,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %q to s3://%s/%s: %w", path, u.bucket, key, err)
	}

	u.logger.Info("report uploaded", "bucket", u.bucket, "key", key, "location", out.Location)
	return out.Location, nil
}

// Exists reports whether an object with the given key is already in the bucket.
func (u *S3Uploader) Exists(key string) (bool, error) {
	svc := s3.New(u.sess)
	_, err := svc.HeadObject(&s3.HeadObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && (aerr.Code() == "NotFound" || aerr.Code() == s3.ErrCodeNoSuchKey) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check s3://%s/%s: %w", u.bucket, key, err)
	}
	return true, nil
}
