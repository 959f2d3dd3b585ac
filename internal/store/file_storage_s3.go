package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// s3API is the subset of *s3.Client used by s3FileStorage.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type s3FileStorage struct {
	client s3API
	bucket string
	logger *logger.Logger
}

// NewS3FileStorage connects to an S3-compatible object store. A custom
// endpoint (MinIO and the like) replaces the AWS one when set.
func NewS3FileStorage(ctx context.Context, cfg config.S3, logger *logger.Logger) (FileStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		logger.Err(err).Str("func", "NewS3FileStorage").Msg("error loading aws config")
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	logger.Debug().Str("bucket", cfg.Bucket).Str("endpoint", cfg.Endpoint).Msg("creating s3 file storage")
	return newS3FileStorage(client, cfg.Bucket, logger), nil
}

func newS3FileStorage(client s3API, bucket string, logger *logger.Logger) *s3FileStorage {
	return &s3FileStorage{client: client, bucket: bucket, logger: logger}
}

func (s *s3FileStorage) Save(ctx context.Context, name string, content io.Reader, size int64) error {
	log := logger.FromContext(ctx)

	if !validFileName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidFileName, name)
	}

	// the SDK needs a seekable body to sign the payload
	body, ok := content.(io.ReadSeeker)
	if !ok {
		buf := bytes.NewBuffer(make([]byte, 0, max(size, 0)))
		n, err := io.Copy(buf, content)
		if err != nil {
			return fmt.Errorf("error reading upload %s: %w", name, err)
		}
		body, size = bytes.NewReader(buf.Bytes()), n
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
		Body:   body,
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		log.Err(err).Str("func", "*s3FileStorage.Save").Str("file", name).Msg("error uploading object")
		return fmt.Errorf("error uploading object %s: %w", name, err)
	}

	log.Debug().Str("func", "*s3FileStorage.Save").Str("file", name).Msg("object uploaded")
	return nil
}

func (s *s3FileStorage) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if !validFileName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFileName, name)
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	})
	if isS3NotFound(err) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3FileStorage.Open").Str("file", name).Msg("error getting object")
		return nil, fmt.Errorf("error getting object %s: %w", name, err)
	}

	return out.Body, nil
}

// Remove checks existence first: DeleteObject succeeds for missing keys.
func (s *s3FileStorage) Remove(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	if !validFileName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidFileName, name)
	}

	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	})
	if isS3NotFound(err) {
		return ErrFileNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*s3FileStorage.Remove").Str("file", name).Msg("error checking object")
		return fmt.Errorf("error checking object %s: %w", name, err)
	}

	if _, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	}); err != nil {
		log.Err(err).Str("func", "*s3FileStorage.Remove").Str("file", name).Msg("error deleting object")
		return fmt.Errorf("error deleting object %s: %w", name, err)
	}

	return nil
}

func isS3NotFound(err error) bool {
	if err == nil {
		return false
	}

	var notFound *types.NotFound
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &notFound) || errors.As(err, &noSuchKey) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey":
			return true
		}
	}

	return false
}
