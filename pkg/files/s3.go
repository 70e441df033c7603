package files

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3Client is the subset of *s3.Client used by S3Storage.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Storage stores files as objects in one bucket. Safe for concurrent use.
type S3Storage struct {
	client  S3Client
	bucket  string
	prefix  string
	timeout time.Duration
}

type S3Config struct {
	Bucket         string
	Region         string
	AccessKeyID    string
	SecretKey      string
	Endpoint       string // S3-compatible services
	Prefix         string // key prefix prepended to every path
	ForcePathStyle bool   // MinIO and friends
}

type S3Option func(*s3Options)

type s3Options struct {
	client        S3Client
	httpClient    *http.Client
	configOptions []func(*awsconfig.LoadOptions) error
	clientOptions []func(*s3.Options)
	timeout       time.Duration
}

// WithS3Client uses a pre-configured client instead of loading AWS config.
func WithS3Client(client S3Client) S3Option {
	return func(o *s3Options) { o.client = client }
}

// WithHTTPClient sets the HTTP client used by the S3 SDK.
func WithHTTPClient(client *http.Client) S3Option {
	return func(o *s3Options) { o.httpClient = client }
}

// WithS3ConfigOption adds an option applied when loading the AWS config.
func WithS3ConfigOption(option func(*awsconfig.LoadOptions) error) S3Option {
	return func(o *s3Options) { o.configOptions = append(o.configOptions, option) }
}

// WithS3ClientOption adds an option applied to the S3 client.
func WithS3ClientOption(option func(*s3.Options)) S3Option {
	return func(o *s3Options) { o.clientOptions = append(o.clientOptions, option) }
}

// WithS3Timeout bounds every operation. Zero relies on the caller's context.
func WithS3Timeout(d time.Duration) S3Option {
	return func(o *s3Options) { o.timeout = d }
}

// NewS3Storage creates an S3 backed Storage. Bucket and Region are required.
func NewS3Storage(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3Storage, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, ErrInvalidConfig
	}

	o := &s3Options{}
	for _, opt := range opts {
		opt(o)
	}

	client := o.client
	if client == nil {
		loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
			))
		}
		if o.httpClient != nil {
			loadOpts = append(loadOpts, awsconfig.WithHTTPClient(o.httpClient))
		}
		loadOpts = append(loadOpts, o.configOptions...)

		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToLoadConfig, err)
		}
		client = s3.NewFromConfig(awsCfg, func(so *s3.Options) {
			if cfg.Endpoint != "" {
				so.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			so.UsePathStyle = cfg.ForcePathStyle
			for _, opt := range o.clientOptions {
				opt(so)
			}
		})
	}

	prefix := strings.Trim(cfg.Prefix, "/")
	if prefix != "" {
		prefix += "/"
	}
	return &S3Storage{client: client, bucket: cfg.Bucket, prefix: prefix, timeout: o.timeout}, nil
}

func (s *S3Storage) key(path string) (string, error) {
	clean, err := CleanPath(path)
	if err != nil {
		return "", err
	}
	return s.prefix + clean, nil
}

// Save uploads data to path under the configured prefix.
func (s *S3Storage) Save(ctx context.Context, path string, data []byte) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	key, err := s.key(path)
	if err != nil {
		return err
	}
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(http.DetectContentType(data)),
	})
	return classifyS3Error(err, "upload file")
}

// Read downloads path.
func (s *S3Storage) Read(ctx context.Context, path string) ([]byte, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	key, err := s.key(path)
	if err != nil {
		return nil, err
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, classifyS3Error(err, "read file")
	}
	defer func() { _ = out.Body.Close() }()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}
	return data, nil
}

// Exists reports whether an object exists at path.
func (s *S3Storage) Exists(ctx context.Context, path string) (bool, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	key, err := s.key(path)
	if err != nil {
		return false, err
	}
	_, err = s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		return true, nil
	}
	if err = classifyS3Error(err, "check file"); errors.Is(err, ErrFileNotFound) {
		return false, nil
	}
	return false, err
}

// Delete removes the object. Missing objects yield ErrFileNotFound, matching LocalStorage.
func (s *S3Storage) Delete(ctx context.Context, path string) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	key, err := s.key(path)
	if err != nil {
		return err
	}
	if _, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return classifyS3Error(err, "check file")
	}
	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return classifyS3Error(err, "delete file")
}

// classifyS3Error maps SDK errors onto the package sentinels.
func classifyS3Error(err error, operation string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return contextError(err, operation)
	}

	var nsk *types.NoSuchKey
	var nf *types.NotFound
	if errors.As(err, &nsk) || errors.As(err, &nf) {
		return fmt.Errorf("%w: %v", ErrFileNotFound, err)
	}
	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return ErrBucketNotFound
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch code := apiErr.ErrorCode(); code {
		case "AccessDenied", "Forbidden":
			return fmt.Errorf("%w: %s operation", ErrAccessDenied, operation)
		case "RequestTimeout":
			return fmt.Errorf("%w: %s operation", ErrRequestTimeout, operation)
		case "SlowDown", "ServiceUnavailable":
			return fmt.Errorf("%w: %s operation", ErrServiceUnavailable, operation)
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("%w: %v", ErrFileNotFound, err)
		case "NoSuchBucket":
			return ErrBucketNotFound
		default:
			return fmt.Errorf("%s operation failed (code: %s): %w", operation, code, err)
		}
	}
	return fmt.Errorf("%s operation failed: %w", operation, err)
}
