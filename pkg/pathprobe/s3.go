package pathprobe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3Client defines the subset of the S3 API used by S3Prober.
type S3Client interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// S3Prober probes s3://bucket/key URIs. It is safe for concurrent use.
type S3Prober struct {
	client S3Client
}

// S3Config contains configuration for the S3 prober.
type S3Config struct {
	Region         string
	AccessKeyID    string
	SecretKey      string
	Endpoint       string // Optional: for S3-compatible services
	ForcePathStyle bool   // For S3-compatible services like MinIO
}

// S3Option defines a function that configures S3Prober.
type S3Option func(*s3Options)

type s3Options struct {
	httpClient      *http.Client
	s3Client        S3Client
	s3ConfigOptions []func(*config.LoadOptions) error
	s3ClientOptions []func(*s3.Options)
}

// WithS3Client sets a custom pre-configured S3 client.
// Useful for testing with mocks.
func WithS3Client(client S3Client) S3Option {
	return func(o *s3Options) {
		o.s3Client = client
	}
}

// WithHTTPClient sets a custom HTTP client for S3 requests.
func WithHTTPClient(client *http.Client) S3Option {
	return func(o *s3Options) {
		o.httpClient = client
	}
}

// WithS3ConfigOption adds a custom AWS config option.
func WithS3ConfigOption(option func(*config.LoadOptions) error) S3Option {
	return func(o *s3Options) {
		o.s3ConfigOptions = append(o.s3ConfigOptions, option)
	}
}

// WithS3ClientOption adds a custom S3 client option.
func WithS3ClientOption(option func(*s3.Options)) S3Option {
	return func(o *s3Options) {
		o.s3ClientOptions = append(o.s3ClientOptions, option)
	}
}

// NewS3Prober creates a new S3 prober. Region is required unless a client
// is injected with WithS3Client.
func NewS3Prober(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3Prober, error) {
	options := &s3Options{}
	for _, opt := range opts {
		opt(options)
	}

	if options.s3Client != nil {
		return &S3Prober{client: options.s3Client}, nil
	}

	if cfg.Region == "" {
		return nil, ErrInvalidConfig
	}

	awsOptions := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}

	if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
		awsOptions = append(awsOptions,
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretKey,
				"",
			)),
		)
	}

	if options.httpClient != nil {
		awsOptions = append(awsOptions, config.WithHTTPClient(options.httpClient))
	}

	awsOptions = append(awsOptions, options.s3ConfigOptions...)

	awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToLoadConfig, err)
	}

	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.ForcePathStyle

		for _, opt := range options.s3ClientOptions {
			opt(o)
		}
	})

	return &S3Prober{client: client}, nil
}

// ParseS3URI splits an s3://bucket/key URI into bucket and key.
func ParseS3URI(uri string) (bucket, key string, err error) {
	scheme, ok := Scheme(uri)
	if !ok || scheme != "s3" {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidPath, uri)
	}

	rest := uri[len("s3://"):]
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || strings.Contains(key, "..") {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidPath, uri)
	}
	return bucket, key, nil
}

// Probe reports KindFile when an object exists at the key and KindDir when
// objects exist under the key prefix. A missing bucket reports KindNone.
func (p *S3Prober) Probe(ctx context.Context, uri string) (Kind, error) {
	bucket, key, err := ParseS3URI(uri)
	if err != nil {
		return KindNone, err
	}

	if key != "" && !strings.HasSuffix(key, "/") {
		_, err := p.client.HeadObject(ctx, &s3.HeadObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		})
		if err == nil {
			return KindFile, nil
		}
		if !isNotFound(err) {
			return KindNone, classifyS3Error(err, "head object")
		}
	}

	prefix := key
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	resp, err := p.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:    aws.String(bucket),
		Prefix:    aws.String(prefix),
		Delimiter: aws.String("/"),
		MaxKeys:   aws.Int32(1),
	})
	if err != nil {
		var nsb *types.NoSuchBucket
		if errors.As(err, &nsb) || apiErrorCode(err) == "NoSuchBucket" {
			return KindNone, nil
		}
		return KindNone, classifyS3Error(err, "list prefix")
	}

	// The bucket root always counts as a directory once the bucket exists.
	if prefix == "" || len(resp.Contents) > 0 || len(resp.CommonPrefixes) > 0 {
		return KindDir, nil
	}
	return KindNone, nil
}

func isNotFound(err error) bool {
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	code := apiErrorCode(err)
	return code == "NotFound" || code == "NoSuchKey"
}

func apiErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// classifyS3Error maps S3 errors to package sentinels.
func classifyS3Error(err error, operation string) error {
	if err == nil {
		return nil
	}

	// Check for context errors first
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s operation", ErrOperationTimeout, operation)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s operation", ErrOperationCanceled, operation)
	}

	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return ErrBucketNotFound
	}

	switch code := apiErrorCode(err); code {
	case "":
	case "AccessDenied", "Forbidden":
		return fmt.Errorf("%w: %s operation", ErrAccessDenied, operation)
	case "RequestTimeout":
		return fmt.Errorf("%w: %s operation", ErrRequestTimeout, operation)
	case "SlowDown", "ServiceUnavailable":
		return fmt.Errorf("%w: %s operation", ErrServiceUnavailable, operation)
	case "NoSuchBucket":
		return ErrBucketNotFound
	default:
		// Include error code in message for debugging
		return fmt.Errorf("%s operation failed (code: %s): %w", operation, code, err)
	}

	return fmt.Errorf("%s operation failed: %w", operation, err)
}
