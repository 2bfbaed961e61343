package notestore

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3Client is the subset of *s3.Client used by S3.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// S3Config describes the bucket holding note objects.
type S3Config struct {
	Bucket         string `env:"S3_BUCKET"`
	Region         string `env:"S3_REGION" envDefault:"us-east-1"`
	Prefix         string `env:"S3_PREFIX" envDefault:"sealnote"`
	Endpoint       string `env:"S3_ENDPOINT"` // for S3-compatible services
	AccessKeyID    string `env:"S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"S3_SECRET_KEY"`
	ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE" envDefault:"false"` // MinIO and friends
}

// S3Option configures NewS3.
type S3Option func(*s3Options)

type s3Options struct {
	client     S3Client
	httpClient *http.Client
}

// WithS3Client uses a pre-configured client instead of loading AWS config.
func WithS3Client(client S3Client) S3Option {
	return func(o *s3Options) { o.client = client }
}

// WithS3HTTPClient sets the HTTP client used by the AWS SDK.
func WithS3HTTPClient(client *http.Client) S3Option {
	return func(o *s3Options) { o.httpClient = client }
}

// S3 stores each note as one object. Conditional writes use If-Match with
// the ETag that was read, or If-None-Match: * when the object is absent.
type S3 struct {
	client S3Client
	bucket string
	prefix string
}

func NewS3(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, ErrInvalidS3Config
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
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, errors.Join(ErrInvalidS3Config, err)
		}
		client = s3.NewFromConfig(awsCfg, func(so *s3.Options) {
			if cfg.Endpoint != "" {
				so.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			so.UsePathStyle = cfg.ForcePathStyle
		})
	}

	return &S3{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

func (s *S3) objectKey(key string) string {
	if s.prefix == "" {
		return key
	}
	return path.Join(s.prefix, key)
}

func (s *S3) Get(ctx context.Context, key string) ([]byte, error) {
	v, _, err := s.get(ctx, key)
	if err != nil {
		return nil, errors.Join(ErrGetFailed, err)
	}
	return v, nil
}

// get returns the object body and ETag, or nil and "" when it does not exist.
func (s *S3) get(ctx context.Context, key string) ([]byte, string, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if isS3NotFound(err) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", err
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, "", err
	}
	return body, aws.ToString(out.ETag), nil
}

func (s *S3) Set(ctx context.Context, key string, value []byte) error {
	if err := s.put(ctx, key, value, nil); err != nil {
		return errors.Join(ErrSetFailed, err)
	}
	return nil
}

func (s *S3) put(ctx context.Context, key string, value []byte, cond func(*s3.PutObjectInput)) error {
	in := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.objectKey(key)),
		Body:          bytes.NewReader(value),
		ContentLength: aws.Int64(int64(len(value))),
		ContentType:   aws.String("application/octet-stream"),
	}
	if cond != nil {
		cond(in)
	}
	_, err := s.client.PutObject(ctx, in)
	return err
}

func (s *S3) CompareAndSwap(ctx context.Context, key string, old, next []byte) (bool, error) {
	cur, etag, err := s.get(ctx, key)
	if err != nil {
		return false, errors.Join(ErrCASFailed, err)
	}
	if !bytes.Equal(cur, old) {
		return false, nil
	}

	cond := func(in *s3.PutObjectInput) { in.IfNoneMatch = aws.String("*") }
	if etag != "" {
		cond = func(in *s3.PutObjectInput) { in.IfMatch = aws.String(etag) }
	}

	err = s.put(ctx, key, next, cond)
	if isS3PreconditionFailed(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Join(ErrCASFailed, err)
	}
	return true, nil
}

func (s *S3) Healthcheck(ctx context.Context) error {
	if _, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)}); err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	return nil
}

func isS3NotFound(err error) bool {
	if err == nil {
		return false
	}
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}

func isS3PreconditionFailed(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "PreconditionFailed", "ConditionalRequestConflict":
		return true
	}
	return false
}
