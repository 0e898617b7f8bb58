package storage

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/ajitpratap0/medallion/pkg/errors"
)

// DefaultRegion is used when no region is configured
const DefaultRegion = "us-east-1"

// S3API is the subset of the S3 client the store uses
type S3API interface {
	CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Store writes to AWS S3 or an S3-compatible endpoint. The client never
// retries, so each Put is attempted exactly once.
type S3Store struct {
	client S3API
	region string
}

// NewS3Store builds an S3 client from cfg. A non-empty Endpoint targets an
// S3-compatible server such as MinIO; static keys are used when both are
// set, the default AWS credential chain otherwise.
func NewS3Store(ctx context.Context, cfg Config) (*S3Store, error) {
	region := cfg.Region
	if region == "" {
		region = DefaultRegion
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
		awsconfig.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "load aws config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})
	return NewS3StoreWithClient(client, region), nil
}

// NewS3StoreWithClient wraps an existing client
func NewS3StoreWithClient(client S3API, region string) *S3Store {
	if region == "" {
		region = DefaultRegion
	}
	return &S3Store{client: client, region: region}
}

func (s *S3Store) Backend() Backend { return BackendS3 }

func (s *S3Store) CreateBucketIfAbsent(ctx context.Context, name string) (BucketStatus, error) {
	input := &s3.CreateBucketInput{Bucket: aws.String(name)}
	if s.region != DefaultRegion {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(s.region),
		}
	}
	_, err := s.client.CreateBucket(ctx, input)
	if err == nil {
		return BucketCreated, nil
	}

	var owned *types.BucketAlreadyOwnedByYou
	var exists *types.BucketAlreadyExists
	if stderrors.As(err, &owned) || stderrors.As(err, &exists) {
		return BucketAlreadyExists, nil
	}
	return 0, bucketError(err, name)
}

func (s *S3Store) Put(ctx context.Context, bucket, key string, body []byte, contentType string, opts ...PutOption) error {
	o := applyPutOptions(opts)
	input := &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(contentType),
		Metadata:      o.Metadata,
	}
	if o.ContentEncoding != "" {
		input.ContentEncoding = aws.String(o.ContentEncoding)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return putError(err, bucket, key)
	}
	return nil
}

func (s *S3Store) Get(ctx context.Context, bucket, key string) (*Object, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		var noBucket *types.NoSuchBucket
		if stderrors.As(err, &noKey) || stderrors.As(err, &noBucket) {
			return nil, getError(ErrNotFound, bucket, key)
		}
		return nil, getError(err, bucket, key)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, getError(err, bucket, key)
	}
	return &Object{
		Bucket:          bucket,
		Key:             key,
		Body:            body,
		ContentType:     aws.ToString(out.ContentType),
		ContentEncoding: aws.ToString(out.ContentEncoding),
		Metadata:        out.Metadata,
	}, nil
}

func (s *S3Store) Close() error { return nil }
