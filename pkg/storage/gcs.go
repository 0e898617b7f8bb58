package storage

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/ajitpratap0/medallion/pkg/errors"
)

// GCSStore writes to Google Cloud Storage
type GCSStore struct {
	client  *gcs.Client
	project string
}

// NewGCSStore opens a GCS client. GCSEndpoint targets an emulator and
// disables authentication.
func NewGCSStore(ctx context.Context, cfg Config) (*GCSStore, error) {
	var opts []option.ClientOption
	if cfg.GCSCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.GCSCredentialsFile))
	}
	if cfg.GCSEndpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.GCSEndpoint), option.WithoutAuthentication())
	}
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "create gcs client")
	}
	return &GCSStore{client: client, project: cfg.GCSProject}, nil
}

func (s *GCSStore) Backend() Backend { return BackendGCS }

func (s *GCSStore) CreateBucketIfAbsent(ctx context.Context, name string) (BucketStatus, error) {
	err := s.client.Bucket(name).Create(ctx, s.project, nil)
	if err == nil {
		return BucketCreated, nil
	}
	var apiErr *googleapi.Error
	if stderrors.As(err, &apiErr) && apiErr.Code == http.StatusConflict {
		return BucketAlreadyExists, nil
	}
	return 0, bucketError(err, name)
}

func (s *GCSStore) Put(ctx context.Context, bucket, key string, body []byte, contentType string, opts ...PutOption) error {
	o := applyPutOptions(opts)
	w := s.client.Bucket(bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	w.ContentEncoding = o.ContentEncoding
	w.Metadata = o.Metadata

	if _, err := w.Write(body); err != nil {
		_ = w.Close()
		return putError(err, bucket, key)
	}
	if err := w.Close(); err != nil {
		return putError(err, bucket, key)
	}
	return nil
}

func (s *GCSStore) Get(ctx context.Context, bucket, key string) (*Object, error) {
	obj := s.client.Bucket(bucket).Object(key)
	attrs, err := obj.Attrs(ctx)
	if err != nil {
		if stderrors.Is(err, gcs.ErrObjectNotExist) || stderrors.Is(err, gcs.ErrBucketNotExist) {
			return nil, getError(ErrNotFound, bucket, key)
		}
		return nil, getError(err, bucket, key)
	}
	r, err := obj.ReadCompressed(true).NewReader(ctx)
	if err != nil {
		return nil, getError(err, bucket, key)
	}
	defer r.Close()

	body, err := io.ReadAll(r)
	if err != nil {
		return nil, getError(err, bucket, key)
	}
	return &Object{
		Bucket:          bucket,
		Key:             key,
		Body:            body,
		ContentType:     attrs.ContentType,
		ContentEncoding: attrs.ContentEncoding,
		Metadata:        attrs.Metadata,
	}, nil
}

func (s *GCSStore) Close() error { return s.client.Close() }
