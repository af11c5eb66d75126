package export

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// bucket driver
	_ "gocloud.dev/blob/gcsblob"  // gs:// bucket driver
	_ "gocloud.dev/blob/memblob"  // mem:// bucket driver, used in tests

	"simsure/config"
	"simsure/internal/domain/service"
)

// NewBucket opens the configured artifact bucket. The bucket is shared by
// the object store and the face verifier and is closed on fx shutdown.
func NewBucket(lc fx.Lifecycle, ctx context.Context, cfg *config.Config) (*blob.Bucket, error) {
	if cfg.Export == nil || cfg.Export.BucketURL == "" {
		return nil, errors.New("export bucket URL is required")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.Export.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", cfg.Export.BucketURL)
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return bucket, nil
}

// blobObjectStore persists export artifacts and face captures in a
// gocloud.dev blob bucket, so local file storage and GCS share one path.
type blobObjectStore struct {
	bucket *blob.Bucket
}

func NewBlobObjectStore(bucket *blob.Bucket) service.ObjectStore {
	return &blobObjectStore{bucket: bucket}
}

// Save writes data under key with the given content type.
func (s *blobObjectStore) Save(ctx context.Context, key, contentType string, data []byte) error {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return errors.Wrapf(err, "write object %s", key)
	}

	return nil
}

// SaveStream streams r under key with the given content type. The reader is
// consumed but not closed.
func (s *blobObjectStore) SaveStream(ctx context.Context, key, contentType string, r io.Reader) error {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrapf(err, "open writer for %s", key)
	}

	if _, err := io.Copy(w, r); err != nil {
		w.Close()

		return errors.Wrapf(err, "stream object %s", key)
	}

	return errors.Wrapf(w.Close(), "close writer for %s", key)
}
