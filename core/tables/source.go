package tables

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"

	"particle-audit/core/storage"

	"github.com/cockroachdb/errors"
	"github.com/minio/minio-go/v7"
)

const (
	// SourceFile reads tables from the local filesystem.
	SourceFile = "file"
	// SourceStorage reads tables from an object storage bucket.
	SourceStorage = "storage"
)

// Source opens particle tables by name.
type Source interface {
	// Open returns a reader for the named table. The caller closes it.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Describe returns a human-readable location for the named table.
	Describe(name string) string
}

// FileSource reads tables from a directory on the local filesystem.
type FileSource struct {
	Dir string
}

// Open opens the named file inside the source directory.
func (s FileSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(s.Describe(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Mark(errors.Wrapf(err, "opening %s", s.Describe(name)), ErrNotFound)
		}
		return nil, errors.Mark(errors.Wrapf(err, "opening %s", s.Describe(name)), ErrIO)
	}
	return f, nil
}

// Describe returns the path of the named table.
func (s FileSource) Describe(name string) string {
	if s.Dir == "" {
		return name
	}
	return filepath.Join(s.Dir, name)
}

// BucketSource reads tables from an object storage bucket.
type BucketSource struct {
	Client storage.Client
	Bucket string
	Prefix string
}

// Open checks the bucket and object exist, then streams the object.
func (s BucketSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	exists, err := s.Client.BucketExists(ctx, s.Bucket)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "checking bucket %s", s.Bucket), ErrIO)
	}
	if !exists {
		return nil, errors.Mark(errors.Newf("bucket %s does not exist", s.Bucket), ErrNotFound)
	}

	key := s.objectKey(name)
	if _, err := s.Client.StatObject(ctx, s.Bucket, key, minio.StatObjectOptions{}); err != nil {
		if storage.IsNotFound(err) {
			return nil, errors.Mark(errors.Wrapf(err, "stat %s", s.Describe(name)), ErrNotFound)
		}
		return nil, errors.Mark(errors.Wrapf(err, "stat %s", s.Describe(name)), ErrIO)
	}

	obj, err := s.Client.GetObject(ctx, s.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "fetching %s", s.Describe(name)), ErrIO)
	}
	return obj, nil
}

// Describe returns the bucket URL of the named table.
func (s BucketSource) Describe(name string) string {
	return "s3://" + s.Bucket + "/" + s.objectKey(name)
}

func (s BucketSource) objectKey(name string) string {
	if s.Prefix == "" {
		return name
	}
	return path.Join(s.Prefix, name)
}

// NewSource builds the Source selected by cfg. The storage client is only
// required when cfg.Source is SourceStorage.
func NewSource(cfg Config, client storage.Client, bucket string) (Source, error) {
	switch cfg.Source {
	case "", SourceFile:
		return FileSource{Dir: cfg.Dir}, nil
	case SourceStorage:
		if client == nil {
			return nil, errors.New("storage source selected but no storage client configured")
		}
		return BucketSource{Client: client, Bucket: bucket, Prefix: cfg.Prefix}, nil
	default:
		return nil, errors.Newf("unknown table source %q", cfg.Source)
	}
}
