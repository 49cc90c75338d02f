package bank

import (
	"context"
	"io"
	"io/fs"
	"os"
)

// Source opens bank files by name. Missing files must return an error
// wrapping fs.ErrNotExist.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

type FSSource struct {
	FS fs.FS
}

func NewDirSource(dir string) FSSource {
	return FSSource{FS: os.DirFS(dir)}
}

func (s FSSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	return s.FS.Open(name)
}

type ObjectDownloader interface {
	DownloadFile(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error)
}

// S3Source reads bank files from a single bucket.
type S3Source struct {
	client ObjectDownloader
	bucket string
}

func NewS3Source(client ObjectDownloader, bucket string) *S3Source {
	return &S3Source{client: client, bucket: bucket}
}

func (s *S3Source) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return s.client.DownloadFile(ctx, s.bucket, name)
}
