// Package media stores uploaded images behind a blob bucket so the same
// handler code runs against a local directory or a cloud bucket.
package media

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"

	"ppoth/internal/domain/service"
	"ppoth/internal/errors"
)

type blobMediaStore struct {
	bucket  *blob.Bucket
	baseURL string
}

// NewFileMediaStore opens a file-backed bucket rooted at dir. The returned
// close function releases the bucket.
func NewFileMediaStore(dir, baseURL string) (service.MediaStore, func() error, error) {
	if dir == "" {
		return nil, nil, errors.New("media store requires a directory")
	}

	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open media bucket")
	}

	store := NewBucketMediaStore(bucket, baseURL)

	return store, bucket.Close, nil
}

// NewBucketMediaStore wraps an already-open bucket; tests hand in memblob.
func NewBucketMediaStore(bucket *blob.Bucket, baseURL string) service.MediaStore {
	return &blobMediaStore{
		bucket:  bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Save writes the asset under a collision-free key derived from the upload
// filename and returns its public URL.
func (s *blobMediaStore) Save(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	key := fmt.Sprintf("%s%s", uuid.NewString(), path.Ext(filename))

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open media writer")
	}

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write media asset")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finish media write")
	}

	return s.baseURL + "/" + key, nil
}
