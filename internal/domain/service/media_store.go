package service

import "context"

// MediaStore persists uploaded images (category covers, business galleries,
// custom icons) and returns the public URL the stored asset is served from.
type MediaStore interface {
	Save(ctx context.Context, filename, contentType string, data []byte) (url string, err error)
}
