package ports

import (
	"context"
	"io"
)

// ObjectStore is the file-storage collaborator for product images. The
// core validates the upload (extension allow-list) before calling Put;
// the store only persists bytes and hands back a publicly resolvable
// reference string.
type ObjectStore interface {
	// Put stores the payload under key and returns its public URL.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)

	// Delete removes a stored object. Used for best-effort cleanup.
	Delete(ctx context.Context, key string) error
}
