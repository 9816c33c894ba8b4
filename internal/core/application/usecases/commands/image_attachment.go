package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"entregaloya/internal/core/domain/model/product"
	"entregaloya/internal/core/ports"

	"github.com/google/uuid"
)

// ImageAttachment carries an uploaded product image through a catalog
// command. The payload is streamed to the object store only after the
// extension allow-list check passes and the actor is confirmed as the
// product's owner.
type ImageAttachment struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// Validate runs the core extension allow-list check.
func (a *ImageAttachment) Validate() error {
	return product.ValidateImageFilename(a.Filename)
}

// objectKey derives a collision-free storage key for the attachment,
// scoped to the owning business.
func (a *ImageAttachment) objectKey(businessID int64) string {
	ext := strings.ToLower(filepath.Ext(a.Filename))
	return fmt.Sprintf("prod_%d_%s%s", businessID, uuid.NewString(), ext)
}

// discardUpload removes an object whose owning row never got committed.
// A cleanup failure leaves an orphan at worst, so the error is dropped.
func discardUpload(ctx context.Context, store ports.ObjectStore, key string) {
	if key == "" {
		return
	}
	_ = store.Delete(ctx, key)
}
