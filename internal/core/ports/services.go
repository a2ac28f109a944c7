package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// Clock supplies the current time in the reference time zone used for shop
// opening hours.
type Clock interface {
	Now() time.Time
}

// CoverLinks are the image URLs of a line item cover.
type CoverLinks struct {
	Origin    string
	Thumbnail string
}

// CoverLinker resolves the cover images of frozen line items.
type CoverLinker interface {
	LineItemCover(ctx context.Context, lineItemID kernel.UUID) (CoverLinks, error)
}
