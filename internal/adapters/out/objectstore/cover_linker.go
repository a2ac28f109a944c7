// Package objectstore signs read links for images kept in S3-compatible
// object storage. Nothing here uploads; images are written by the catalog.
package objectstore

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
	LinkTTL   time.Duration
}

// CoverLinker implements ports.CoverLinker with presigned GET URLs.
type CoverLinker struct {
	client *minio.Client
	bucket string
	ttl    time.Duration
}

// NewCoverLinker builds the client. With Region set, signing is done locally
// without asking the server for the bucket location.
func NewCoverLinker(cfg Config) (*CoverLinker, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("object storage client: %w", err)
	}
	return &CoverLinker{client: client, bucket: cfg.Bucket, ttl: cfg.LinkTTL}, nil
}

func coverKey(lineItemID kernel.UUID) string {
	return fmt.Sprintf("order-items/%s/cover.webp", lineItemID)
}

func thumbnailKey(lineItemID kernel.UUID) string {
	return fmt.Sprintf("order-items/%s/cover-thumbnail.webp", lineItemID)
}

// LineItemCover signs the cover and its thumbnail of a frozen line item.
func (l *CoverLinker) LineItemCover(ctx context.Context, lineItemID kernel.UUID) (ports.CoverLinks, error) {
	origin, err := l.client.PresignedGetObject(ctx, l.bucket, coverKey(lineItemID), l.ttl, url.Values{})
	if err != nil {
		return ports.CoverLinks{}, err
	}
	thumbnail, err := l.client.PresignedGetObject(ctx, l.bucket, thumbnailKey(lineItemID), l.ttl, url.Values{})
	if err != nil {
		return ports.CoverLinks{}, err
	}
	return ports.CoverLinks{Origin: origin.String(), Thumbnail: thumbnail.String()}, nil
}
