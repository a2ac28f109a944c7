package objectstore_test

import (
	"net/url"
	"testing"
	"time"

	"marketplace/internal/adapters/out/objectstore"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoverLinker_LineItemCover(t *testing.T) {
	linker, err := objectstore.NewCoverLinker(objectstore.Config{
		Endpoint:  "storage.example.com:9000",
		AccessKey: "access",
		SecretKey: "secret",
		Bucket:    "marketplace",
		Region:    "us-east-1",
		LinkTTL:   15 * time.Minute,
	})
	require.NoError(t, err)

	id := kernel.NewUUID()
	links, err := linker.LineItemCover(t.Context(), id)
	require.NoError(t, err)

	origin, err := url.Parse(links.Origin)
	require.NoError(t, err)
	assert.Equal(t, "http", origin.Scheme)
	assert.Equal(t, "storage.example.com:9000", origin.Host)
	assert.Equal(t, "/marketplace/order-items/"+id.String()+"/cover.webp", origin.Path)
	assert.Equal(t, "900", origin.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, origin.Query().Get("X-Amz-Signature"))

	thumb, err := url.Parse(links.Thumbnail)
	require.NoError(t, err)
	assert.Equal(t, "/marketplace/order-items/"+id.String()+"/cover-thumbnail.webp", thumb.Path)
}

func TestNewCoverLinker_InvalidEndpoint(t *testing.T) {
	_, err := objectstore.NewCoverLinker(objectstore.Config{Endpoint: "http://with-scheme:9000"})
	require.Error(t, err)
}
