package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romangod6/sitemap-builder/internal/catalog"
)

func TestNewServerConfiguresListener(t *testing.T) {
	b, _, _ := newTestBuilder(t, catalog.StaticSource{})

	server := NewServer(9090, b)

	assert.Equal(t, ":9090", server.Addr())
}

func TestShutdownBeforeStartStopsServer(t *testing.T) {
	b, _, _ := newTestBuilder(t, catalog.StaticSource{})
	server := NewServer(0, b)

	require.NoError(t, server.Shutdown(context.Background()))

	assert.ErrorIs(t, server.Start(), http.ErrServerClosed)
}

func TestShutdownWhileServing(t *testing.T) {
	b, _, _ := newTestBuilder(t, catalog.StaticSource{})
	server := NewServer(0, b)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, server.Shutdown(ctx))

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, http.ErrServerClosed)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after shutdown")
	}
}
