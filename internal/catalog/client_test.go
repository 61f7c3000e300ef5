package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/bottleshop/internal/common"
)

// newTestServer serves the seed catalog. failures lists the status codes
// returned, in order, before the real payload.
func newTestServer(t *testing.T, failures ...int) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	doc := Seed()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := int(calls.Add(1))
		if n <= len(failures) {
			w.WriteHeader(failures[n-1])
			return
		}

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case categoriesPath:
			_ = json.NewEncoder(w).Encode(doc.Categories)
		case productsPath:
			_ = json.NewEncoder(w).Encode(doc.Products)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

func newTestClient(t *testing.T, baseURL string, opts ...ClientOption) *Client {
	t.Helper()
	client, err := NewClient(baseURL, append([]ClientOption{WithRateLimit(0)}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient("  ")
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestClient_Fetch(t *testing.T) {
	server, _ := newTestServer(t)
	client := newTestClient(t, server.URL+"/")

	categories, err := client.FetchCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Seed().Categories, categories)

	products, err := client.FetchProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Seed().Products, products)
}

func TestClient_SendsToken(t *testing.T) {
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, WithToken("s3cret"))
	_, err := client.FetchCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer s3cret", auth)
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		retryable bool
		target    error
	}{
		{name: "server error", status: http.StatusBadGateway, retryable: true, target: common.ErrCatalogUnavailable},
		{name: "not found", status: http.StatusNotFound, retryable: false, target: common.ErrCatalogUnavailable},
		{name: "rate limited", status: http.StatusTooManyRequests, retryable: true, target: common.ErrRateLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newTestServer(t, tt.status)
			client := newTestClient(t, server.URL)

			_, err := client.FetchCategories(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)

			var retryable *common.RetryableError
			if tt.target == common.ErrRateLimit {
				assert.False(t, errors.As(err, &retryable), "rate limits are left to WithRetry")
				return
			}
			require.True(t, errors.As(err, &retryable))
			assert.Equal(t, tt.retryable, retryable.Retryable)
		})
	}
}

func TestClient_RejectsInvalidCatalog(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"rum"},{"id":"rum"}]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.FetchCategories(context.Background())
	assert.ErrorIs(t, err, common.ErrInvalidCatalog)
}
