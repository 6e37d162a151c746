package pricelist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/procure/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateURL(t *testing.T) {
	assert.NoError(t, ValidateURL("http://example.com/price.yaml"))
	assert.NoError(t, ValidateURL("https://example.com/price.yaml"))

	for _, raw := range []string{
		"ftp://example.com/price.yaml",
		"file:///etc/passwd",
		"not a url",
		"/relative/path",
	} {
		err := ValidateURL(raw)
		require.Error(t, err, raw)
		assert.True(t, shared.IsCode(err, "VALIDATION_ERROR"), raw)
	}
}

func TestHTTPFetcherFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("shop: Test"))
	}))
	defer srv.Close()

	fetcher := NewHTTPFetcher(srv.Client())
	body, err := fetcher.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "shop: Test", string(body))
}

func TestHTTPFetcherFetchErrors(t *testing.T) {
	t.Run("non-2xx status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		fetcher := NewHTTPFetcher(srv.Client())
		_, err := fetcher.Fetch(context.Background(), srv.URL)
		require.Error(t, err)
		assert.True(t, shared.IsCode(err, "FETCH_ERROR"))
	})

	t.Run("unreachable host", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		fetcher := NewHTTPFetcher(nil)
		_, err := fetcher.Fetch(context.Background(), url)
		require.Error(t, err)
		assert.True(t, shared.IsCode(err, "FETCH_ERROR"))
	})

	t.Run("invalid scheme short-circuits", func(t *testing.T) {
		fetcher := NewHTTPFetcher(nil)
		_, err := fetcher.Fetch(context.Background(), "ftp://example.com/x")
		require.Error(t, err)
		assert.True(t, shared.IsCode(err, "VALIDATION_ERROR"))
	})
}
