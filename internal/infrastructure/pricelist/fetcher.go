package pricelist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/procure/backend/internal/domain/shared"
)

// maxDocumentSize caps the fetched body at 32 MiB. Price lists are
// text and real ones fit in well under a megabyte.
const maxDocumentSize = 32 << 20

// Fetcher retrieves a price-list document from a supplier URL.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// HTTPFetcher downloads documents over http or https. Other schemes
// are rejected before any network I/O happens.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher. A nil client gets a default
// with a 30 second timeout.
func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPFetcher{client: client}
}

// ValidateURL checks that rawURL is an absolute http(s) URL with a
// host. Failures are VALIDATION_ERROR so the caller reports them under
// the url field rather than as a fetch failure.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return errors.Join(shared.ErrValidation, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return shared.NewDomainError("VALIDATION_ERROR", fmt.Sprintf("unsupported url scheme %q", u.Scheme))
	}
	if u.Host == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "url has no host")
	}
	return nil
}

// Fetch downloads the document body. Transport failures and non-2xx
// responses come back as FETCH_ERROR.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Join(shared.ErrFetch, err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Join(shared.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, shared.NewDomainError("FETCH_ERROR", fmt.Sprintf("supplier returned status %d", resp.StatusCode))
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, errors.Join(shared.ErrFetch, err)
	}
	return body, nil
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, rawURL string) ([]byte, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	return f(ctx, rawURL)
}
