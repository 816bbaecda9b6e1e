package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mediahook/catalog-notifier/internal/domain"
)

// HTTPClient fetches items from the media server's catalog API.
// The base URL is injected from config so tests can point to a local mock.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewHTTPClient(baseURL, apiKey string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetItem issues GET {base}/items/{id} and decodes the item tree.
// 404 maps to domain.ErrItemNotFound so callers can treat a vanished item
// as a normal per-entry condition.
func (c *HTTPClient) GetItem(ctx context.Context, id string) (*domain.CatalogItem, error) {
	endpoint := c.baseURL + "/items/" + url.PathEscape(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch item %s: %w", id, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrItemNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("unexpected catalog status for item %s: %d", id, resp.StatusCode)
	}

	var item domain.CatalogItem
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return nil, fmt.Errorf("decode item %s: %w", id, err)
	}

	return &item, nil
}

// compile-time check that HTTPClient implements Client
var _ Client = (*HTTPClient)(nil)
