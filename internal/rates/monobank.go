package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultMonobankURL is the public Monobank currency endpoint.
const DefaultMonobankURL = "https://api.monobank.ua/bank/currency"

// defaultTimeout bounds the provider call so that a hanging endpoint
// does not stall a refresh. A timed-out call counts as a failure and
// the stored rates stay authoritative.
const defaultTimeout = 10 * time.Second

// MonobankClient fetches currency quotes from the Monobank public API.
type MonobankClient struct {
	baseURL    string
	httpClient *http.Client
}

// MonobankOption configures a MonobankClient.
type MonobankOption func(*MonobankClient)

// WithBaseURL overrides the API endpoint, used in tests.
func WithBaseURL(url string) MonobankOption {
	return func(c *MonobankClient) {
		c.baseURL = url
	}
}

// WithTimeout overrides the request timeout.
func WithTimeout(timeout time.Duration) MonobankOption {
	return func(c *MonobankClient) {
		c.httpClient.Timeout = timeout
	}
}

// NewMonobankClient returns a client for the Monobank currency API.
func NewMonobankClient(options ...MonobankOption) *MonobankClient {
	client := &MonobankClient{
		baseURL: DefaultMonobankURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// FetchRates requests the current quote list.
func (c *MonobankClient) FetchRates(ctx context.Context) ([]Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("rate API returned status %d: %s", resp.StatusCode, string(body))
	}

	var quotes []Quote
	if err := json.NewDecoder(resp.Body).Decode(&quotes); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return quotes, nil
}
