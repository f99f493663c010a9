package bitjita

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"bc-mercantile/internal/ratelimit"
)

const (
	defaultBaseURL = "https://bitjita.com/api"
	defaultTimeout = 30 * time.Second
)

// RequestError is returned for transport failures and non-2xx responses.
type RequestError struct {
	Path   string
	Status int
	Body   string
	Err    error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bitjita %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("bitjita %s: HTTP %d: %s", e.Path, e.Status, e.Body)
}

func (e *RequestError) Unwrap() error { return e.Err }

// Client is a throttled Bitjita HTTP client.
// Every request waits on the configured limiter before hitting the network,
// which enforces the fixed inter-request delay the API expects.
type Client struct {
	http    *http.Client
	baseURL string
	limiter *ratelimit.Limiter
	claims  *claimCache
}

// NewClient creates a Bitjita client paced by the given limiter.
func NewClient(limiter *ratelimit.Limiter) *Client {
	return &Client{
		http:    &http.Client{Timeout: defaultTimeout},
		baseURL: defaultBaseURL,
		limiter: limiter,
		claims:  newClaimCache(),
	}
}

// SetBaseURL overrides the API base URL. Used by tests.
func (c *Client) SetBaseURL(base string) { c.baseURL = base }

// GetJSON fetches a relative API path and decodes the JSON body into dst.
func (c *Client) GetJSON(ctx context.Context, path string, params url.Values, dst interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &RequestError{Path: path, Err: err}
	}

	u := c.baseURL + "/" + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &RequestError{Path: path, Err: err}
	}
	req.Header.Set("User-Agent", "bc-mercantile/1.0 (github.com)")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &RequestError{Path: path, Status: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return &RequestError{Path: path, Err: err}
	}
	return nil
}

// Claim fetches a claim record by entity id, going through the per-run
// claim cache so each distinct id is fetched at most once.
func (c *Client) Claim(ctx context.Context, claimID string) (*Claim, error) {
	return c.claims.get(claimID, func() (*Claim, error) {
		var envelope struct {
			Claim Claim `json:"claim"`
		}
		if err := c.GetJSON(ctx, "claims/"+claimID, nil, &envelope); err != nil {
			return nil, err
		}
		return &envelope.Claim, nil
	})
}

// MarketItems fetches the list of items with active orders on the given
// claim's market.
func (c *Client) MarketItems(ctx context.Context, claimID string) ([]MarketItem, error) {
	params := url.Values{}
	params.Set("hasOrders", "true")
	params.Set("claimEntityId", claimID)

	var envelope struct {
		Data struct {
			Items []MarketItem `json:"items"`
		} `json:"data"`
	}
	if err := c.GetJSON(ctx, "market", params, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data.Items, nil
}

// OrderBook fetches the worldwide buy and sell orders for one item.
// typeLabel is the lowercase API path segment ("item" or "cargo").
func (c *Client) OrderBook(ctx context.Context, typeLabel string, itemID int64) (*OrderBook, error) {
	var book OrderBook
	path := fmt.Sprintf("market/%s/%d", typeLabel, itemID)
	if err := c.GetJSON(ctx, path, nil, &book); err != nil {
		return nil, err
	}
	return &book, nil
}
