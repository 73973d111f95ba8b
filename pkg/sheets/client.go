package sheets

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/popsorte/draw-backend/internal/models"
	"github.com/popsorte/draw-backend/pkg/transport"
)

// Client fetches the published entries and results CSVs. Parsing (and
// tolerating malformed rows) is this boundary's job; the core only ever
// sees typed records.
type Client struct {
	http       *resty.Client
	entriesURL string
	resultsURL string

	mu     sync.Mutex
	offset time.Duration
}

// NewClient creates a sheets client with the given retry policy applied.
func NewClient(entriesURL, resultsURL string, policy transport.RetryPolicy) *Client {
	httpClient := resty.New().SetTimeout(15 * time.Second)
	policy.Apply(httpClient)
	return &Client{
		http:       httpClient,
		entriesURL: entriesURL,
		resultsURL: resultsURL,
	}
}

// FetchEntries downloads and parses the entries sheet.
func (c *Client) FetchEntries(ctx context.Context) ([]models.Entry, ParseStats, error) {
	body, err := c.fetch(ctx, c.entriesURL)
	if err != nil {
		return nil, ParseStats{}, err
	}
	return ParseEntriesCSV(bytes.NewReader(body))
}

// FetchResults downloads and parses the winning-results sheet.
func (c *Client) FetchResults(ctx context.Context) ([]models.WinningResult, ParseStats, error) {
	body, err := c.fetch(ctx, c.resultsURL)
	if err != nil {
		return nil, ParseStats{}, err
	}
	return ParseResultsCSV(bytes.NewReader(body))
}

// Offset returns the last observed server-clock offset, derived from the
// Date header of sheet responses. Adding it to the local clock gives a
// server-corrected "now" for schedule resolution.
func (c *Client) Offset() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.offset
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", url, resp.StatusCode())
	}
	c.noteServerTime(resp.Header().Get("Date"))
	return resp.Body(), nil
}

func (c *Client) noteServerTime(dateHeader string) {
	if dateHeader == "" {
		return
	}
	serverTime, err := http.ParseTime(dateHeader)
	if err != nil {
		return
	}
	offset := time.Until(serverTime)
	c.mu.Lock()
	c.offset = offset
	c.mu.Unlock()
}
