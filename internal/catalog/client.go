package catalog

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"ygodeck/internal/card"
	"ygodeck/internal/diag"
)

// DefaultBaseURL is the public YGOPRODeck API
const DefaultBaseURL = "https://db.ygoprodeck.com/api/v7"

// maxBodySize bounds how much of a response is read
const maxBodySize = 16 << 20

// Options configures a Client
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64 // requests per second, 0 disables limiting
	Burst     int
	UserAgent string
	HTTP      *http.Client
}

// Client resolves free-text queries against the card catalog
type Client struct {
	baseURL   string
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string

	// busy guards the single in-flight search
	busy sync.Mutex
}

// New creates a catalog client
func New(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := opts.HTTP
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.RateLimit > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	return &Client{
		baseURL:   baseURL,
		http:      httpClient,
		limiter:   limiter,
		userAgent: opts.UserAgent,
	}
}

// Attempts lists the query shapes tried for query, in order: fuzzy name,
// fuzzy name with language, exact name, exact name with language.
func Attempts(query string, lang Language) []url.Values {
	return []url.Values{
		{"fname": {query}},
		{"fname": {query}, "language": {string(lang)}},
		{"name": {query}},
		{"name": {query}, "language": {string(lang)}},
	}
}

// Search returns the cards of the first attempt that yields any. When
// every attempt fails or comes back empty the result is an empty slice and
// a nil error; the caller cannot tell "no match" from "API down".
func (c *Client) Search(ctx context.Context, query string, lang Language) ([]card.Card, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, diag.New(ErrEmptyQuery, diag.MsgEmptyQuery)
	}

	if !c.busy.TryLock() {
		return nil, diag.New(ErrSearchInFlight, diag.MsgSearchBusy)
	}
	defer c.busy.Unlock()

	attempts := Attempts(query, lang)
	for i, params := range attempts {
		cards, err := c.attempt(ctx, params)
		if err == nil {
			log.Printf("🔎 %q resolved on attempt %d/%d with %d cards", query, i+1, len(attempts), len(cards))
			return cards, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		log.Printf("⚠️ search attempt %d/%d for %q failed: %v", i+1, len(attempts), query, err)
	}

	return []card.Card{}, nil
}

func (c *Client) attempt(ctx context.Context, params url.Values) ([]card.Card, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := c.baseURL + "/cardinfo.php?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	p, err := decodePayload(body)
	if err != nil {
		return nil, err
	}
	return p.result()
}
