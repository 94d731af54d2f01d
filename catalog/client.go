package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"

	"github.com/elsampedrino/BBR-Landing-Page/internal/logger"
)

// CatalogURL is the published catalog for the agency.
const CatalogURL = "https://raw.githubusercontent.com/elsampedrino/InmoBot-Platform/main/BBR%20Grupo%20Inmobiliario/propiedades_bbr.json"

const maxCatalogBytes = 4 << 20

// StatusError reports a non-success response from the catalog endpoint.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog endpoint %s returned %d", e.URL, e.Code)
}

type ClientConfig struct {
	URL      string        // defaults to CatalogURL
	Timeout  time.Duration // per attempt; defaults to 6s
	RetryMax int           // transport-level retries; 0 means a single attempt
	Logger   *zerolog.Logger
}

type Client struct {
	url  string
	http *retryablehttp.Client
}

func NewClient(cfg ClientConfig) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = 900 * time.Millisecond
	rc.RetryMax = cfg.RetryMax
	if rc.RetryMax < 0 {
		rc.RetryMax = 0
	}
	rc.HTTPClient.Timeout = 6 * time.Second
	if cfg.Timeout > 0 {
		rc.HTTPClient.Timeout = cfg.Timeout
	}
	// hand the final response back so status handling stays here
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	l := logger.WithComponent("catalog.http")
	if cfg.Logger != nil {
		l = *cfg.Logger
	}
	rc.Logger = logger.Leveled{L: l}

	u := cfg.URL
	if u == "" {
		u = CatalogURL
	}
	return &Client{url: u, http: rc}
}

func (c *Client) URL() string { return c.url }

// FetchCatalog downloads and decodes the catalog document.
func (c *Client) FetchCatalog(ctx context.Context) (*Envelope, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, &StatusError{Code: resp.StatusCode, URL: c.url}
	}
	raw, err := ioReadAllLimit(resp.Body, maxCatalogBytes)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	env, err := DecodeEnvelope(raw)
	if err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return env, nil
}

func ioReadAllLimit(r io.Reader, limit int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > limit {
		return nil, errors.New("payload too large")
	}
	return b, nil
}
