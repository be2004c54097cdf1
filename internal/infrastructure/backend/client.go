// Package backend is the HTTP client of the wallet backend. It speaks the
// backend's JSON envelopes and turns every non-2xx answer into a
// *domain.UpstreamError.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/proyecto-awi/wallet-dashboard/internal/core/domain"
)

const (
	defaultTimeout = 15 * time.Second
	maxBodyBytes   = 1 << 20
)

// HTTPRequester is the part of *http.Client the backend client needs.
type HTTPRequester interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config configures the backend client.
type Config struct {
	// APIURL is the versioned API root, e.g. http://localhost:8000/api/v1.
	APIURL string
	// AuthURL is the root of the login, register and me endpoints.
	AuthURL    string
	Timeout    time.Duration
	HTTPClient HTTPRequester
}

// Client implements ports.AuthBackend, ports.WalletBackend,
// ports.CryptoBackend and ports.AdminBackend.
type Client struct {
	apiURL  string
	authURL string
	http    HTTPRequester
	log     zerolog.Logger
}

// NewClient builds a backend client. Without an explicit HTTPClient a
// dedicated *http.Client bounded by cfg.Timeout is used.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	apiURL := strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/")
	authURL := strings.TrimRight(strings.TrimSpace(cfg.AuthURL), "/")
	if authURL == "" {
		authURL = apiURL + "/auth"
	}

	return &Client{
		apiURL:  apiURL,
		authURL: authURL,
		http:    httpClient,
		log:     log,
	}
}

// Ping reports whether the backend answers at all. Any HTTP response,
// whatever its status, counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"/cryptocurrencies", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
	resp.Body.Close()
	if resp.StatusCode >= http.StatusInternalServerError {
		return &domain.UpstreamError{Status: resp.StatusCode}
	}
	return nil
}

// envelope is the { success, message, data } wrapper most endpoints use.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *T     `json:"data"`
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do sends one request and decodes a 2xx body into dst (which may be nil).
// token, query and body are optional.
func (c *Client) do(ctx context.Context, method, endpoint, token string, query url.Values, body, dst any) error {
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", domain.ErrBackendUnavailable, method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("backend call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return upstreamError(resp)
	}
	if dst == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(dst); err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrMalformedResponse, method, req.URL.Path, err)
	}
	return nil
}

// upstreamError reads whatever message the backend sent. The body shape of
// an error is not trusted; an unreadable body still yields the status.
func upstreamError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	upstream := &domain.UpstreamError{Status: resp.StatusCode}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		upstream.Message = body.Message
		if upstream.Message == "" {
			upstream.Message = body.Error
		}
	}
	return upstream
}

// unwrap checks that an envelope carried its data object.
func unwrap[T any](env *envelope[T]) (*T, error) {
	if env.Data == nil {
		return nil, fmt.Errorf("%w: missing data", domain.ErrMalformedResponse)
	}
	return env.Data, nil
}

func listQuery(f domain.ListFilter) url.Values {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	for key, value := range f.Fields {
		if strings.TrimSpace(value) != "" {
			q.Set(key, value)
		}
	}
	for key, value := range f.Flags {
		q.Set(key, strconv.FormatBool(value))
	}
	if f.SortBy != "" {
		q.Set("sort_by", f.SortBy)
	}
	if f.SortOrder != "" {
		q.Set("sort_order", f.SortOrder)
	}
	if f.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(f.PerPage))
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	return q
}
