// Package fetch downloads a quiz page snapshot over HTTP(S).
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hyperifyio/quizexport/internal/cache"
)

// DefaultUserAgent is sent when Client.UserAgent is empty.
const DefaultUserAgent = "Mozilla/5.0 (compatible; quizexport/1.0)"

// Client wraps http.Client with per-request timeouts, limited retry on
// transient errors and optional conditional revalidation against a cache.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	// Header is added to every request; quiz review pages need the
	// session Cookie of a logged-in user.
	Header http.Header
	// MaxAttempts includes the initial attempt. Minimum 1.
	MaxAttempts int
	// PerRequestTimeout bounds each attempt.
	PerRequestTimeout time.Duration
	// Cache enables conditional requests and serves the stored body on 304.
	Cache *cache.PageCache
	// RedirectMaxHops caps redirect following. Zero means 5.
	RedirectMaxHops int
}

// Page is a fetched snapshot.
type Page struct {
	URL         string
	Body        []byte
	ContentType string
	// FromCache is set when the server answered 304 and the cached body
	// was returned.
	FromCache bool
}

// StatusError reports a non-2xx response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string { return fmt.Sprintf("unexpected status: %d", e.Code) }

// Get fetches rawURL, retrying 5xx responses and timeouts.
func (c *Client) Get(ctx context.Context, rawURL string) (*Page, error) {
	var meta *cache.Entry
	if c.Cache != nil {
		if m, err := c.Cache.LoadMeta(ctx, rawURL); err == nil {
			meta = m
		}
	}
	attempts := c.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		page, err := c.tryOnce(ctx, rawURL, meta)
		if err == nil {
			return page, nil
		}
		lastErr = err
		if !isTransient(err) || i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(i+1) * 200 * time.Millisecond):
		}
	}
	return nil, lastErr
}

func (c *Client) tryOnce(ctx context.Context, rawURL string, meta *cache.Entry) (*Page, error) {
	if c.PerRequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.PerRequestTimeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	if !isHTTPScheme(req.URL) {
		return nil, fmt.Errorf("unsupported URL scheme: %q", req.URL.Scheme)
	}
	for k, vs := range c.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	ua := c.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)
	if meta != nil {
		if meta.ETag != "" {
			req.Header.Set("If-None-Match", meta.ETag)
		}
		if meta.LastModified != "" {
			req.Header.Set("If-Modified-Since", meta.LastModified)
		}
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotModified && c.Cache != nil && meta != nil {
		body, err := c.Cache.LoadBody(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("load cached body: %w", err)
		}
		return &Page{URL: rawURL, Body: body, ContentType: meta.ContentType, FromCache: true}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}
	contentType := resp.Header.Get("Content-Type")
	if !isAllowedHTMLContentType(contentType) {
		return nil, fmt.Errorf("unsupported content type: %s", contentType)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if c.Cache != nil {
		_ = c.Cache.Save(ctx, cache.Entry{
			URL:          rawURL,
			ContentType:  contentType,
			ETag:         resp.Header.Get("ETag"),
			LastModified: resp.Header.Get("Last-Modified"),
		}, body)
	}
	return &Page{URL: rawURL, Body: body, ContentType: contentType}, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		// Copy so the redirect policy does not leak into the caller's client.
		base := *c.HTTPClient
		base.CheckRedirect = c.checkRedirect
		return &base
	}
	return &http.Client{CheckRedirect: c.checkRedirect}
}

func (c *Client) checkRedirect(req *http.Request, via []*http.Request) error {
	max := c.RedirectMaxHops
	if max <= 0 {
		max = 5
	}
	if len(via) >= max {
		return errors.New("too many redirects")
	}
	if !isHTTPScheme(req.URL) {
		return errors.New("redirect to unsupported scheme")
	}
	return nil
}

func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var se *StatusError
	return errors.As(err, &se) && se.Code >= 500
}

func isHTTPScheme(u *url.URL) bool {
	if u == nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}

func isAllowedHTMLContentType(ct string) bool {
	ct = strings.ToLower(strings.TrimSpace(ct))
	return strings.HasPrefix(ct, "text/html") || strings.HasPrefix(ct, "application/xhtml+xml")
}
