package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"
)

// ResponseMeta captures fetch metadata surfaced in feed test reports.
type ResponseMeta struct {
	StatusCode  int
	ContentType string
	Header      http.Header
	FetchedAt   time.Time
}

// Client fetches raw feed documents over HTTP. The timeout is supplied by
// the caller per call; the client itself never retries.
type Client struct {
	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger
}

func NewClient(userAgent string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		userAgent:  userAgent,
		logger:     logger,
	}
}

// ValidateURL checks that raw is an absolute http(s) URL with a host.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s", ErrInvalidURL, raw)
	}
	return nil
}

// Fetch retrieves the document at feedURL. Failures are reported as *Error
// with the kind set to timeout, http or network; a malformed URL fails
// fast with ErrInvalidURL before any network call.
func (c *Client) Fetch(ctx context.Context, feedURL string, timeout time.Duration, headers map[string]string) ([]byte, *ResponseMeta, error) {
	if err := ValidateURL(feedURL); err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, &Error{Kind: classify(err), URL: feedURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, nil, &Error{Kind: KindHTTP, URL: feedURL, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &Error{Kind: classify(err), URL: feedURL, Err: err}
	}

	c.logger.Debug("fetched feed",
		"url", feedURL,
		"status", resp.StatusCode,
		"bytes", len(body),
	)

	meta := &ResponseMeta{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Header:      resp.Header,
		FetchedAt:   time.Now().UTC(),
	}
	return body, meta, nil
}

func classify(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return KindTimeout
	}
	return KindNetwork
}
