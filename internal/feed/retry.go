package feed

import (
	"context"
	"errors"
	"time"
)

// FetchWithRetry runs Client.Fetch with a bounded retry loop on behalf of
// the calling layer. Invalid URLs and timeouts are terminal for the call;
// only network and HTTP failures are retried, up to attempts total tries.
func FetchWithRetry(ctx context.Context, c *Client, feedURL string, timeout time.Duration, headers map[string]string, attempts int) ([]byte, *ResponseMeta, error) {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		body, meta, err := c.Fetch(ctx, feedURL, timeout, headers)
		if err == nil {
			return body, meta, nil
		}
		lastErr = err

		if errors.Is(err, ErrInvalidURL) || IsTimeout(err) || attempt == attempts {
			break
		}

		backoff := time.Duration(attempt) * 500 * time.Millisecond
		c.logger.Warn("fetch failed, retrying",
			"url", feedURL,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, nil, lastErr
}
