package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/lister-client/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// retryPolicy is the unexported copy of config.RetryConfig a Client runs with.
type retryPolicy struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// attemptsFor returns how many times a request with method may be sent.
// Creating lists, items or categories (POST) and toggling the cart (PATCH)
// are sent once: a replay after a lost response would duplicate the record
// or flip the item back.
func (p retryPolicy) attemptsFor(method string) int {
	if !idempotent(method) {
		return 1
	}
	return p.maxAttempts
}

func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// backoff returns the exponential delay before retry number attempt
// (1-indexed), capped at maxInterval, with ±25% jitter.
func (p retryPolicy) backoff(attempt int) time.Duration {
	delay := float64(p.initialInterval) * math.Pow(p.multiplier, float64(attempt-1))
	delay = math.Min(delay, float64(p.maxInterval))
	delay += delay * jitterFraction * (2*rand.Float64() - 1)
	return time.Duration(math.Max(delay, 0))
}

// wait returns the delay before retry number attempt. A Retry-After header on
// the previous response wins over the computed backoff but never exceeds
// maxInterval.
func (p retryPolicy) wait(attempt int, prev *http.Response) time.Duration {
	if d, ok := retryAfter(prev, time.Now()); ok {
		return min(d, p.maxInterval)
	}
	return p.backoff(attempt)
}

// retryAfter parses a Retry-After header given in seconds or as an HTTP date.
func retryAfter(resp *http.Response, now time.Time) (time.Duration, bool) {
	if resp == nil {
		return 0, false
	}
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second, true
	}
	if at, err := http.ParseTime(v); err == nil {
		return max(at.Sub(now), 0), true
	}
	return 0, false
}

// retryableError reports whether a transport error is worth another attempt.
// Cancellation and deadlines end the loop; everything else (refused
// connections, resets, DNS hiccups) is retried.
func retryableError(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// retryableStatus reports whether a response status is worth another attempt:
// 429 and every 5xx.
func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// send executes req, retrying idempotent requests per the policy. The final
// response is stored in *resp even when err is set for a retryable status,
// so the caller can still read the server's error body; the caller closes it.
func (c *Client) send(ctx context.Context, req *http.Request, resp **http.Response) error {
	attempts := c.retry.attemptsFor(req.Method)
	if attempts <= 0 {
		return fmt.Errorf("httpclient: max attempts must be >= 1, got %d", attempts)
	}

	var body []byte
	if attempts > 1 && req.Body != nil && req.Body != http.NoBody {
		b, err := io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return fmt.Errorf("reading request body: %w", err)
		}
		body = b
	}

	var (
		prev    *http.Response
		lastErr error
	)
	for attempt := range attempts {
		if attempt > 0 {
			if err := c.pause(ctx, req, attempt, attempts, prev, lastErr); err != nil {
				return err
			}
		}
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		r, err := c.httpClient.Do(req)
		if err != nil {
			lastErr, prev = err, nil
			if !retryableError(err) {
				return err
			}
			continue
		}
		if !retryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s %s", r.StatusCode, c.serviceName, req.URL.Path)
		if attempt == attempts-1 {
			*resp = r
			return lastErr
		}
		// Drain so the connection is reused; headers stay readable for wait.
		_, _ = io.Copy(io.Discard, r.Body)
		_ = r.Body.Close()
		prev = r
	}
	return lastErr
}

// pause logs the coming retry and sleeps until it is due or ctx ends.
func (c *Client) pause(ctx context.Context, req *http.Request, attempt, attempts int, prev *http.Response, lastErr error) error {
	delay := c.retry.wait(attempt, prev)

	logging.FromContext(ctx).WarnContext(ctx, "retrying Lister API request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", attempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
