package cupid

import (
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"cupid_fragments/internal/adapters/observability"
	"cupid_fragments/internal/domain"
)

const maxAttempts = 4

type Client struct {
	base string
	hc   *http.Client
	key  string
	rl   *rate.Limiter
}

func New(base, key string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		key:  key,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// GetProperty fetches the property payload, trying the current endpoint
// before the legacy one.
func (c *Client) GetProperty(ctx context.Context, id int64) (map[string]any, error) {
	candidates := []string{
		fmt.Sprintf("%s/properties/%d", c.base, id),
		fmt.Sprintf("%s/property/%d", c.base, id),
	}
	var out map[string]any
	if err := c.getFirst(ctx, "property", candidates, &out); err != nil {
		return nil, err
	}
	return out, nil
}

var (
	ErrNotFound     = fmt.Errorf("cupid: %w", domain.ErrNotFound)
	ErrUnauthorized = fmt.Errorf("cupid: unauthorized: %w", domain.ErrForbidden)
	ErrForbidden    = fmt.Errorf("cupid: %w", domain.ErrForbidden)
)

// errRetry marks a transient failure worth another attempt.
type errRetry struct{ status int }

func (e errRetry) Error() string { return fmt.Sprintf("remote %d", e.status) }

func (c *Client) getFirst(ctx context.Context, endpoint string, urls []string, out any) error {
	var last error
	for _, u := range urls {
		err := c.get(ctx, endpoint, u, out)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrNotFound) {
			return err // only a 404 moves on to the next pattern
		}
		last = err
	}
	if last != nil {
		return last
	}
	return errors.New("no candidate URL succeeded")
}

// get performs a rate-limited GET, retrying 429/5xx and network errors with
// backoff (or Retry-After), and decodes JSON into out.
func (c *Client) get(ctx context.Context, endpoint, url string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		wait, err := c.attempt(ctx, endpoint, url, i, out)
		if err == nil {
			return nil
		}
		var re errRetry
		if !errors.As(err, &re) && wait == 0 {
			return err
		}
		lastErr = err
		if i == maxAttempts-1 || !sleepCtx(ctx, wait) {
			break
		}
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return lastErr
}

// attempt runs a single request. A non-zero wait asks the caller to retry.
func (c *Client) attempt(ctx context.Context, endpoint, url string, i int, out any) (time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("X-API-Key", c.key)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "cupid-fragments/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("cupid", endpoint, 0, time.Since(start))
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		return backoff(i), err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("cupid", endpoint, resp.StatusCode, time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		return 0, json.NewDecoder(resp.Body).Decode(out)
	case http.StatusNoContent:
		_, _ = io.Copy(io.Discard, resp.Body)
		return 0, nil
	case http.StatusNotFound:
		return 0, ErrNotFound
	case http.StatusUnauthorized:
		return 0, ErrUnauthorized
	case http.StatusForbidden:
		return 0, ErrForbidden
	case http.StatusTooManyRequests, http.StatusInternalServerError,
		http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		wait := retryAfter(resp)
		if wait == 0 {
			wait = backoff(i)
		}
		return wait, errRetry{status: resp.StatusCode}
	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return 0, fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
}

// sleepCtx waits for d or returns false early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After (seconds or HTTP-date). Returns 0 if absent/invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff doubles from 200ms per attempt with up to +50% jitter.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	return base + time.Duration(0.5*f*float64(base))
}
