// Package upstream provides a resilient client for the rate-limited
// paper backend. Rate limiting is the only retryable condition; every
// other failure is terminal for the logical call
package upstream

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"densair/internal/core/backoff"
	perr "densair/internal/platform/errors"
	"densair/internal/platform/logger"
)

const (
	defaultTimeout = 15 * time.Second
	defaultUA      = "densair-api"
)

// Notifier receives the single user-visible rate-limit warning for a
// logical call. Implementations must tolerate concurrent calls
type Notifier interface {
	Warn(wait time.Duration)
}

// NopNotifier discards warnings
type NopNotifier struct{}

// Warn implements Notifier
func (NopNotifier) Warn(time.Duration) {}

// Options configures the Client
type Options struct {
	BaseURL   string
	APIKey    string
	UserAgent string
	Timeout   time.Duration

	// Policy drives the 429 retry decision; zero value means Default
	Policy backoff.Policy

	// Notify receives the first-retry warning; nil means discard
	Notify Notifier
}

// Client wraps the backend's read endpoints with bounded 429 retries
type Client struct {
	http   *http.Client
	opts   Options
	policy backoff.Policy
	notify Notifier
	log    logger.Logger
	now    func() time.Time
	sleep  func(ctx context.Context, d time.Duration) error
}

// NewClient creates a Client with sane defaults
func NewClient(o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	pol := o.Policy
	if pol.MaxAttempts == 0 {
		pol = backoff.Default()
	}
	notify := o.Notify
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Client{
		http:   &http.Client{Timeout: o.Timeout},
		opts:   o,
		policy: pol,
		notify: notify,
		log:    *logger.Named("upstream"),
		now:    time.Now,
		sleep:  sleepCtx,
	}
}

// sleepCtx waits for d or until ctx is done, whichever comes first
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// getJSON issues one logical GET and decodes the 200 body into out,
// retrying on 429 per the policy. The warning fires on the first
// rate-limited response only; later retries of the same call stay quiet
func (c *Client) getJSON(ctx context.Context, path, rawQuery string, out any) error {
	url := c.opts.BaseURL + path
	if rawQuery != "" {
		url += "?" + rawQuery
	}
	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return perr.Wrapf(err, perr.ErrorCodeUnknown, "upstream new request failed")
		}
		req.Header.Set("User-Agent", c.opts.UserAgent)
		req.Header.Set("Accept", "application/json")
		if c.opts.APIKey != "" {
			req.Header.Set("x-api-key", c.opts.APIKey)
		}

		start := c.now()
		resp, err := c.http.Do(req)
		lat := c.now().Sub(start)

		if err != nil {
			// network-level failure is terminal, not retryable
			return perr.Wrapf(err, perr.ErrorCodeUnavailable, "upstream do failed")
		}

		c.log.Debug().
			Str("path", path).
			Int("status", resp.StatusCode).
			Int("attempt", attempt).
			Dur("latency", lat).
			Msg("upstream http response")

		if resp.StatusCode == http.StatusOK {
			defer func() { _ = resp.Body.Close() }()
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return perr.Wrapf(err, perr.ErrorCodeJSON, "upstream decode failed")
			}
			return nil
		}

		d := c.policy.Decide(resp.StatusCode, resp.Header.Get("Retry-After"), attempt)
		if !d.Retry {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusTooManyRequests {
				return perr.Newf(perr.ErrorCodeTooManyRequests, "upstream rate limited")
			}
			return perr.Newf(perr.ErrorCodeUnknown, "upstream unexpected status %d body %s", resp.StatusCode, string(body))
		}

		_ = drainAndClose(resp.Body)
		if attempt == 0 {
			c.notify.Warn(d.Delay)
		}
		c.log.Warn().Dur("sleep", d.Delay).Int("attempt", attempt).Msg("upstream rate limited backing off")
		if err := c.sleep(ctx, d.Delay); err != nil {
			return err
		}
	}
}

// drainAndClose empties and closes a response body so the underlying
// connection can be reused
func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 4096))
	return rc.Close()
}
