// Package backoff decides whether and how long to wait before retrying
// a rate-limited upstream call. It is pure policy: no clock, no sleep,
// no transport. The caller owns the loop and the context
package backoff

import (
	"math"
	"net/http"
	"strconv"
	"time"
)

// Policy parameterizes the retry decision
type Policy struct {
	// MaxAttempts bounds the retries after the first try: a logical
	// call makes at most MaxAttempts+1 physical requests
	MaxAttempts int

	// DefaultHint replaces an absent or malformed Retry-After header
	DefaultHint time.Duration

	// Factor multiplies the server hint once per attempt already made
	Factor float64
}

// Default is the policy for the paper upstream: three retries, a 60s
// fallback hint, and 1.5x growth per attempt
func Default() Policy {
	return Policy{MaxAttempts: 3, DefaultHint: 60 * time.Second, Factor: 1.5}
}

// Decision is the outcome for a single response
type Decision struct {
	Retry bool
	Delay time.Duration
}

// Decide inspects a response status and its Retry-After header.
// attempt counts retries already made, starting at zero on the first
// rate-limited response. Anything other than 429 is terminal, as is
// exhausting MaxAttempts retries
func (p Policy) Decide(status int, retryAfter string, attempt int) Decision {
	if status != http.StatusTooManyRequests {
		return Decision{}
	}
	if attempt >= p.MaxAttempts {
		return Decision{}
	}
	hint := ParseRetryAfter(retryAfter, p.DefaultHint)
	scaled := float64(hint) * math.Pow(p.Factor, float64(attempt))
	return Decision{Retry: true, Delay: time.Duration(scaled)}
}

// ParseRetryAfter reads a delta-seconds Retry-After value, falling back
// to def on anything it cannot read. HTTP-date values are not produced
// by the upstream and fall through to the default
func ParseRetryAfter(h string, def time.Duration) time.Duration {
	if h == "" {
		return def
	}
	secs, err := strconv.Atoi(h)
	if err != nil || secs < 0 {
		return def
	}
	return time.Duration(secs) * time.Second
}
