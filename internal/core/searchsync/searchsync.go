// Package searchsync keeps three representations of a search session
// consistent: the in-memory view state, the shareable URL, and the
// request sent upstream. The URL is a projection of the state, written
// through one serializer; it is never read back as a second source of
// truth after Init
package searchsync

import (
	"context"
	"net/url"
	"sync"

	"densair/internal/core/filters"
)

// Tab selects which view the session is showing
type Tab string

const (
	TabFeed   Tab = "feed"
	TabSearch Tab = "search"
)

// Request is the snapshot handed to the Fetcher for one logical call
type Request struct {
	Query     string
	Filters   filters.Filters
	Interests []string
	Limit     int
}

// Fetcher executes one logical search. Implementations own retries;
// the controller only sees the terminal outcome
type Fetcher[R any] interface {
	Fetch(ctx context.Context, req Request) ([]R, error)
}

// URLSink receives URL replacements. Replace must not create a history
// entry; edits would otherwise pollute back-navigation
type URLSink interface {
	Replace(v url.Values)
}

// Notifier is the write-only sink for user-visible session signals
type Notifier interface {
	Loading(on bool)
	Error(msg string)
}

// View is the render-facing snapshot of a session.
// Submitted distinguishes "no search yet" from "searched and got
// nothing": an empty submitted query is a valid request that clears
// results, not a neutral state
type View[R any] struct {
	Tab       Tab
	Query     string
	Filters   filters.Filters
	Submitted bool
	Loading   bool
	Results   []R
}

// Controller is the single writer of a session's state and URL.
// Logical calls carry a sequence number; a completion whose number is
// no longer current is discarded, so the latest user intent wins over
// a slow earlier response
type Controller[R any] struct {
	fetch  Fetcher[R]
	sink   URLSink
	notify Notifier
	limit  int

	mu        sync.Mutex
	tab       Tab
	query     string
	filters   filters.Filters
	interests []string
	submitted bool
	loading   bool
	results   []R
	seq       uint64
}

// New builds a controller over the given ports. limit caps every
// request issued by this session
func New[R any](fetch Fetcher[R], sink URLSink, notify Notifier, limit int) *Controller[R] {
	return &Controller[R]{fetch: fetch, sink: sink, notify: notify, limit: limit, tab: TabFeed}
}

// Init derives the authoritative starting state from the current URL.
// It reports whether the URL carried a query, so the caller can issue
// the initial search for a shared link
func (c *Controller[R]) Init(v url.Values) (hasQuery bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.filters = filters.Decode(v)
	c.interests = v[filters.ParamInterests]
	if q, ok := v[filters.ParamQuery]; ok && len(q) > 0 {
		c.query = q[0]
		c.tab = TabSearch
		hasQuery = true
	}
	return hasQuery
}

// EditFilters replaces the filter selection and mirrors it to the URL.
// No request is issued until Submit
func (c *Controller[R]) EditFilters(f filters.Filters) {
	c.mu.Lock()
	c.filters = f
	v := c.encodeLocked()
	c.mu.Unlock()
	c.sink.Replace(v)
}

// EditQuery replaces the draft query text and mirrors it to the URL
func (c *Controller[R]) EditQuery(q string) {
	c.mu.Lock()
	c.query = q
	v := c.encodeLocked()
	c.mu.Unlock()
	c.sink.Replace(v)
}

// Submit issues one logical search with the current state. It blocks
// until the call is terminal or ctx is done; callers wanting overlap
// run it on their own goroutine. A completion superseded by a newer
// Submit is discarded without touching results or loading state
func (c *Controller[R]) Submit(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.submitted = true
	c.tab = TabSearch
	c.loading = true
	req := Request{
		Query:     c.query,
		Filters:   c.filters,
		Interests: append([]string(nil), c.interests...),
		Limit:     c.limit,
	}
	v := c.encodeLocked()
	c.mu.Unlock()

	c.sink.Replace(v)
	c.notify.Loading(true)

	results, err := c.fetch.Fetch(ctx, req)

	c.mu.Lock()
	if seq != c.seq {
		c.mu.Unlock()
		return nil
	}
	c.loading = false
	if err == nil {
		c.results = results
	}
	c.mu.Unlock()

	c.notify.Loading(false)
	if err != nil {
		c.notify.Error(err.Error())
		return err
	}
	return nil
}

// SwitchTab moves the session between views. Leaving search drops the
// query parameter from the URL but keeps filters and interests, so
// returning restores the prior selection. Switching to search re-runs
// the last submitted search, if any
func (c *Controller[R]) SwitchTab(ctx context.Context, tab Tab) error {
	c.mu.Lock()
	c.tab = tab
	resubmit := tab == TabSearch && c.submitted
	var v url.Values
	if tab != TabSearch {
		v = c.encodeBareLocked()
	}
	c.mu.Unlock()

	if v != nil {
		c.sink.Replace(v)
	}
	if resubmit {
		return c.Submit(ctx)
	}
	return nil
}

// Snapshot returns the current render state
func (c *Controller[R]) Snapshot() View[R] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return View[R]{
		Tab:       c.tab,
		Query:     c.query,
		Filters:   c.filters,
		Submitted: c.submitted,
		Loading:   c.loading,
		Results:   append([]R(nil), c.results...),
	}
}

// encodeLocked projects the full state, query included, into values.
// Callers hold mu
func (c *Controller[R]) encodeLocked() url.Values {
	v := c.encodeBareLocked()
	if c.query != "" {
		v.Set(filters.ParamQuery, c.query)
	}
	return v
}

// encodeBareLocked projects filters and interests only
func (c *Controller[R]) encodeBareLocked() url.Values {
	v := filters.Encode(c.filters)
	for _, in := range c.interests {
		v.Add(filters.ParamInterests, in)
	}
	return v
}
