// densair-search runs one search session against the paper backend
// from the terminal. It drives the same session controller the API
// uses, so a pasted share link reproduces the exact search
package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"densair/internal/adapters/upstream"
	"densair/internal/core/backoff"
	"densair/internal/core/filters"
	"densair/internal/core/searchsync"
	"densair/internal/platform/config"
	"densair/internal/platform/logger"
	ptime "densair/internal/platform/time"
)

// fetcher adapts the upstream client to the session controller
type fetcher struct{ client *upstream.Client }

func (f fetcher) Fetch(ctx context.Context, req searchsync.Request) ([]upstream.SearchResult, error) {
	return f.client.Search(ctx, upstream.SearchRequest{
		Query:   req.Query,
		Filters: req.Filters,
		Limit:   req.Limit,
	})
}

// linkSink remembers the last URL projection so we can print the share link
type linkSink struct{ last url.Values }

func (s *linkSink) Replace(v url.Values) { s.last = v }

// termNotify writes session signals to stderr
type termNotify struct{}

func (termNotify) Loading(on bool) {
	if on {
		fmt.Fprintln(os.Stderr, "searching...")
	}
}

func (termNotify) Error(msg string) {
	fmt.Fprintln(os.Stderr, "search failed:", msg)
}

func main() {
	root := config.New()
	upCfg := root.Prefix("SERVICE_PAPERS_")
	l := logger.Get()

	var (
		fQuery     = flag.String("query", "", "search text, empty is a valid request")
		fLink      = flag.String("link", "", "share link (or raw query string) to start the session from")
		fCats      = flag.String("categories", "", "comma separated category list")
		fMatchAll  = flag.Bool("match-all", false, "require every category instead of any")
		fFrom      = flag.String("from", "", "earliest update date YYYY-MM-DD")
		fTo        = flag.String("to", "", "latest update date YYYY-MM-DD")
		fInterests = flag.String("interests", "", "comma separated interest domains carried on the link")
		fLimit     = flag.Int("limit", 10, "maximum results")
		fTimeout   = flag.Duration("timeout", time.Minute, "overall deadline including rate-limit retries")
	)
	flag.Parse()

	client := upstream.NewClient(upstream.Options{
		BaseURL: upCfg.MustString("BASE_URL"),
		APIKey:  upCfg.MayString("API_KEY", ""),
		Timeout: upCfg.MayDuration("TIMEOUT", 15*time.Second),
		Policy:  backoff.Default(),
		Notify:  waitNotify{},
	})

	sink := &linkSink{}
	ctrl := searchsync.New[upstream.SearchResult](fetcher{client: client}, sink, termNotify{}, *fLimit)

	init := url.Values{}
	if *fLink != "" {
		v, err := parseLink(*fLink)
		if err != nil {
			l.Panic().Err(err).Msg("bad -link")
		}
		init = v
	}
	fromLink := ctrl.Init(init)

	// explicit flags override whatever the link carried
	if *fCats != "" || *fFrom != "" || *fTo != "" || *fMatchAll {
		f := filters.Filters{
			Categories: splitCSV(*fCats),
			MatchAll:   *fMatchAll,
			DateFrom:   parseDate(l, "-from", *fFrom),
			DateTo:     parseDate(l, "-to", *fTo),
		}
		if err := f.Validate(); err != nil {
			l.Panic().Err(err).Msg("bad date range")
		}
		ctrl.EditFilters(f)
	}
	if *fInterests != "" {
		// interests ride the URL only; re-init keeps the rest of the state
		v := sink.last
		if v == nil {
			v = init
		}
		v[filters.ParamInterests] = splitCSV(*fInterests)
		ctrl.Init(v)
	}
	if *fQuery != "" || !fromLink {
		ctrl.EditQuery(*fQuery)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *fTimeout)
	defer cancel()

	if err := ctrl.Submit(ctx); err != nil {
		os.Exit(1)
	}

	view := ctrl.Snapshot()
	for i, r := range view.Results {
		meta := r.Metadata
		fmt.Printf("%2d. %s\n", i+1, meta.Title)
		if len(meta.Authors) > 0 {
			fmt.Printf("    %s\n", strings.Join(meta.Authors, ", "))
		}
		if r.Distance != nil {
			fmt.Printf("    distance %.4f  %s\n", *r.Distance, meta.PDFURL)
		} else if meta.PDFURL != "" {
			fmt.Printf("    %s\n", meta.PDFURL)
		}
	}
	if len(view.Results) == 0 {
		fmt.Println("no results")
	}
	if enc := sink.last.Encode(); enc != "" {
		fmt.Println("\nshare link: /feed?" + enc)
	}
}

// waitNotify surfaces the single rate-limit warning for a logical call
type waitNotify struct{}

func (waitNotify) Warn(wait time.Duration) {
	fmt.Fprintf(os.Stderr, "paper backend is rate limited, retrying in %s\n", wait.Round(time.Second))
}

// parseLink accepts a full URL or a bare query string
func parseLink(s string) (url.Values, error) {
	if strings.Contains(s, "?") {
		u, err := url.Parse(s)
		if err != nil {
			return nil, err
		}
		return u.Query(), nil
	}
	return url.ParseQuery(s)
}

func parseDate(l *logger.Logger, name, s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(filters.DateLayout, s)
	if err != nil {
		l.Panic().Err(err).Msgf("bad %s", name)
	}
	return ptime.Ptr(t)
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
