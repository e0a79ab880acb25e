// Package service contains papers workflows
package service

import (
	"context"

	"densair/internal/adapters/upstream"
	"densair/internal/core/arxiv"
	perr "densair/internal/platform/errors"
	"densair/internal/platform/logger"
	"densair/internal/services/api/papers/domain"
)

// UpstreamPort is the read surface of the paper backend
type UpstreamPort interface {
	Feed(ctx context.Context, req upstream.FeedRequest) ([]upstream.Paper, error)
	Search(ctx context.Context, req upstream.SearchRequest) ([]upstream.SearchResult, error)
}

// PrefsReader looks up a user's stored interest domains
type PrefsReader interface {
	Interests(ctx context.Context, userID string) ([]string, error)
}

// Service defines the service contract for papers
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	up    UpstreamPort
	prefs PrefsReader
	log   logger.Logger
}

// New creates a new papers service
func New(up UpstreamPort, prefs PrefsReader) *Svc {
	if up == nil {
		panic("papers.Service requires a non nil UpstreamPort")
	}
	if prefs == nil {
		panic("papers.Service requires a non nil PrefsReader")
	}
	return &Svc{up: up, prefs: prefs, log: *logger.Named("papers")}
}

// Feed fetches the personalized feed. Interests resolve in order:
// explicit query, stored preferences, the default pair. A failed
// preference lookup falls through instead of failing the feed
func (s *Svc) Feed(ctx context.Context, userID string, q domain.FeedQuery) ([]domain.Paper, error) {
	interests := arxiv.FilterValid(arxiv.NormalizeInterests(q.Interests))
	if len(interests) == 0 && userID != "" {
		stored, err := s.prefs.Interests(ctx, userID)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("prefs lookup failed using defaults")
		} else {
			interests = arxiv.FilterValid(stored)
		}
	}
	if len(interests) == 0 {
		interests = arxiv.DefaultInterests()
	}

	limit, err := limitOrDefault(q.Limit, domain.FeedLimitDefault, domain.FeedLimitMax)
	if err != nil {
		return nil, err
	}

	papers, err := s.up.Feed(ctx, upstream.FeedRequest{
		Interests: interests,
		Limit:     limit,
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Paper, 0, len(papers))
	for _, p := range papers {
		out = append(out, fromUpstream(p))
	}
	return out, nil
}

// Search runs a similarity search. The filter value is validated here,
// at the edge, so the codec itself stays total
func (s *Svc) Search(ctx context.Context, q domain.SearchQuery) ([]domain.SearchHit, error) {
	query := arxiv.FoldQuery(q.Query)
	if query == "" && len(q.Filters.Categories) == 0 {
		return nil, perr.Newf(perr.ErrorCodeValidation, "search needs a query and/or categories")
	}
	if err := q.Filters.Validate(); err != nil {
		return nil, err
	}
	limit, err := limitOrDefault(q.Limit, domain.SearchLimitDefault, domain.SearchLimitMax)
	if err != nil {
		return nil, err
	}
	results, err := s.up.Search(ctx, upstream.SearchRequest{
		Query:   query,
		Filters: q.Filters,
		Limit:   limit,
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.SearchHit, 0, len(results))
	for _, r := range results {
		out = append(out, domain.SearchHit{Distance: r.Distance, Paper: fromUpstream(r.Metadata)})
	}
	return out, nil
}

func fromUpstream(p upstream.Paper) domain.Paper {
	return domain.Paper{
		PaperID:     p.PaperID,
		Title:       p.Title,
		Authors:     p.Authors,
		Categories:  p.Categories,
		DateUpdated: p.DateUpdated,
		PDFURL:      p.PDFURL,
	}
}

// limitOrDefault resolves an absent limit to def and rejects anything
// outside 1..max instead of silently coercing it
func limitOrDefault(n, def, max int) (int, error) {
	if n == 0 {
		return def, nil
	}
	if n < 1 || n > max {
		return 0, perr.Newf(perr.ErrorCodeValidation, "limit must be between 1 and %d", max)
	}
	return n, nil
}
