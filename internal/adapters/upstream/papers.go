package upstream

import (
	"context"
	"net/url"
	"strconv"

	"densair/internal/core/arxiv"
	"densair/internal/core/filters"
)

// Paper is one result record from the feed or search endpoints
type Paper struct {
	PaperID     string   `json:"paper_id"`
	Title       string   `json:"title"`
	Authors     []string `json:"authors"`
	Categories  []string `json:"categories"`
	DateUpdated string   `json:"date_updated"`
	PDFURL      string   `json:"pdf_url,omitempty"`
}

// SearchResult wraps a Paper with its vector distance when the backend
// reports one
type SearchResult struct {
	Distance *float64 `json:"distance,omitempty"`
	Metadata Paper    `json:"metadata"`
}

// FeedRequest parameterizes a personalized feed fetch
type FeedRequest struct {
	Interests []string
	Limit     int
}

// SearchRequest parameterizes a free-text search with filters
type SearchRequest struct {
	Query   string
	Filters filters.Filters
	Limit   int
}

// Feed fetches the personalized feed for the given interests.
// The backend answers feed and search alike with a bare array of
// result records; for the feed only the metadata matters
func (c *Client) Feed(ctx context.Context, req FeedRequest) ([]Paper, error) {
	v := url.Values{}
	for _, in := range req.Interests {
		v.Add(filters.ParamInterests, in)
	}
	if req.Limit > 0 {
		v.Set(filters.ParamLimit, strconv.Itoa(req.Limit))
	}
	var out []SearchResult
	if err := c.getJSON(ctx, "/feed", v.Encode(), &out); err != nil {
		return nil, err
	}
	papers := make([]Paper, len(out))
	for i, r := range out {
		papers[i] = r.Metadata
	}
	return EnrichLinks(papers), nil
}

// Search runs a free-text similarity search with the given filters
func (c *Client) Search(ctx context.Context, req SearchRequest) ([]SearchResult, error) {
	v := filters.Encode(req.Filters)
	if req.Query != "" {
		v.Set(filters.ParamQuery, req.Query)
	}
	if req.Limit > 0 {
		v.Set(filters.ParamLimit, strconv.Itoa(req.Limit))
	}
	var out []SearchResult
	if err := c.getJSON(ctx, "/search", v.Encode(), &out); err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Metadata = enrichOne(out[i].Metadata)
	}
	return out, nil
}

// EnrichLinks fills the derived document link on every record missing
// one. Pure and idempotent: records already carrying a link pass
// through untouched
func EnrichLinks(ps []Paper) []Paper {
	for i := range ps {
		ps[i] = enrichOne(ps[i])
	}
	return ps
}

func enrichOne(p Paper) Paper {
	if p.PDFURL == "" && p.PaperID != "" {
		p.PDFURL = arxiv.PDFLink(p.PaperID)
	}
	return p
}
