// Package domain holds DTOs for papers http and service contracts
package domain

import "densair/internal/core/filters"

// Paper is one feed or search result record
type Paper struct {
	PaperID     string   `json:"paper_id"`
	Title       string   `json:"title"`
	Authors     []string `json:"authors"`
	Categories  []string `json:"categories"`
	DateUpdated string   `json:"date_updated"`
	PDFURL      string   `json:"pdf_url,omitempty"`
}

// SearchHit is a Paper with its similarity distance when reported
type SearchHit struct {
	Distance *float64 `json:"distance,omitempty"`
	Paper    Paper    `json:"metadata"`
}

// FeedQuery parameterizes a personalized feed fetch.
// Empty Interests falls back to the caller's stored preferences, then
// to the default pair
type FeedQuery struct {
	Interests []string
	Limit     int
}

// SearchQuery parameterizes a free-text search. At least one of Query
// and Filters.Categories must be set
type SearchQuery struct {
	Query   string
	Filters filters.Filters
	Limit   int
}

// Feed limits
const (
	FeedLimitDefault = 100
	FeedLimitMax     = 200
)

// Search limits
const (
	SearchLimitDefault = 10
	SearchLimitMax     = 100
)
