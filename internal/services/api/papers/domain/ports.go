package domain

import "context"

// ServicePort defines the service contract for papers
type ServicePort interface {
	Feed(ctx context.Context, userID string, q FeedQuery) ([]Paper, error)
	Search(ctx context.Context, q SearchQuery) ([]SearchHit, error)
}
