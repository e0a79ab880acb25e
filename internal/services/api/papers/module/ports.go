package module

import (
	"context"

	papersdom "densair/internal/services/api/papers/domain"
	paperssvc "densair/internal/services/api/papers/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptPapersPort exposes service methods as module ports for cross-module usage
type adaptPapersPort struct{ svc paperssvc.Service }

// Feed implements the domain ServicePort interface
func (a adaptPapersPort) Feed(ctx context.Context, userID string, q papersdom.FeedQuery) ([]papersdom.Paper, error) {
	return a.svc.Feed(ctx, userID, q)
}

// Search implements the domain ServicePort interface
func (a adaptPapersPort) Search(ctx context.Context, q papersdom.SearchQuery) ([]papersdom.SearchHit, error) {
	return a.svc.Search(ctx, q)
}
