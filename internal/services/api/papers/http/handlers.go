// Package http provides http transport for papers
package http

import (
	stdhttp "net/http"
	"strconv"

	"densair/internal/core/filters"
	"densair/internal/modkit/httpkit"
	perr "densair/internal/platform/errors"
	"densair/internal/services/api/papers/domain"
	svc "densair/internal/services/api/papers/service"
)

// Register mounts paper endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/feed", h.feed)
	httpkit.Get(r, "/search", h.search)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /papers/feed Papers papersFeed
// @Summary Personalized paper feed
// @Tags Papers
// @Produce json
// @Security BearerAuth
// @Param interests query []string false "domain abbreviations" collectionFormat(multi)
// @Param limit query int false "1-200, default 100"
// @Success 200 {array} domain.Paper "ok"
// @Router /papers/feed [get]
func (h *handlers) feed(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	v := r.URL.Query()
	limit, err := limitParam(v.Get(filters.ParamLimit))
	if err != nil {
		return nil, err
	}
	return h.svc.Feed(r.Context(), uid, domain.FeedQuery{
		Interests: v[filters.ParamInterests],
		Limit:     limit,
	})
}

// swagger:route GET /papers/search Papers papersSearch
// @Summary Similarity search over papers
// @Tags Papers
// @Produce json
// @Security BearerAuth
// @Param query query string false "free text query"
// @Param categories query []string false "category filters" collectionFormat(multi)
// @Param categories_match_all query bool false "require all categories"
// @Param date_from query string false "ISO date"
// @Param date_to query string false "ISO date"
// @Param limit query int false "1-100, default 10"
// @Success 200 {array} domain.SearchHit "ok"
// @Router /papers/search [get]
func (h *handlers) search(r *stdhttp.Request) (any, error) {
	v := r.URL.Query()
	limit, err := limitParam(v.Get(filters.ParamLimit))
	if err != nil {
		return nil, err
	}
	return h.svc.Search(r.Context(), domain.SearchQuery{
		Query:   v.Get(filters.ParamQuery),
		Filters: filters.Decode(v),
		Limit:   limit,
	})
}

// limitParam parses the limit parameter; absent means "use the default",
// anything non-numeric is rejected. Range checks live in the service
func limitParam(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, perr.Newf(perr.ErrorCodeValidation, "limit must be an integer")
	}
	return n, nil
}
