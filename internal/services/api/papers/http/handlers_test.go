package http

import (
	"context"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"densair/internal/adapters/upstream"
	pnet "densair/internal/platform/net"
	phttp "densair/internal/platform/net/http"
	svc "densair/internal/services/api/papers/service"
)

type fakeUpstream struct {
	feedReq   *upstream.FeedRequest
	searchReq *upstream.SearchRequest
}

func (f *fakeUpstream) Feed(_ context.Context, req upstream.FeedRequest) ([]upstream.Paper, error) {
	f.feedReq = &req
	return nil, nil
}

func (f *fakeUpstream) Search(_ context.Context, req upstream.SearchRequest) ([]upstream.SearchResult, error) {
	f.searchReq = &req
	return nil, nil
}

type noPrefs struct{}

func (noPrefs) Interests(context.Context, string) ([]string, error) { return nil, nil }

func newMux(up *fakeUpstream) stdhttp.Handler {
	mux := chi.NewMux()
	Register(phttp.AdaptChi(mux), svc.New(up, noPrefs{}))
	return mux
}

func get(t *testing.T, mux stdhttp.Handler, target, userID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(stdhttp.MethodGet, target, nil)
	if userID != "" {
		req = req.WithContext(pnet.WithUser(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestSearch_NeedsQueryOrCategories(t *testing.T) {
	up := &fakeUpstream{}
	mux := newMux(up)

	rec := get(t, mux, "/search", "u1")
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if up.searchReq != nil {
		t.Fatal("empty search must not reach the upstream")
	}

	rec = get(t, mux, "/search?categories=cs.LG", "u1")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("categories-only search: status = %d, body %s", rec.Code, rec.Body.String())
	}
	rec = get(t, mux, "/search?query=attention", "u1")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("query-only search: status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestSearch_MalformedLimitRejected(t *testing.T) {
	up := &fakeUpstream{}
	mux := newMux(up)
	rec := get(t, mux, "/search?query=q&limit=ten", "u1")
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if up.searchReq != nil {
		t.Fatal("malformed limit must not reach the upstream")
	}
}

func TestSearch_OutOfRangeLimitRejected(t *testing.T) {
	up := &fakeUpstream{}
	mux := newMux(up)
	rec := get(t, mux, "/search?query=q&limit=5000", "u1")
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if up.searchReq != nil {
		t.Fatal("oversized limit must not reach the upstream")
	}
}

func TestFeed_RequiresUser(t *testing.T) {
	up := &fakeUpstream{}
	mux := newMux(up)
	rec := get(t, mux, "/feed", "")
	if rec.Code != stdhttp.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if up.feedReq != nil {
		t.Fatal("anonymous feed must not reach the upstream")
	}
}

func TestFeed_PassesQueryThrough(t *testing.T) {
	up := &fakeUpstream{}
	mux := newMux(up)
	rec := get(t, mux, "/feed?interests=cs&interests=math&limit=25", "u1")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if up.feedReq == nil || up.feedReq.Limit != 25 || len(up.feedReq.Interests) != 2 {
		t.Fatalf("feed request = %+v", up.feedReq)
	}
}
