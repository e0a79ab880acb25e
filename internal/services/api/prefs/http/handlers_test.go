package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"densair/internal/core/arxiv"
	pnet "densair/internal/platform/net"
	phttp "densair/internal/platform/net/http"
	"densair/internal/platform/net/http/bind"
	"densair/internal/services/api/prefs/domain"
)

func init() {
	// normally registered by the module constructor
	_ = bind.RegisterValidation("arxiv_domain", func(fl bind.FieldLevel) bool {
		return arxiv.IsAbbrev(fl.Field().String())
	})
}

type fakeSvc struct {
	rows map[string]domain.Preferences
}

func (f *fakeSvc) Get(_ context.Context, userID string) (domain.Preferences, bool, error) {
	p, ok := f.rows[userID]
	return p, ok, nil
}

func (f *fakeSvc) Upsert(_ context.Context, userID string, in domain.PreferencesInput) (domain.Preferences, error) {
	p := domain.Preferences{UserID: userID, Role: domain.Role(in.Role), Interests: in.Interests}
	f.rows[userID] = p
	return p, nil
}

func newMux(f *fakeSvc) stdhttp.Handler {
	mux := chi.NewMux()
	Register(phttp.AdaptChi(mux), f)
	return mux
}

func do(t *testing.T, mux stdhttp.Handler, method, body, userID string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/", rd)
	if userID != "" {
		req = req.WithContext(pnet.WithUser(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

// a user who has never onboarded gets an empty record, not an error
func TestGet_AbsentRecordIsEmptyNotMissing(t *testing.T) {
	mux := newMux(&fakeSvc{rows: map[string]domain.Preferences{}})

	rec := do(t, mux, stdhttp.MethodGet, "", "u-new")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var env struct {
		Data domain.Preferences `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.UserID != "u-new" || env.Data.Role != "" || len(env.Data.Interests) != 0 {
		t.Fatalf("data = %+v, want empty role and no domains", env.Data)
	}
}

func TestGet_ReturnsStoredRecord(t *testing.T) {
	mux := newMux(&fakeSvc{rows: map[string]domain.Preferences{
		"u1": {UserID: "u1", Role: domain.RoleStudent, Interests: []string{"cs"}},
	}})

	rec := do(t, mux, stdhttp.MethodGet, "", "u1")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var env struct {
		Data domain.Preferences `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.Role != domain.RoleStudent {
		t.Fatalf("role = %q", env.Data.Role)
	}
}

func TestGet_RequiresUser(t *testing.T) {
	mux := newMux(&fakeSvc{rows: map[string]domain.Preferences{}})
	rec := do(t, mux, stdhttp.MethodGet, "", "")
	if rec.Code != stdhttp.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

// the PUT path runs the validator, so a missing role is a 400
func TestPut_MissingRoleRejected(t *testing.T) {
	mux := newMux(&fakeSvc{rows: map[string]domain.Preferences{}})
	rec := do(t, mux, stdhttp.MethodPut, `{"interests":["cs"]}`, "u1")
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
