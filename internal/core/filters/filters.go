// Package filters is the codec between structured search filters and
// their URL query-string form. URLs built from it are shared and
// bookmarked, so the parameter names and repetition semantics here are
// a stable wire contract
package filters

import (
	"net/url"
	"time"

	perr "densair/internal/platform/errors"
	ptime "densair/internal/platform/time"
)

// Stable query parameter names; changing any of these breaks shared links
const (
	ParamCategories = "categories"
	ParamMatchAll   = "categories_match_all"
	ParamDateFrom   = "date_from"
	ParamDateTo     = "date_to"
	ParamQuery      = "query"
	ParamInterests  = "interests"
	ParamLimit      = "limit"
	ParamID         = "id"
)

// DateLayout is the calendar-date wire format
const DateLayout = "2006-01-02"

// Filters is the structured form of a search filter selection.
// Categories keeps selection order; a nil date means "not set"
type Filters struct {
	Categories []string
	MatchAll   bool
	DateFrom   *time.Time
	DateTo     *time.Time
}

// IsZero reports whether no filter is set
func (f Filters) IsZero() bool {
	return len(f.Categories) == 0 && !f.MatchAll && f.DateFrom == nil && f.DateTo == nil
}

// Validate enforces the date-ordering invariant. It runs before Encode,
// never inside it: the codec stays total
func (f Filters) Validate() error {
	if f.DateFrom != nil && f.DateTo != nil && f.DateFrom.After(*f.DateTo) {
		return perr.Newf(perr.ErrorCodeValidation, "date_from %s is after date_to %s",
			f.DateFrom.Format(DateLayout), f.DateTo.Format(DateLayout))
	}
	return nil
}

// Equal compares two filter values field by field
func (f Filters) Equal(o Filters) bool {
	if len(f.Categories) != len(o.Categories) || f.MatchAll != o.MatchAll {
		return false
	}
	for i := range f.Categories {
		if f.Categories[i] != o.Categories[i] {
			return false
		}
	}
	return dateEq(f.DateFrom, o.DateFrom) && dateEq(f.DateTo, o.DateTo)
}

func dateEq(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// Encode writes f into a fresh url.Values.
// Absent filters become absent parameters, never empty strings;
// MatchAll is present as "true" only when set
func Encode(f Filters) url.Values {
	v := url.Values{}
	for _, c := range f.Categories {
		v.Add(ParamCategories, c)
	}
	if f.MatchAll {
		v.Set(ParamMatchAll, "true")
	}
	if f.DateFrom != nil {
		v.Set(ParamDateFrom, f.DateFrom.Format(DateLayout))
	}
	if f.DateTo != nil {
		v.Set(ParamDateTo, f.DateTo.Format(DateLayout))
	}
	return v
}

// Decode reads a filter selection out of query values.
// It never fails: absent categories decode to none, absent match-all to
// false, and malformed or absent dates to nil
func Decode(v url.Values) Filters {
	var f Filters
	if cs, ok := v[ParamCategories]; ok {
		f.Categories = append(f.Categories, cs...)
	}
	f.MatchAll = v.Get(ParamMatchAll) == "true"
	f.DateFrom = parseDate(v.Get(ParamDateFrom))
	f.DateTo = parseDate(v.Get(ParamDateTo))
	return f
}

// parseDate returns nil on empty or malformed input
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil
	}
	return ptime.Ptr(t)
}

// Date is a convenience constructor for tests and callers building
// filter values by hand
func Date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
