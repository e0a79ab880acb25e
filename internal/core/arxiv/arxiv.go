// Package arxiv holds the arXiv domain taxonomy and small pure helpers
// shared by the feed, search, and preference paths
package arxiv

import (
	"strings"
)

// Domain is one top-level arXiv subject area
type Domain struct {
	Name   string `json:"name"`
	Abbrev string `json:"abbreviation"`
}

// Domains is the fixed taxonomy users pick interests from
// order matters for display and must stay stable
var Domains = []Domain{
	{Name: "Computer Science", Abbrev: "cs"},
	{Name: "Economics", Abbrev: "econ"},
	{Name: "Electrical Engineering and Systems Science", Abbrev: "eess"},
	{Name: "Mathematics", Abbrev: "math"},
	{Name: "Astrophysics", Abbrev: "astro-ph"},
	{Name: "Condensed Matter", Abbrev: "cond-mat"},
	{Name: "General Relativity and Quantum Cosmology", Abbrev: "gr-qc"},
	{Name: "High Energy Physics", Abbrev: "hep"},
	{Name: "Mathematical Physics", Abbrev: "math-ph"},
	{Name: "Nuclear Theory", Abbrev: "nucl"},
	{Name: "Quantum Physics", Abbrev: "quant-ph"},
	{Name: "Physics", Abbrev: "physics"},
	{Name: "Quantitative Biology", Abbrev: "q-bio"},
	{Name: "Quantitative Finance", Abbrev: "q-fin"},
	{Name: "Statistics", Abbrev: "stat"},
	{Name: "Nonlinear Sciences", Abbrev: "nlin"},
}

// byAbbrev is built once at init for O(1) lookups
var byAbbrev = func() map[string]Domain {
	m := make(map[string]Domain, len(Domains))
	for _, d := range Domains {
		m[d.Abbrev] = d
	}
	return m
}()

// IsAbbrev reports whether s is a known domain abbreviation
func IsAbbrev(s string) bool {
	_, ok := byAbbrev[s]
	return ok
}

// NameFor returns the display name for an abbreviation, or "" when unknown
func NameFor(abbrev string) string { return byAbbrev[abbrev].Name }

// AbbrevFor returns the abbreviation for a display name, or "" when unknown
func AbbrevFor(name string) string {
	for _, d := range Domains {
		if d.Name == name {
			return d.Abbrev
		}
	}
	return ""
}

// NamesFor maps abbreviations to display names, dropping unknowns
func NamesFor(abbrevs []string) []string {
	out := make([]string, 0, len(abbrevs))
	for _, a := range abbrevs {
		if n := NameFor(a); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// FilterValid keeps only known abbreviations, preserving order
func FilterValid(abbrevs []string) []string {
	out := make([]string, 0, len(abbrevs))
	for _, a := range abbrevs {
		if IsAbbrev(a) {
			out = append(out, a)
		}
	}
	return out
}

// NormalizeInterests trims, lowercases, and drops empty entries
// preserving order; it does not validate against the taxonomy
func NormalizeInterests(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// DefaultInterests is the fallback feed seed when neither the URL nor
// the preference record supplies interests
func DefaultInterests() []string { return []string{"cs", "math"} }

// PDFLink derives the canonical PDF location for a paper id
// pure and idempotent; used to backfill results that omit pdf_url
func PDFLink(paperID string) string { return "https://arxiv.org/pdf/" + paperID + ".pdf" }

// AbsLink derives the abstract page location for a paper id
func AbsLink(paperID string) string { return "https://arxiv.org/abs/" + paperID }
