package arxiv

import (
	"reflect"
	"testing"
)

func TestLookup_RoundTrip(t *testing.T) {
	for _, d := range Domains {
		if got := NameFor(d.Abbrev); got != d.Name {
			t.Fatalf("NameFor(%q) = %q, want %q", d.Abbrev, got, d.Name)
		}
		if got := AbbrevFor(d.Name); got != d.Abbrev {
			t.Fatalf("AbbrevFor(%q) = %q, want %q", d.Name, got, d.Abbrev)
		}
		if !IsAbbrev(d.Abbrev) {
			t.Fatalf("IsAbbrev(%q) = false", d.Abbrev)
		}
	}
	if IsAbbrev("bio-warfare") {
		t.Fatal("unknown abbreviation accepted")
	}
	if NameFor("nope") != "" || AbbrevFor("Nope") != "" {
		t.Fatal("unknown lookups should return empty strings")
	}
}

func TestFilterValid_PreservesOrder(t *testing.T) {
	in := []string{"math", "bogus", "cs", "", "stat"}
	want := []string{"math", "cs", "stat"}
	if got := FilterValid(in); !reflect.DeepEqual(got, want) {
		t.Fatalf("FilterValid(%v) = %v, want %v", in, got, want)
	}
}

func TestNormalizeInterests(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{name: "trims and lowers", in: []string{" CS ", "Math"}, want: []string{"cs", "math"}},
		{name: "drops empties", in: []string{"", "  ", "cs"}, want: []string{"cs"}},
		{name: "keeps unknowns", in: []string{"hep", "madeup"}, want: []string{"hep", "madeup"}},
		{name: "all empty", in: []string{" ", ""}, want: []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeInterests(tc.in); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("NormalizeInterests(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestLinks(t *testing.T) {
	if got := PDFLink("2303.08774"); got != "https://arxiv.org/pdf/2303.08774.pdf" {
		t.Fatalf("PDFLink = %q", got)
	}
	if got := AbsLink("2303.08774"); got != "https://arxiv.org/abs/2303.08774" {
		t.Fatalf("AbsLink = %q", got)
	}
}

func TestFoldQuery_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{name: "identity ascii", in: "transformer attention", out: "transformer attention"},
		{name: "case fold", in: "Transformer ATTENTION", out: "transformer attention"},
		{name: "width fold fullwidth", in: "ＢＥＲＴ embeddings", out: "bert embeddings"},
		{name: "strip zero widths", in: "g​ra‍ph", out: "graph"},
		{name: "collapse whitespace", in: "  sparse \t\n attention  ", out: "sparse attention"},
		{name: "utf8 repair", in: string([]byte{0xff, 'r', 'a', 'g'}), out: "rag"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FoldQuery(tc.in)
			if got != tc.out {
				t.Fatalf("FoldQuery(%q) = %q, want %q", tc.in, got, tc.out)
			}
			// folding twice must not change the result
			if again := FoldQuery(got); again != got {
				t.Fatalf("FoldQuery not idempotent: %q -> %q", got, again)
			}
		})
	}
}
