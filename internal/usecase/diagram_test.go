package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"RoseGen/internal/rose"
	icache "RoseGen/internal/service/cache"
	pkgcache "RoseGen/pkg/cache"
)

func newTestCache() icache.BytesCache {
	return icache.NewServiceAdapter(pkgcache.NewMemoryCache(pkgcache.WithMemoryMaxSize(16)))
}

func strikeBlob(v string, n int) string {
	vals := make([]string, n)
	for i := range vals {
		vals[i] = v
	}
	return strings.Join(vals, ", ")
}

func TestGenerateSuccess(t *testing.T) {
	g := NewDiagramGenerator(25, 10)
	res, verrs := g.Generate(context.Background(), strikeBlob("10", 25), strikeBlob("50", 25))
	if verrs != nil {
		t.Fatalf("unexpected validation errors: %v", verrs)
	}
	if len(res.Diagram.Bins) != 36 {
		t.Fatalf("expected 36 bins, got %d", len(res.Diagram.Bins))
	}
	if len(res.Preview) != 25 {
		t.Fatalf("expected 25 preview pairs, got %d", len(res.Preview))
	}
	if res.Preview[0].Strike != 10 || res.Preview[0].Dip != 50 {
		t.Fatalf("preview must keep input order, got %+v", res.Preview[0])
	}
	for _, b := range res.Diagram.Bins {
		if b.Color == "" {
			t.Fatalf("every bin must carry a color, got %+v", b)
		}
	}
}

func TestGenerateParseErrorPerField(t *testing.T) {
	g := NewDiagramGenerator(25, 10)
	_, verrs := g.Generate(context.Background(), "10, oops", "50, nope")
	if len(verrs) != 2 {
		t.Fatalf("expected one parse error per field, got %v", verrs)
	}
	if verrs[0].Code != rose.CodeParse || verrs[0].Field != rose.FieldStrike {
		t.Fatalf("unexpected first error %v", verrs[0])
	}
	if verrs[1].Code != rose.CodeParse || verrs[1].Field != rose.FieldDip {
		t.Fatalf("unexpected second error %v", verrs[1])
	}
}

func TestGenerateParseErrorSkipsCountValidation(t *testing.T) {
	g := NewDiagramGenerator(25, 10)
	_, verrs := g.Generate(context.Background(), "abc", strikeBlob("50", 25))
	if len(verrs) != 1 || verrs[0].Code != rose.CodeParse {
		t.Fatalf("expected a single strike parse error, got %v", verrs)
	}
}

func TestGenerateRejectsNonFiniteValues(t *testing.T) {
	// A nan or inf strike must be rejected at parse time, never binned.
	g := NewDiagramGenerator(25, 10)
	for _, tok := range []string{"nan", "inf"} {
		strike := tok + ", " + strikeBlob("10", 24)
		_, verrs := g.Generate(context.Background(), strike, strikeBlob("50", 25))
		if len(verrs) != 1 || verrs[0].Code != rose.CodeParse || verrs[0].Field != rose.FieldStrike {
			t.Fatalf("%q: expected a strike parse error, got %v", tok, verrs)
		}
	}
}

func TestGenerateRejectsShortInput(t *testing.T) {
	g := NewDiagramGenerator(25, 10)
	_, verrs := g.Generate(context.Background(), "10,190", "50,60")
	if len(verrs) != 2 {
		t.Fatalf("expected two min-sample errors, got %v", verrs)
	}
	for _, e := range verrs {
		if e.Code != rose.CodeMinSamples {
			t.Fatalf("unexpected error code %s", e.Code)
		}
	}
}

func TestGenerateUsesCache(t *testing.T) {
	g := NewDiagramGenerator(25, 10)
	c := newTestCache()
	g.SetCache(c, time.Minute)

	strike, dip := strikeBlob("10", 25), strikeBlob("50", 25)
	first, verrs := g.Generate(context.Background(), strike, dip)
	if verrs != nil {
		t.Fatalf("unexpected errors: %v", verrs)
	}
	second, verrs := g.Generate(context.Background(), strike, dip)
	if verrs != nil {
		t.Fatalf("unexpected errors on cached run: %v", verrs)
	}
	if len(second.Diagram.Bins) != len(first.Diagram.Bins) {
		t.Fatalf("cached response differs")
	}
	if second.Diagram.Bins[1] != first.Diagram.Bins[1] {
		t.Fatalf("cached bin differs: %+v vs %+v", second.Diagram.Bins[1], first.Diagram.Bins[1])
	}
}

func TestGenerateRejectionsAreNotCached(t *testing.T) {
	g := NewDiagramGenerator(25, 10)
	c := newTestCache()
	g.SetCache(c, time.Minute)

	if _, verrs := g.Generate(context.Background(), "10", "50"); len(verrs) == 0 {
		t.Fatalf("expected rejection")
	}
	if _, verrs := g.Generate(context.Background(), "10", "50"); len(verrs) == 0 {
		t.Fatalf("rejection must be recomputed, not cached")
	}
}

func TestExportCSV(t *testing.T) {
	g := NewDiagramGenerator(2, 10)
	b, verrs := g.ExportCSV(context.Background(), "10.5, 190", "50, 67.25")
	if verrs != nil {
		t.Fatalf("unexpected errors: %v", verrs)
	}
	want := "Strike;Dip\n10.5;50\n190;67.25\n"
	if string(b) != want {
		t.Fatalf("csv mismatch:\ngot  %q\nwant %q", b, want)
	}
}

func TestExportCSVValidatesInput(t *testing.T) {
	g := NewDiagramGenerator(25, 10)
	_, verrs := g.ExportCSV(context.Background(), "10, 190", "50")
	if len(verrs) == 0 {
		t.Fatalf("expected validation errors before export")
	}
}
