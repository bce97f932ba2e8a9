package rose

import (
	"reflect"
	"testing"
)

func TestParseSeriesCommaSeparated(t *testing.T) {
	got, err := ParseSeries("185, 170, 173, 170, 198")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []float64{185, 170, 173, 170, 198}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseSeriesNewlineSeparated(t *testing.T) {
	got, err := ParseSeries("185\n170\n173")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []float64{185, 170, 173}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseSeriesMixedSeparatorsAndWhitespace(t *testing.T) {
	got, err := ParseSeries("  185 ,\n 170,,\r\n\n173.5 ,")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []float64{185, 170, 173.5}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseSeriesNegativeAndLargeValues(t *testing.T) {
	got, err := ParseSeries("-15, 370")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []float64{-15, 370}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseSeriesEmpty(t *testing.T) {
	got, err := ParseSeries("  \n , ,\n ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty series, got %v", got)
	}
}

func TestParseSeriesNonNumericToken(t *testing.T) {
	if _, err := ParseSeries("10, twenty, 30"); err == nil {
		t.Fatalf("expected error for non-numeric token")
	}
}

func TestParseSeriesRejectsNonFiniteTokens(t *testing.T) {
	// strconv.ParseFloat accepts these spellings, the series must not.
	for _, tok := range []string{"nan", "NaN", "inf", "+Inf", "-inf", "Infinity"} {
		if _, err := ParseSeries("10, " + tok + ", 30"); err == nil {
			t.Fatalf("expected error for %q", tok)
		}
	}
}
