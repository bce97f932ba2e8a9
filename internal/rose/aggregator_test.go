package rose

import (
	"math"
	"math/rand"
	"testing"

	"RoseGen/internal/domain/models"
)

const binWidth = 10.0

func set(strikes, dips []float64) models.MeasurementSet {
	return models.MeasurementSet{Strikes: strikes, Dips: dips}
}

func randomSet(n int, seed int64) models.MeasurementSet {
	r := rand.New(rand.NewSource(seed))
	strikes := make([]float64, n)
	dips := make([]float64, n)
	for i := 0; i < n; i++ {
		strikes[i] = r.Float64()*720 - 180 // include negatives and >360
		dips[i] = r.Float64() * 90
	}
	return set(strikes, dips)
}

func TestAggregateEmitsAllBins(t *testing.T) {
	d := Aggregate(randomSet(40, 1), binWidth)
	if len(d.Bins) != 36 {
		t.Fatalf("expected 36 bins, got %d", len(d.Bins))
	}
	for i, b := range d.Bins {
		want := float64(i)*binWidth + binWidth/2
		if b.CenterDeg != want {
			t.Fatalf("bin %d center = %v, want %v", i, b.CenterDeg, want)
		}
	}
}

func TestAggregateCountConservation(t *testing.T) {
	// Doubling invariant: total count is exactly 2N.
	for seed := int64(0); seed < 5; seed++ {
		s := randomSet(137, seed)
		d := Aggregate(s, binWidth)
		total := 0
		for _, b := range d.Bins {
			total += b.Count
		}
		if total != 2*s.Len() {
			t.Fatalf("seed %d: sum of counts = %d, want %d", seed, total, 2*s.Len())
		}
	}
}

func TestAggregateAxialFold(t *testing.T) {
	// Strikes shifted by 180 degrees yield identical statistics.
	s1 := randomSet(60, 7)
	shifted := make([]float64, len(s1.Strikes))
	for i, v := range s1.Strikes {
		shifted[i] = math.Mod(v+180, 360)
	}
	d1 := Aggregate(s1, binWidth)
	d2 := Aggregate(set(shifted, s1.Dips), binWidth)

	for i := range d1.Bins {
		if d1.Bins[i].Count != d2.Bins[i].Count {
			t.Fatalf("bin %d count differs: %d vs %d", i, d1.Bins[i].Count, d2.Bins[i].Count)
		}
		if math.Abs(d1.Bins[i].MeanDip-d2.Bins[i].MeanDip) > 1e-9 {
			t.Fatalf("bin %d mean dip differs: %v vs %v", i, d1.Bins[i].MeanDip, d2.Bins[i].MeanDip)
		}
	}
}

func TestAggregateNormalizationBounds(t *testing.T) {
	d := Aggregate(randomSet(80, 3), binWidth)
	sawOne := false
	for _, b := range d.Bins {
		if b.NormalizedDip < 0 || b.NormalizedDip > 1 {
			t.Fatalf("normalized dip %v out of [0,1]", b.NormalizedDip)
		}
		if b.NormalizedDip == 1 {
			sawOne = true
		}
	}
	if !sawOne {
		t.Fatalf("expected at least one bin with normalized dip 1.0")
	}
}

func TestAggregateAllZeroDips(t *testing.T) {
	// No division by zero: zero dips everywhere stay zero.
	d := Aggregate(set(repeat(10, 30), repeat(0, 30)), binWidth)
	for i, b := range d.Bins {
		if b.MeanDip != 0 || b.NormalizedDip != 0 {
			t.Fatalf("bin %d: mean=%v normalized=%v, want 0", i, b.MeanDip, b.NormalizedDip)
		}
	}
	if d.DipScaleMax != 0 {
		t.Fatalf("dip scale max = %v, want 0", d.DipScaleMax)
	}
}

func TestAggregateUniformInput(t *testing.T) {
	// 25 copies of strike 10 / dip 50 land in [10,20) and the 190 twin bin.
	d := Aggregate(set(repeat(10, 25), repeat(50, 25)), binWidth)

	for i, b := range d.Bins {
		switch b.CenterDeg {
		case 15, 195:
			if b.Count != 25 {
				t.Fatalf("bin %v count = %d, want 25", b.CenterDeg, b.Count)
			}
			if b.MeanDip != 50 {
				t.Fatalf("bin %v mean dip = %v, want 50", b.CenterDeg, b.MeanDip)
			}
			if b.NormalizedDip != 1 {
				t.Fatalf("bin %v normalized dip = %v, want 1", b.CenterDeg, b.NormalizedDip)
			}
		default:
			if b.Count != 0 || b.MeanDip != 0 || b.NormalizedDip != 0 {
				t.Fatalf("bin %d expected empty, got %+v", i, b)
			}
		}
	}
	if d.SampleCount != 25 {
		t.Fatalf("sample count = %d, want 25", d.SampleCount)
	}
	if d.DipScaleMax != 50 {
		t.Fatalf("dip scale max = %v, want 50", d.DipScaleMax)
	}
}

func TestAggregateWrapsOutOfRangeStrikes(t *testing.T) {
	// 370 wraps to 10, -350 wraps to 10: identical to a literal 10.
	base := Aggregate(set(repeat(10, 25), repeat(50, 25)), binWidth)
	wrapped := Aggregate(set(repeat(370, 25), repeat(50, 25)), binWidth)
	negative := Aggregate(set(repeat(-350, 25), repeat(50, 25)), binWidth)

	for i := range base.Bins {
		if base.Bins[i] != wrapped.Bins[i] {
			t.Fatalf("bin %d: wrapped %+v differs from base %+v", i, wrapped.Bins[i], base.Bins[i])
		}
		if base.Bins[i] != negative.Bins[i] {
			t.Fatalf("bin %d: negative %+v differs from base %+v", i, negative.Bins[i], base.Bins[i])
		}
	}
}

func TestAggregateBinEdgeBelongsToUpperBin(t *testing.T) {
	// A value exactly on a boundary is counted once, in the bin starting there.
	d := Aggregate(set(repeat(20, 30), repeat(45, 30)), binWidth)
	for _, b := range d.Bins {
		switch b.CenterDeg {
		case 25, 205:
			if b.Count != 30 {
				t.Fatalf("bin %v count = %d, want 30", b.CenterDeg, b.Count)
			}
		default:
			if b.Count != 0 {
				t.Fatalf("bin %v should be empty, got %d", b.CenterDeg, b.Count)
			}
		}
	}
}

func TestAggregateAcceptsOutOfRangeDips(t *testing.T) {
	// Dip values are used as-is, never clamped to [0,90].
	d := Aggregate(set(repeat(10, 25), repeat(120, 25)), binWidth)
	for _, b := range d.Bins {
		if b.CenterDeg == 15 && b.MeanDip != 120 {
			t.Fatalf("expected unclamped mean dip 120, got %v", b.MeanDip)
		}
	}
}

func TestAggregateCustomBinWidth(t *testing.T) {
	d := Aggregate(randomSet(50, 9), 30)
	if len(d.Bins) != 12 {
		t.Fatalf("expected 12 bins at 30 degree width, got %d", len(d.Bins))
	}
	total := 0
	for _, b := range d.Bins {
		total += b.Count
	}
	if total != 100 {
		t.Fatalf("sum of counts = %d, want 100", total)
	}
}
