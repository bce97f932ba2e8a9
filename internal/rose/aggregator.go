package rose

import (
	"math"

	"RoseGen/internal/domain/models"
)

// Aggregate folds, bins and summarizes a validated measurement set. Pure
// function: fresh bin arrays per call, no I/O, deterministic.
//
// Strikes are wrapped to [0, 360), folded to [0, 180) (a strike of 170 and
// 350 describe the same planar trace), then every sample is mirrored into the
// opposite half of the circle so the rendered rose is point-symmetric. Bins
// are half-open [lower, upper) intervals of binWidthDeg degrees; a value
// exactly on an edge belongs to the bin starting at that edge.
func Aggregate(set models.MeasurementSet, binWidthDeg float64) models.RoseDiagram {
	nBins := int(360 / binWidthDeg)
	counts := make([]int, nBins)
	dipSums := make([]float64, nBins)

	for i, strike := range set.Strikes {
		az := math.Mod(math.Mod(strike, 360)+360, 360) // wrap, negative-safe
		az = math.Mod(az, 180)                         // axial fold
		dip := set.Dips[i]

		// original sample and its 180-degree twin
		lo := int(az / binWidthDeg)
		hi := int((az + 180) / binWidthDeg)
		counts[lo]++
		counts[hi]++
		dipSums[lo] += dip
		dipSums[hi] += dip
	}

	bins := make([]models.SectorBin, nBins)
	dipMax := 0.0
	dipMin := math.Inf(1)
	for i := range bins {
		mean := 0.0
		if counts[i] > 0 {
			mean = dipSums[i] / float64(counts[i])
		}
		bins[i] = models.SectorBin{
			CenterDeg: float64(i)*binWidthDeg + binWidthDeg/2,
			Count:     counts[i],
			MeanDip:   mean,
		}
		if mean > dipMax {
			dipMax = mean
		}
		if mean < dipMin {
			dipMin = mean
		}
	}

	if dipMax > 0 {
		for i := range bins {
			bins[i].NormalizedDip = bins[i].MeanDip / dipMax
		}
	}

	return models.RoseDiagram{
		Bins:        bins,
		BinWidthDeg: binWidthDeg,
		SampleCount: set.Len(),
		DipScaleMin: dipMin,
		DipScaleMax: dipMax,
	}
}
