package models

// Measurement pairs a strike bearing (degrees, any real value) with the dip
// magnitude recorded at the same station. Strike and dip stay positionally
// correlated through the whole pipeline.
type Measurement struct {
	Strike float64 `json:"strike"`
	Dip    float64 `json:"dip"`
}

// MeasurementSet holds the validated strike and dip series in input order.
type MeasurementSet struct {
	Strikes []float64
	Dips    []float64
}

// Len returns the number of measurement pairs.
func (s MeasurementSet) Len() int {
	return len(s.Strikes)
}

// Pairs returns the series as ordered measurement pairs for tabular preview.
func (s MeasurementSet) Pairs() []Measurement {
	pairs := make([]Measurement, len(s.Strikes))
	for i := range s.Strikes {
		pairs[i] = Measurement{Strike: s.Strikes[i], Dip: s.Dips[i]}
	}
	return pairs
}

// SectorBin is one angular sector of the rose diagram. Count drives the
// radial length of the sector, MeanDip drives its color.
type SectorBin struct {
	CenterDeg     float64 `json:"center_deg"`
	Count         int     `json:"count"`
	MeanDip       float64 `json:"mean_dip"`
	NormalizedDip float64 `json:"normalized_dip"`
	Color         string  `json:"color,omitempty"`
}

// RoseDiagram is the full aggregation result: every sector of the circle in
// ascending order, plus the color-scale legend range and the input size.
type RoseDiagram struct {
	Bins        []SectorBin `json:"bins"`
	BinWidthDeg float64     `json:"bin_width_deg"`
	SampleCount int         `json:"sample_count"`
	DipScaleMin float64     `json:"dip_scale_min"`
	DipScaleMax float64     `json:"dip_scale_max"`
}
