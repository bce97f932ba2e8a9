package rose

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseSeries parses a raw text blob into a numeric series. Commas and
// newlines both act as separators (mixed within one blob is fine), tokens are
// trimmed of surrounding whitespace and empty tokens are dropped. The first
// non-numeric token fails the whole blob. NaN and infinity spellings are
// rejected too: they carry no angle or dip and would poison the bin index.
func ParseSeries(text string) ([]float64, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})

	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		tok := strings.TrimSpace(f)
		if tok == "" {
			continue
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("non-numeric value %q", tok)
		}
		values = append(values, v)
	}
	return values, nil
}
