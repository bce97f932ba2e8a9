package rose

import "fmt"

// Error codes for input validation.
const (
	CodeParse          = "ERR_PARSE"
	CodeEmpty          = "ERR_EMPTY"
	CodeMinSamples     = "ERR_MIN_SAMPLES"
	CodeLengthMismatch = "ERR_LENGTH_MISMATCH"
)

// Field names as they appear in validation messages.
const (
	FieldStrike = "strike"
	FieldDip    = "dip"
)

// FieldError describes a single violated input rule. All violations for one
// submission are reported together, never just the first.
type FieldError struct {
	Code    string                 `json:"code"`
	Field   string                 `json:"field,omitempty"`
	Message string                 `json:"message"`
	Params  map[string]interface{} `json:"params,omitempty"`
}

func (e FieldError) Error() string {
	return e.Message
}

// NewParseError reports a blob that could not be parsed as numbers.
func NewParseError(field string, err error) FieldError {
	return FieldError{
		Code:    CodeParse,
		Field:   field,
		Message: fmt.Sprintf("%s data could not be parsed: %v", field, err),
	}
}

// ValidateSet checks the parsed strike and dip series against the rules that
// gate aggregation. It collects every violation: per field, an empty series
// or (when non-empty) a series below minSamples; and unconditionally, a
// length mismatch between the two. A nil result means the input is valid.
func ValidateSet(strikes, dips []float64, minSamples int) []FieldError {
	var errs []FieldError

	errs = appendSeriesErrors(errs, FieldStrike, len(strikes), minSamples)
	errs = appendSeriesErrors(errs, FieldDip, len(dips), minSamples)

	if len(strikes) != len(dips) {
		errs = append(errs, FieldError{
			Code:    CodeLengthMismatch,
			Message: fmt.Sprintf("strike count (%d) and dip count (%d) must match", len(strikes), len(dips)),
			Params: map[string]interface{}{
				"strike_count": len(strikes),
				"dip_count":    len(dips),
			},
		})
	}

	return errs
}

func appendSeriesErrors(errs []FieldError, field string, count, minSamples int) []FieldError {
	switch {
	case count == 0:
		errs = append(errs, FieldError{
			Code:    CodeEmpty,
			Field:   field,
			Message: fmt.Sprintf("%s data must not be empty", field),
		})
	case count < minSamples:
		errs = append(errs, FieldError{
			Code:    CodeMinSamples,
			Field:   field,
			Message: fmt.Sprintf("%s requires at least %d values, got %d", field, minSamples, count),
			Params: map[string]interface{}{
				"min":   minSamples,
				"count": count,
			},
		})
	}
	return errs
}
