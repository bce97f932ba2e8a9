package models

// Requests and responses for rose diagram HTTP endpoints. Defined in domain for consistency and reuse.

// Preview modes for GenerateRequest.
const (
	PreviewPairs = "pairs"
	PreviewNone  = "none"
)

type GenerateRequest struct {
	Strike  string `json:"strike" form:"strike" validate:"required"`
	Dip     string `json:"dip" form:"dip" validate:"required"`
	Preview string `json:"preview" form:"preview" default:"pairs" validate:"oneof=pairs none"`
}

type GenerateResponse struct {
	Diagram RoseDiagram   `json:"diagram"`
	Preview []Measurement `json:"preview"`
}
