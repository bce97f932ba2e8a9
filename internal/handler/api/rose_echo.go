package api

import (
	"fmt"
	"net/http"
	"time"

	models "RoseGen/internal/domain/models"
	"RoseGen/internal/rose"
	"RoseGen/internal/service/metrics"
	"RoseGen/internal/service/ratelimit"
	"RoseGen/internal/usecase"
	xhttp "RoseGen/pkg/http"
	xlogger "RoseGen/pkg/logger"

	"github.com/labstack/echo/v4"
)

const csvFileName = "rose_diagram_data.csv"

// RoseEchoHandler implements Echo-based HTTP handlers for diagram generation.
type RoseEchoHandler struct {
	logger   *xlogger.Logger
	gen      *usecase.DiagramGenerator
	rl       *ratelimit.Limiter
	rlBurst  float64
	rlRefill float64
}

func NewRoseEchoHandler(logger *xlogger.Logger, gen *usecase.DiagramGenerator) *RoseEchoHandler {
	metrics.Register()
	return &RoseEchoHandler{logger: logger, gen: gen}
}

// SetRateLimit enables per-client token-bucket limiting on the generate endpoints.
func (h *RoseEchoHandler) SetRateLimit(burst, refillPerSec float64) {
	h.rl = ratelimit.New()
	h.rlBurst = burst
	h.rlRefill = refillPerSec
}

func (h *RoseEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/rose", h.Generate)
	g.POST("/rose/csv", h.ExportCSV)
	e.GET("/healthz", h.Health)
}

func (h *RoseEchoHandler) Generate(c echo.Context) error {
	start := time.Now()
	endpoint := "generate"
	defer func() { metrics.GenerateLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.GenerateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.allow(c, endpoint) {
		return xhttp.TooManyRequestsResponse(c, "rate limited")
	}

	res, ferrs := h.gen.Generate(c.Request().Context(), req.Strike, req.Dip)
	if len(ferrs) > 0 {
		return h.rejected(c, endpoint, ferrs)
	}
	if req.Preview == models.PreviewNone {
		res.Preview = nil
	}

	metrics.SampleSize.Observe(float64(res.Diagram.SampleCount))
	return xhttp.SuccessResponse(c, res)
}

func (h *RoseEchoHandler) ExportCSV(c echo.Context) error {
	start := time.Now()
	endpoint := "export_csv"
	defer func() { metrics.GenerateLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.GenerateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.allow(c, endpoint) {
		return xhttp.TooManyRequestsResponse(c, "rate limited")
	}

	b, ferrs := h.gen.ExportCSV(c.Request().Context(), req.Strike, req.Dip)
	if len(ferrs) > 0 {
		return h.rejected(c, endpoint, ferrs)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, csvFileName))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", b)
}

func (h *RoseEchoHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *RoseEchoHandler) allow(c echo.Context, endpoint string) bool {
	if h.rl == nil {
		return true
	}
	if h.rl.Allow(c.RealIP()+":"+endpoint, h.rlBurst, h.rlRefill) {
		return true
	}
	if h.logger != nil {
		h.logger.Warn("diagram rate_limited",
			xlogger.String("endpoint", endpoint),
			xlogger.String("remote", c.RealIP()),
		)
	}
	return false
}

// rejected maps the ordered rule violations onto the standard 400 envelope.
// Pipeline failures that are not the client's fault get a 500 instead.
func (h *RoseEchoHandler) rejected(c echo.Context, endpoint string, ferrs []rose.FieldError) error {
	for _, fe := range ferrs {
		if fe.Code == "ERR_CANCELED" || fe.Code == "ERR_INTERNAL" {
			metrics.GenerateErrors.WithLabelValues(endpoint).Inc()
			if h.logger != nil {
				h.logger.Error("diagram pipeline error",
					xlogger.String("endpoint", endpoint),
					xlogger.String("code", fe.Code),
					xlogger.String("detail", fe.Message),
				)
			}
			return xhttp.InternalServerErrorResponse(c)
		}
	}

	out := make([]xhttp.ValidationError, len(ferrs))
	for i, fe := range ferrs {
		metrics.ValidationFailures.WithLabelValues(fe.Code).Inc()
		out[i] = xhttp.ValidationError{
			Code:    fe.Code,
			Field:   fe.Field,
			Message: fe.Message,
			Params:  fe.Params,
		}
	}
	if h.logger != nil {
		h.logger.Debug("diagram rejected",
			xlogger.String("endpoint", endpoint),
			xlogger.Int("violations", len(ferrs)),
		)
	}
	return xhttp.BadRequestResponse(c, out)
}
