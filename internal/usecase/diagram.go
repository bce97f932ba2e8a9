package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"time"

	"RoseGen/internal/domain/models"
	"RoseGen/internal/rose"
	icache "RoseGen/internal/service/cache"
	pkgcache "RoseGen/pkg/cache"
	applogger "RoseGen/pkg/logger"
)

// DiagramGenerator runs the full submission pipeline: parse both text blobs,
// validate the series, aggregate into sectors and attach render colors.
// Results are pure functions of the input text, so identical resubmissions
// are served from a content-addressed cache when one is configured.
type DiagramGenerator struct {
	minSamples  int
	binWidthDeg float64
	cache       icache.BytesCache
	cacheTTL    time.Duration
	l           *applogger.Logger
}

func NewDiagramGenerator(minSamples int, binWidthDeg float64) *DiagramGenerator {
	return &DiagramGenerator{minSamples: minSamples, binWidthDeg: binWidthDeg}
}

// SetCache injects a result cache with its entry TTL.
func (g *DiagramGenerator) SetCache(c icache.BytesCache, ttl time.Duration) {
	g.cache = c
	g.cacheTTL = ttl
}

// SetLogger injects a structured logger.
func (g *DiagramGenerator) SetLogger(l *applogger.Logger) { g.l = l }

// Generate converts the two raw blobs into a rose diagram payload, or the
// full ordered list of violated rules.
func (g *DiagramGenerator) Generate(ctx context.Context, strikeText, dipText string) (*models.GenerateResponse, []rose.FieldError) {
	if err := ctx.Err(); err != nil {
		return nil, []rose.FieldError{{Code: "ERR_CANCELED", Message: err.Error()}}
	}

	cacheKey := pkgcache.GenerateKey("diagram", pkgcache.HashKey(strikeText+"\x1f"+dipText))
	if g.cache != nil {
		if b, ok, err := g.cache.GetBytes(cacheKey); err != nil {
			if g.l != nil {
				g.l.Warn("diagram cache_get_error", applogger.Error(err))
			}
		} else if ok {
			var res models.GenerateResponse
			if err := json.Unmarshal(b, &res); err == nil {
				if g.l != nil {
					g.l.Debug("diagram cache_hit", applogger.String("key", cacheKey))
				}
				return &res, nil
			}
		}
	}

	set, verrs := g.parseAndValidate(strikeText, dipText)
	if len(verrs) > 0 {
		return nil, verrs
	}

	diagram := rose.Aggregate(set, g.binWidthDeg)
	for i := range diagram.Bins {
		diagram.Bins[i].Color = rose.Viridis(diagram.Bins[i].NormalizedDip)
	}

	res := &models.GenerateResponse{
		Diagram: diagram,
		Preview: set.Pairs(),
	}

	if g.cache != nil {
		if b, err := json.Marshal(res); err == nil {
			if err := g.cache.SetBytes(cacheKey, b, g.cacheTTL); err != nil && g.l != nil {
				g.l.Warn("diagram cache_set_error", applogger.Error(err))
			}
		}
	}

	return res, nil
}

// ExportCSV validates the same input and renders the semicolon-delimited
// tabular export, one row per pair in original order.
func (g *DiagramGenerator) ExportCSV(ctx context.Context, strikeText, dipText string) ([]byte, []rose.FieldError) {
	if err := ctx.Err(); err != nil {
		return nil, []rose.FieldError{{Code: "ERR_CANCELED", Message: err.Error()}}
	}

	set, verrs := g.parseAndValidate(strikeText, dipText)
	if len(verrs) > 0 {
		return nil, verrs
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	_ = w.Write([]string{"Strike", "Dip"})
	for i := range set.Strikes {
		_ = w.Write([]string{
			strconv.FormatFloat(set.Strikes[i], 'g', -1, 64),
			strconv.FormatFloat(set.Dips[i], 'g', -1, 64),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, []rose.FieldError{{Code: "ERR_INTERNAL", Message: err.Error()}}
	}

	return buf.Bytes(), nil
}

// parseAndValidate runs the shared front half of both operations. Parse
// failures abort before count validation since an unparsed series has no
// meaningful length.
func (g *DiagramGenerator) parseAndValidate(strikeText, dipText string) (models.MeasurementSet, []rose.FieldError) {
	var perrs []rose.FieldError

	strikes, err := rose.ParseSeries(strikeText)
	if err != nil {
		perrs = append(perrs, rose.NewParseError(rose.FieldStrike, err))
	}
	dips, err := rose.ParseSeries(dipText)
	if err != nil {
		perrs = append(perrs, rose.NewParseError(rose.FieldDip, err))
	}
	if len(perrs) > 0 {
		return models.MeasurementSet{}, perrs
	}

	if verrs := rose.ValidateSet(strikes, dips, g.minSamples); len(verrs) > 0 {
		return models.MeasurementSet{}, verrs
	}

	return models.MeasurementSet{Strikes: strikes, Dips: dips}, nil
}
