package di

import (
	"RoseGen/internal/handler/api"
	icache "RoseGen/internal/service/cache"
	"RoseGen/internal/usecase"
	pkgcache "RoseGen/pkg/cache"
	"RoseGen/pkg/config"
	xhttp "RoseGen/pkg/http"
	applogger "RoseGen/pkg/logger"
	"RoseGen/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideResultCache creates the diagram result cache. Redis when configured,
// otherwise an in-process cache; a Redis connection failure falls back to the
// in-process cache so the service still starts.
func ProvideResultCache(cfg *config.Config, l *applogger.Logger) icache.BytesCache {
	if cfg.Cache.Redis.Enabled {
		rc, err := pkgcache.NewRedisCache(
			pkgcache.WithRedisHost(cfg.Cache.Redis.Host),
			pkgcache.WithRedisPort(cfg.Cache.Redis.Port),
			pkgcache.WithRedisPassword(cfg.Cache.Redis.Password),
			pkgcache.WithRedisDB(cfg.Cache.Redis.DB),
			pkgcache.WithRedisPrefix(cfg.Cache.Redis.Prefix),
		)
		if err == nil {
			return icache.NewServiceAdapter(rc)
		}
		l.Warn("redis unavailable, using in-process cache", applogger.Error(err))
	}
	return icache.NewServiceAdapter(pkgcache.NewMemoryCache(pkgcache.WithMemoryMaxSize(256)))
}

// ProvideDiagramGenerator creates the diagram pipeline use case.
func ProvideDiagramGenerator(cfg *config.Config, c icache.BytesCache, l *applogger.Logger) *usecase.DiagramGenerator {
	gen := usecase.NewDiagramGenerator(cfg.Rose.MinSamples, cfg.Rose.BinWidthDeg)
	gen.SetCache(c, cfg.Cache.TTL)
	gen.SetLogger(l)
	return gen
}

// ProvideHandler creates the HTTP handler with rate limiting from config.
func ProvideHandler(cfg *config.Config, l *applogger.Logger, gen *usecase.DiagramGenerator) xhttp.Handler {
	h := api.NewRoseEchoHandler(l, gen)
	if cfg.RateLimit.Enabled {
		h.SetRateLimit(cfg.RateLimit.Burst, cfg.RateLimit.PerSecond)
	}
	return h
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, handler xhttp.Handler, c icache.BytesCache) *server.App {
	return server.New(cfg, l, handler, c)
}
