package cache

import (
	"context"
	"errors"
	"io"
	"time"

	pkgcache "RoseGen/pkg/cache"
)

// ServiceAdapter exposes any pkg/cache.Service (Redis or memory) as a
// BytesCache with a bounded per-call timeout.
type ServiceAdapter struct {
	svc     pkgcache.Service
	timeout time.Duration
}

func NewServiceAdapter(svc pkgcache.Service) *ServiceAdapter {
	return &ServiceAdapter{svc: svc, timeout: 2 * time.Second}
}

func (a *ServiceAdapter) GetBytes(key string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	var b []byte
	err := a.svc.Get(ctx, key, &b)
	if err != nil {
		if errors.Is(err, pkgcache.ErrCacheMiss) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

func (a *ServiceAdapter) SetBytes(key string, value []byte, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()
	return a.svc.Set(ctx, key, value, ttl)
}

// Close releases the underlying client when it is closable.
func (a *ServiceAdapter) Close() error {
	if c, ok := a.svc.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
