package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/elsampedrino/BBR-Landing-Page/internal/logger"
)

// ErrCatalogUnavailable wraps every failure to obtain the catalog.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// Fetcher retrieves the raw catalog document.
type Fetcher interface {
	FetchCatalog(ctx context.Context) (*Envelope, error)
}

type State int

const (
	Empty State = iota
	Populated
)

func (s State) String() string {
	if s == Populated {
		return "populated"
	}
	return "empty"
}

type Source string

const (
	SourceFresh Source = "fresh"
	SourceCache Source = "cache"
)

// Result is a successfully loaded catalog. Listings is shared with the cache
// and must not be modified.
type Result struct {
	Listings []Propiedad
	Metadata Metadata
	Source   Source
}

type LoaderOption func(*Loader)

func WithLogger(l zerolog.Logger) LoaderOption {
	return func(ld *Loader) { ld.log = l }
}

// WithLimiter paces upstream fetch attempts. Nil disables pacing.
func WithLimiter(lim *rate.Limiter) LoaderOption {
	return func(ld *Loader) { ld.limiter = lim }
}

// Loader caches the catalog for its own lifetime. Failures are never cached,
// so a later call after a failed one fetches again.
type Loader struct {
	fetcher Fetcher
	key     string
	log     zerolog.Logger
	limiter *rate.Limiter
	group   singleflight.Group

	mu       sync.RWMutex
	state    State
	listings []Propiedad
	meta     Metadata
}

func NewLoader(f Fetcher, opts ...LoaderOption) *Loader {
	l := &Loader{
		fetcher: f,
		key:     CatalogURL,
		log:     logger.WithComponent("catalog"),
		limiter: rate.NewLimiter(rate.Limit(1), 5),
	}
	if c, ok := f.(*Client); ok {
		l.key = c.URL()
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

func (l *Loader) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// Metadata returns the envelope metadata of the cached catalog, if any.
func (l *Loader) Metadata() (Metadata, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.meta, l.state == Populated
}

func (l *Loader) cached() (Result, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.state != Populated {
		return Result{}, false
	}
	return Result{Listings: l.listings, Metadata: l.meta, Source: SourceCache}, true
}

// Load returns the cached catalog or fetches it. Concurrent callers that find
// the cache empty share one upstream request.
func (l *Loader) Load(ctx context.Context) (Result, error) {
	if r, ok := l.cached(); ok {
		return r, nil
	}
	v, err, _ := l.group.Do(l.key, func() (interface{}, error) {
		if r, ok := l.cached(); ok {
			return r, nil
		}
		if l.limiter != nil {
			if err := l.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
			}
		}
		env, err := l.fetcher.FetchCatalog(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
		}
		listings := TransformAll(env.Propiedades)

		l.mu.Lock()
		l.listings = listings
		l.meta = env.Metadata
		l.state = Populated
		l.mu.Unlock()

		l.log.Info().
			Int("listings", len(listings)).
			Int("declared_total", env.Metadata.Total).
			Str("generated", env.Metadata.FechaGeneracion).
			Msg("catalog loaded")
		return Result{Listings: listings, Metadata: env.Metadata, Source: SourceFresh}, nil
	})
	if err != nil {
		return Result{}, err
	}
	return v.(Result), nil
}

// Propiedades returns the catalog, or an empty list when it cannot be loaded.
func (l *Loader) Propiedades(ctx context.Context) []Propiedad {
	r, err := l.Load(ctx)
	if err != nil {
		l.log.Error().Err(err).Msg("error loading catalog, serving no listings")
		return []Propiedad{}
	}
	return r.Listings
}

// ByID finds one listing in the catalog.
func (l *Loader) ByID(ctx context.Context, id string) (Propiedad, bool) {
	for _, p := range l.Propiedades(ctx) {
		if p.ID == id {
			return p, true
		}
	}
	return Propiedad{}, false
}

func (l *Loader) CasasVenta(ctx context.Context) []Propiedad {
	return CasasVenta(l.Propiedades(ctx))
}

func (l *Loader) DepartamentosVenta(ctx context.Context) []Propiedad {
	return DepartamentosVenta(l.Propiedades(ctx))
}

func (l *Loader) LotesVenta(ctx context.Context) []Propiedad {
	return LotesVenta(l.Propiedades(ctx))
}

func (l *Loader) CamposVenta(ctx context.Context) []Propiedad {
	return CamposVenta(l.Propiedades(ctx))
}

func (l *Loader) Alquileres(ctx context.Context) []Propiedad {
	return Alquileres(l.Propiedades(ctx))
}

func (l *Loader) Destacadas(ctx context.Context) []Propiedad {
	return Destacadas(l.Propiedades(ctx))
}
