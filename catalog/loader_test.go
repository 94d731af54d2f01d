package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/time/rate"
)

const sampleCatalog = `{
  "propiedades": [
    {"id": "c1", "tipo": "casa", "operacion": "venta", "titulo": "Casa 1",
     "fotos": {"carpeta": "c1", "urls": ["c1-a.jpg", "c1-b.jpg"]}},
    {"id": "d1", "tipo": "departamento", "operacion": "venta", "titulo": "Depto 1"},
    {"id": "a1", "tipo": "casa", "operacion": "alquiler", "titulo": "Alquiler 1",
     "fotos": {"carpeta": "a1"}}
  ],
  "metadata": {"total": 3, "fecha_generacion": "2025-03-01"}
}`

type upstream struct {
	srv  *httptest.Server
	hits atomic.Int32
	mu   sync.Mutex
	code int
	body string
}

func newUpstream(t *testing.T, code int, body string) *upstream {
	t.Helper()
	u := &upstream{code: code, body: body}
	u.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.hits.Add(1)
		u.mu.Lock()
		code, body := u.code, u.body
		u.mu.Unlock()
		w.WriteHeader(code)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(u.srv.Close)
	return u
}

func (u *upstream) set(code int, body string) {
	u.mu.Lock()
	u.code, u.body = code, body
	u.mu.Unlock()
}

func newTestLoader(u *upstream) *Loader {
	nop := zerolog.Nop()
	c := NewClient(ClientConfig{URL: u.srv.URL, Timeout: 2 * time.Second, Logger: &nop})
	return NewLoader(c, WithLimiter(nil), WithLogger(nop))
}

func TestPropiedadesCachesAfterSuccess(t *testing.T) {
	u := newUpstream(t, http.StatusOK, sampleCatalog)
	l := newTestLoader(u)
	ctx := context.Background()

	assert.Equal(t, Empty, l.State())
	first := l.Propiedades(ctx)
	second := l.Propiedades(ctx)

	require.Len(t, first, 3)
	require.Len(t, second, 3)
	assert.Same(t, &first[0], &second[0], "second call must return the cached slice")
	assert.Equal(t, int32(1), u.hits.Load())
	assert.Equal(t, Populated, l.State())

	assert.Equal(t, []string{"c1-a.jpg", "c1-b.jpg"}, first[0].Fotos)
	assert.Equal(t, []string{}, first[1].Fotos)
	assert.Equal(t, []string{}, first[2].Fotos)

	meta, ok := l.Metadata()
	require.True(t, ok)
	assert.Equal(t, 3, meta.Total)
	assert.Equal(t, "2025-03-01", meta.FechaGeneracion)
}

func TestLoadReportsSource(t *testing.T) {
	u := newUpstream(t, http.StatusOK, sampleCatalog)
	l := newTestLoader(u)

	r, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceFresh, r.Source)

	r, err = l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceCache, r.Source)
}

func TestServerErrorYieldsEmptyAndIsNotCached(t *testing.T) {
	u := newUpstream(t, http.StatusInternalServerError, `oops`)
	l := newTestLoader(u)
	ctx := context.Background()

	got := l.Propiedades(ctx)
	require.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, Empty, l.State())

	_, err := l.Load(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.Code)

	u.set(http.StatusOK, sampleCatalog)
	assert.Len(t, l.Propiedades(ctx), 3)
	assert.Equal(t, Populated, l.State())
	assert.Equal(t, int32(3), u.hits.Load())

	u.set(http.StatusInternalServerError, `oops`)
	assert.Len(t, l.Propiedades(ctx), 3, "cached catalog survives later upstream failures")
	assert.Equal(t, int32(3), u.hits.Load())
}

func TestMalformedBodyIsUnavailable(t *testing.T) {
	u := newUpstream(t, http.StatusOK, `{"propiedades": [`)
	l := newTestLoader(u)

	assert.Empty(t, l.Propiedades(context.Background()))
	_, err := l.Load(context.Background())
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
}

func TestEmptyCatalogIsDistinctFromUnavailable(t *testing.T) {
	u := newUpstream(t, http.StatusOK, `{"propiedades": [], "metadata": {"total": 0}}`)
	l := newTestLoader(u)

	r, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, r.Listings)
	assert.Equal(t, Populated, l.State())

	l.Propiedades(context.Background())
	assert.Equal(t, int32(1), u.hits.Load())
}

func TestTransportErrorYieldsEmpty(t *testing.T) {
	u := newUpstream(t, http.StatusOK, sampleCatalog)
	u.srv.Close()
	l := newTestLoader(u)

	assert.Empty(t, l.Propiedades(context.Background()))
	assert.Equal(t, Empty, l.State())
}

func TestLoaderMethodsUseCache(t *testing.T) {
	u := newUpstream(t, http.StatusOK, sampleCatalog)
	l := newTestLoader(u)
	ctx := context.Background()

	assert.Equal(t, []string{"c1"}, ids(l.CasasVenta(ctx)))
	assert.Equal(t, []string{"d1"}, ids(l.DepartamentosVenta(ctx)))
	assert.Empty(t, l.LotesVenta(ctx))
	assert.Empty(t, l.CamposVenta(ctx))
	assert.Equal(t, []string{"a1"}, ids(l.Alquileres(ctx)))
	assert.Equal(t, []string{"c1", "d1", "a1"}, ids(l.Destacadas(ctx)))

	p, ok := l.ByID(ctx, "d1")
	require.True(t, ok)
	assert.Equal(t, "Depto 1", p.Titulo)
	_, ok = l.ByID(ctx, "missing")
	assert.False(t, ok)

	assert.Equal(t, int32(1), u.hits.Load())
}

type blockingFetcher struct {
	calls   atomic.Int32
	release chan struct{}
}

func (f *blockingFetcher) FetchCatalog(ctx context.Context) (*Envelope, error) {
	f.calls.Add(1)
	select {
	case <-f.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return DecodeEnvelope([]byte(sampleCatalog))
}

func TestConcurrentFirstCallsShareOneFetch(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	f := &blockingFetcher{release: make(chan struct{})}
	l := NewLoader(f, WithLimiter(nil), WithLogger(zerolog.Nop()))

	const callers = 8
	var wg sync.WaitGroup
	results := make([][]Propiedad, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = l.Propiedades(context.Background())
		}(i)
	}

	require.Eventually(t, func() bool { return f.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	close(f.release)
	wg.Wait()

	assert.Equal(t, int32(1), f.calls.Load())
	for _, r := range results {
		assert.Len(t, r, 3)
	}
}

type failingFetcher struct{ calls atomic.Int32 }

func (f *failingFetcher) FetchCatalog(context.Context) (*Envelope, error) {
	f.calls.Add(1)
	return nil, errors.New("boom")
}

func TestCanceledContextWhileWaitingForLimiter(t *testing.T) {
	f := &failingFetcher{}
	lim := rateLimiterForTest()
	l := NewLoader(f, WithLimiter(lim), WithLogger(zerolog.Nop()))

	// first attempt consumes the only token
	_, err := l.Load(context.Background())
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = l.Load(ctx)
	require.ErrorIs(t, err, ErrCatalogUnavailable)
	assert.Equal(t, int32(1), f.calls.Load())
}

func rateLimiterForTest() *rate.Limiter {
	return rate.NewLimiter(rate.Every(time.Hour), 1)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "empty", Empty.String())
	assert.Equal(t, "populated", Populated.String())
}
