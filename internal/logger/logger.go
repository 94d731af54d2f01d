package logger

import (
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Config captures options for the process logger.
type Config struct {
	Level   string    // "debug", "info", ... (defaults to LOG_LEVEL, then info)
	Output  io.Writer // defaults to os.Stdout
	Service string
}

var (
	once sync.Once
	base zerolog.Logger
)

// Configure initialises the base logger exactly once.
func Configure(cfg Config) {
	once.Do(func() {
		level := zerolog.InfoLevel
		lv := cfg.Level
		if lv == "" {
			lv = os.Getenv("LOG_LEVEL")
		}
		if lv != "" {
			if parsed, err := zerolog.ParseLevel(lv); err == nil {
				level = parsed
			}
		}
		zerolog.SetGlobalLevel(level)
		zerolog.TimeFieldFormat = time.RFC3339

		w := cfg.Output
		if w == nil {
			w = os.Stdout
		}
		service := cfg.Service
		if service == "" {
			service = "bbr-landing"
		}
		base = zerolog.New(w).With().Timestamp().Str("service", service).Logger()
	})
}

// Base returns the configured logger, configuring defaults on first use.
func Base() zerolog.Logger {
	Configure(Config{})
	return base
}

// WithComponent returns a child logger tagged with component.
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str("component", component).Logger()
}

// Middleware logs one line per request.
func Middleware(next http.Handler) http.Handler {
	l := WithComponent("http")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		evt := l.Info()
		if status >= 500 {
			evt = l.Error()
		}
		evt.Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("bytes", ww.BytesWritten()).
			Dur("took", time.Since(start)).
			Str("remote", r.RemoteAddr).
			Msg("request")
	})
}

// Leveled adapts a zerolog logger to the key/value leveled logger shape used by
// HTTP client libraries.
type Leveled struct {
	L zerolog.Logger
}

func (l Leveled) Error(msg string, kv ...interface{}) { l.L.Error().Fields(kv).Msg(msg) }
func (l Leveled) Warn(msg string, kv ...interface{})  { l.L.Warn().Fields(kv).Msg(msg) }

// Info maps to debug: retryablehttp logs every attempt at info.
func (l Leveled) Info(msg string, kv ...interface{})  { l.L.Debug().Fields(kv).Msg(msg) }
func (l Leveled) Debug(msg string, kv ...interface{}) { l.L.Debug().Fields(kv).Msg(msg) }
