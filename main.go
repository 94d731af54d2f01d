package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/elsampedrino/BBR-Landing-Page/catalog"
	"github.com/elsampedrino/BBR-Landing-Page/internal/env"
	"github.com/elsampedrino/BBR-Landing-Page/internal/logger"
	"github.com/elsampedrino/BBR-Landing-Page/internal/siteconfig"
)

func main() {
	env.Load()
	logger.Configure(logger.Config{Level: os.Getenv("LOG_LEVEL"), Service: "bbr-landing"})
	log := logger.WithComponent("main")

	port := env.GetInt("PORT", 4002)

	site := siteconfig.Default()
	if path := os.Getenv("SITE_CONFIG_PATH"); path != "" {
		s, err := siteconfig.LoadFile(path)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("site config")
		}
		site = s
	}

	client := catalog.NewClient(catalog.ClientConfig{
		URL:      env.Get("CATALOG_URL", catalog.CatalogURL),
		Timeout:  env.GetDuration("CATALOG_TIMEOUT", 6*time.Second),
		RetryMax: env.GetInt("CATALOG_RETRY_MAX", 0),
	})
	limiter := rate.NewLimiter(rate.Limit(env.GetFloat("CATALOG_FETCH_RATE", 1)), 5)
	loader := catalog.NewLoader(client, catalog.WithLimiter(limiter))

	router := BuildRouter(RouterDeps{
		Site:          site,
		Loader:        loader,
		RatePerMinute: env.GetInt("RATE_LIMIT_PER_MINUTE", 100),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           logger.Middleware(router),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if env.GetBool("CATALOG_WARMUP", true) {
		go func() {
			wctx, cancel := context.WithTimeout(ctx, 15*time.Second)
			defer cancel()
			if _, err := loader.Load(wctx); err != nil {
				log.Warn().Err(err).Msg("catalog warmup failed, will fetch on demand")
			}
		}()
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info().Int("port", port).Msg("bbr-landing listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
