// Command catalogctl fetches the property catalog once and prints one slice of
// it as JSON, for static builds that bake listings into pages.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/elsampedrino/BBR-Landing-Page/catalog"
	"github.com/elsampedrino/BBR-Landing-Page/internal/env"
	"github.com/elsampedrino/BBR-Landing-Page/internal/logger"
)

// exit codes
const (
	exitOK          = 0
	exitUnavailable = 1
	exitUsage       = 2
)

func main() {
	env.Load()
	logger.Configure(logger.Config{Output: os.Stderr, Service: "catalogctl"})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	log := logger.WithComponent("catalogctl")

	fs := flag.NewFlagSet("catalogctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	set := fs.String("set", "all", "slice to print: "+strings.Join(setNames(), ", "))
	url := fs.String("url", env.Get("CATALOG_URL", catalog.CatalogURL), "catalog document URL")
	timeout := fs.Duration("timeout", env.GetDuration("CATALOG_TIMEOUT", 12*time.Second), "request timeout")
	retries := fs.Int("retries", env.GetInt("CATALOG_RETRY_MAX", 0), "transport retries")
	strict := fs.Bool("strict", env.GetBool("CATALOG_STRICT", true), "exit non-zero when the catalog is unavailable")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	sel, ok := catalog.Selectors[*set]
	if !ok {
		fmt.Fprintf(stderr, "unknown set %q (want one of %s)\n", *set, strings.Join(setNames(), ", "))
		return exitUsage
	}

	client := catalog.NewClient(catalog.ClientConfig{URL: *url, Timeout: *timeout, RetryMax: *retries})
	loader := catalog.NewLoader(client, catalog.WithLimiter(nil))

	props := []catalog.Propiedad{}
	res, err := loader.Load(ctx)
	if err != nil {
		if *strict {
			log.Error().Err(err).Msg("catalog fetch failed")
			return exitUnavailable
		}
		log.Warn().Err(err).Msg("catalog unavailable, printing an empty list")
	} else {
		props = sel(res.Listings)
		log.Info().Str("set", *set).Int("count", len(props)).Str("generated", res.Metadata.FechaGeneracion).Msg("catalog slice ready")
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(props); err != nil {
		log.Error().Err(err).Msg("encode")
		return exitUnavailable
	}
	return exitOK
}

func setNames() []string {
	names := make([]string, 0, len(catalog.Selectors))
	for k := range catalog.Selectors {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
