package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"

	"github.com/elsampedrino/BBR-Landing-Page/catalog"
	httpapi "github.com/elsampedrino/BBR-Landing-Page/http"
	"github.com/elsampedrino/BBR-Landing-Page/internal/siteconfig"
)

type RouterDeps struct {
	Site          *siteconfig.Site
	Loader        *catalog.Loader
	RatePerMinute int
}

func BuildRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	if deps.RatePerMinute > 0 {
		r.Use(httprate.LimitByIP(deps.RatePerMinute, 1*time.Minute))
	}
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`{"ok":true}`)) })

	httpapi.RegisterSite(r, httpapi.SiteDeps{Site: deps.Site})
	httpapi.RegisterListings(r, httpapi.ListingsDeps{Loader: deps.Loader})

	return r
}
