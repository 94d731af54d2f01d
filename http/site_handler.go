package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/elsampedrino/BBR-Landing-Page/internal/logger"
	"github.com/elsampedrino/BBR-Landing-Page/internal/siteconfig"
)

func logf(req *http.Request, format string, args ...any) {
	l := logger.WithComponent("http")
	l.Warn().Str("path", req.URL.Path).Msgf(format, args...)
}

type SiteDeps struct {
	Site *siteconfig.Site
}

func RegisterSite(r chi.Router, d SiteDeps) {
	r.Route("/site", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			render.JSON(w, req, d.Site.Config())
		})

		r.Get("/links", func(w http.ResponseWriter, req *http.Request) {
			render.JSON(w, req, map[string]string{
				"whatsapp": d.Site.WhatsAppURL(),
				"telefono": d.Site.TelefonoURL(),
				"email":    d.Site.EmailURL(),
			})
		})

		r.Get("/theme.css", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "text/css; charset=utf-8")
			_, _ = w.Write([]byte(d.Site.Stylesheet()))
		})

		r.Get("/{section}", func(w http.ResponseWriter, req *http.Request) {
			slug := chi.URLParam(req, "section")
			v, ok := d.Site.Section(slug)
			if !ok {
				render.Status(req, http.StatusNotFound)
				render.JSON(w, req, map[string]any{"error": "unknown_section", "section": slug})
				return
			}
			render.JSON(w, req, v)
		})
	})
}
