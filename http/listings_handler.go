package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/elsampedrino/BBR-Landing-Page/catalog"
)

type ListingsDeps struct {
	Loader *catalog.Loader
}

// listing slices served under /propiedades, in menu order
var listingSets = []string{
	"casas-venta",
	"departamentos-venta",
	"lotes-venta",
	"campos-venta",
	"alquileres",
	"destacadas",
}

func RegisterListings(r chi.Router, d ListingsDeps) {
	r.Route("/propiedades", func(r chi.Router) {
		r.Get("/", serveSet(d, "all"))
		for _, name := range listingSets {
			r.Get("/"+name, serveSet(d, name))
		}
		r.Get("/{id}", func(w http.ResponseWriter, req *http.Request) {
			id := chi.URLParam(req, "id")
			p, ok := d.Loader.ByID(req.Context(), id)
			if !ok {
				render.Status(req, http.StatusNotFound)
				render.JSON(w, req, map[string]any{"error": "not_found", "id": id})
				return
			}
			render.JSON(w, req, map[string]any{"ok": true, "property": p})
		})
	})

	r.Get("/catalog/status", func(w http.ResponseWriter, req *http.Request) {
		meta, ok := d.Loader.Metadata()
		body := map[string]any{"state": d.Loader.State().String()}
		if ok {
			body["total"] = meta.Total
			body["fecha_generacion"] = meta.FechaGeneracion
		}
		render.JSON(w, req, body)
	})
}

// serveSet answers 200 even when the catalog is unavailable; callers render
// an empty section and can tell the cases apart through "available".
func serveSet(d ListingsDeps, name string) http.HandlerFunc {
	sel := catalog.Selectors[name]
	return func(w http.ResponseWriter, req *http.Request) {
		res, err := d.Loader.Load(req.Context())
		if err != nil {
			logf(req, "catalog unavailable for %s: %v", name, err)
			render.JSON(w, req, map[string]any{
				"ok":         true,
				"available":  false,
				"count":      0,
				"properties": []catalog.Propiedad{},
			})
			return
		}
		props := sel(res.Listings)
		render.JSON(w, req, map[string]any{
			"ok":         true,
			"available":  true,
			"source":     res.Source,
			"count":      len(props),
			"properties": props,
		})
	}
}
