// Package siteconfig exposes the landing page configuration document and the
// links and CSS derived from it.
package siteconfig

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

//go:embed config_bbr.json
var embedded []byte

// ErrConfigLoad marks a configuration document that could not be read or decoded.
var ErrConfigLoad = errors.New("site config load failed")

// Site holds one configuration document. The document is decoded on first
// access and never changes afterwards.
type Site struct {
	once sync.Once
	src  []byte
	cfg  *SiteConfig
	err  error
}

var (
	defaultOnce sync.Once
	defaultSite *Site
)

// Default returns the Site backed by the embedded document.
func Default() *Site {
	defaultOnce.Do(func() {
		defaultSite = &Site{src: embedded}
		defaultSite.mustLoad()
	})
	return defaultSite
}

// Parse decodes data eagerly and reports decode failures.
func Parse(data []byte) (*Site, error) {
	s := &Site{src: data}
	s.load()
	if s.err != nil {
		return nil, s.err
	}
	return s, nil
}

// LoadFile reads and decodes a configuration document from disk.
func LoadFile(path string) (*Site, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrConfigLoad, path, err)
	}
	return Parse(b)
}

func (s *Site) load() {
	s.once.Do(func() {
		var cfg SiteConfig
		if err := json.Unmarshal(s.src, &cfg); err != nil {
			s.err = fmt.Errorf("%w: decode: %w", ErrConfigLoad, err)
			return
		}
		s.cfg = &cfg
	})
}

func (s *Site) mustLoad() {
	s.load()
	if s.err != nil {
		panic(s.err)
	}
}

// Config returns the cached document, decoding it on first call.
func (s *Site) Config() *SiteConfig {
	s.mustLoad()
	return s.cfg
}

func (s *Site) Empresa() Empresa             { return s.Config().Empresa }
func (s *Site) Hero() Hero                   { return s.Config().Hero }
func (s *Site) Stats() []Stat                { return s.Config().Stats }
func (s *Site) QuienesSomos() QuienesSomos   { return s.Config().QuienesSomos }
func (s *Site) Servicios() Servicios         { return s.Config().Servicios }
func (s *Site) Contacto() Contacto           { return s.Config().Contacto }
func (s *Site) RedesSociales() RedesSociales { return s.Config().RedesSociales }
func (s *Site) Footer() Footer               { return s.Config().Footer }
func (s *Site) WidgetBot() WidgetBot         { return s.Config().WidgetBot }
func (s *Site) Tema() Tema                   { return s.Config().Tema }
func (s *Site) Colores() Colores             { return s.Config().Tema.Colores }
func (s *Site) Fuentes() Fuentes             { return s.Config().Tema.Fuentes }
func (s *Site) Navegacion() Navegacion       { return s.Config().Navegacion }

// Section returns one top-level section by its URL slug.
func (s *Site) Section(slug string) (any, bool) {
	switch slug {
	case "empresa":
		return s.Empresa(), true
	case "hero":
		return s.Hero(), true
	case "stats":
		return s.Stats(), true
	case "quienes-somos":
		return s.QuienesSomos(), true
	case "servicios":
		return s.Servicios(), true
	case "contacto":
		return s.Contacto(), true
	case "redes-sociales":
		return s.RedesSociales(), true
	case "footer":
		return s.Footer(), true
	case "widget-bot":
		return s.WidgetBot(), true
	case "tema":
		return s.Tema(), true
	case "colores":
		return s.Colores(), true
	case "fuentes":
		return s.Fuentes(), true
	case "navegacion":
		return s.Navegacion(), true
	}
	return nil, false
}
