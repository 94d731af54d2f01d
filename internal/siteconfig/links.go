package siteconfig

import (
	"net/url"
	"strings"
)

// CSSVariables renders the theme colours as custom property declarations, one per line.
func (s *Site) CSSVariables() string {
	c := s.Colores()
	decls := []struct{ name, value string }{
		{"--color-primario", c.Primario},
		{"--color-primario-oscuro", c.PrimarioOscuro},
		{"--color-primario-claro", c.PrimarioClaro},
		{"--color-secundario", c.Secundario},
		{"--color-secundario-claro", c.SecundarioClaro},
		{"--color-gris-oscuro", c.GrisOscuro},
		{"--color-gris", c.Gris},
		{"--color-gris-claro", c.GrisClaro},
		{"--color-fondo-gris", c.FondoGris},
		{"--color-fondo-gris-logo", c.FondoGrisLogo},
		{"--color-blanco", c.Blanco},
		{"--color-off-white", c.OffWhite},
	}
	lines := make([]string, 0, len(decls))
	for _, d := range decls {
		lines = append(lines, d.name+": "+d.value+";")
	}
	return strings.Join(lines, "\n")
}

// Stylesheet wraps CSSVariables in a :root rule.
func (s *Site) Stylesheet() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, line := range strings.Split(s.CSSVariables(), "\n") {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	return b.String()
}

func (s *Site) WhatsAppURL() string {
	w := s.Contacto().WhatsApp
	return "https://wa.me/" + w.Numero + "?text=" + encodeComponent(w.MensajeInicial)
}

func (s *Site) TelefonoURL() string {
	return "tel:" + s.Contacto().Telefono.Link
}

func (s *Site) EmailURL() string {
	return "mailto:" + s.Contacto().Email
}

// encodeComponent escapes everything outside the unreserved set, spaces as %20.
func encodeComponent(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}
