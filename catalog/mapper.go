package catalog

import (
	"encoding/json"
	"errors"
)

// Transform unwraps the photo folder into a flat URL list. Every other field,
// unmodelled ones included, is carried over unchanged.
func Transform(raw RawPropiedad) Propiedad {
	fotos := []string{}
	if raw.Fotos != nil && raw.Fotos.URLs != nil {
		fotos = raw.Fotos.URLs
	}
	return Propiedad{
		ID:                 raw.ID,
		Tipo:               raw.Tipo,
		Operacion:          raw.Operacion,
		EstadoConstruccion: raw.EstadoConstruccion,
		Titulo:             raw.Titulo,
		Direccion:          raw.Direccion,
		Precio:             raw.Precio,
		Descripcion:        raw.Descripcion,
		Fotos:              fotos,
		Caracteristicas:    raw.Caracteristicas,
		Detalles:           raw.Detalles,
		Extra:              raw.Extra,
	}
}

func TransformAll(raws []RawPropiedad) []Propiedad {
	out := make([]Propiedad, 0, len(raws))
	for _, r := range raws {
		out = append(out, Transform(r))
	}
	return out
}

var errNoListings = errors.New("catalog document has no propiedades array")

// DecodeEnvelope parses a catalog document. A document without a
// propiedades array is rejected rather than read as an empty catalog.
func DecodeEnvelope(raw []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}
	if env.Propiedades == nil {
		return nil, errNoListings
	}
	return &env, nil
}
