package catalog

import "encoding/json"

type Direccion struct {
	Calle  string `json:"calle"`
	Barrio string `json:"barrio"`
	Ciudad string `json:"ciudad"`
}

type Precio struct {
	Valor  Number `json:"valor"`
	Moneda string `json:"moneda"`
}

// Caracteristicas are all optional; nil means the feed omitted the field.
type Caracteristicas struct {
	Ambientes          *Number `json:"ambientes,omitempty"`
	Dormitorios        *Number `json:"dormitorios,omitempty"`
	Banios             *Number `json:"banios,omitempty"`
	SuperficieTotal    *Number `json:"superficie_total,omitempty"`
	SuperficieCubierta *Number `json:"superficie_cubierta,omitempty"`
}

// Propiedad is a listing ready for display: Fotos is a flat URL list.
type Propiedad struct {
	ID                 string          `json:"id"`
	Tipo               string          `json:"tipo"`      // casa, departamento, terreno, campo, ...
	Operacion          string          `json:"operacion"` // venta or alquiler
	EstadoConstruccion *string         `json:"estado_construccion,omitempty"`
	Titulo             string          `json:"titulo"`
	Direccion          Direccion       `json:"direccion"`
	Precio             Precio          `json:"precio"`
	Descripcion        string          `json:"descripcion"`
	Fotos              []string        `json:"fotos"`
	Caracteristicas    Caracteristicas `json:"caracteristicas"`
	Detalles           []string        `json:"detalles,omitempty"`

	// Extra holds feed keys this type does not model; they are written back
	// on encode.
	Extra map[string]json.RawMessage `json:"-"`
}

type rawFotos struct {
	Carpeta string   `json:"carpeta"`
	URLs    []string `json:"urls"`
}

// RawPropiedad is the wire shape published in the catalog file.
type RawPropiedad struct {
	ID                 string          `json:"id"`
	Tipo               string          `json:"tipo"`
	Operacion          string          `json:"operacion"`
	EstadoConstruccion *string         `json:"estado_construccion,omitempty"`
	Titulo             string          `json:"titulo"`
	Direccion          Direccion       `json:"direccion"`
	Precio             Precio          `json:"precio"`
	Descripcion        string          `json:"descripcion"`
	Fotos              *rawFotos       `json:"fotos"`
	Caracteristicas    Caracteristicas `json:"caracteristicas"`
	Detalles           []string        `json:"detalles,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type Metadata struct {
	Total           int    `json:"total"`
	FechaGeneracion string `json:"fecha_generacion"`
}

// Envelope is the top-level document served by the catalog endpoint.
type Envelope struct {
	Propiedades []RawPropiedad `json:"propiedades"`
	Metadata    Metadata       `json:"metadata"`
}

// Operation and category values used by the filters.
const (
	TipoCasa         = "casa"
	TipoDepartamento = "departamento"
	TipoTerreno      = "terreno"
	TipoCampo        = "campo"

	OperacionVenta    = "venta"
	OperacionAlquiler = "alquiler"
)

// listing keys modelled by RawPropiedad and Propiedad
var knownKeys = []string{
	"id", "tipo", "operacion", "estado_construccion", "titulo", "direccion",
	"precio", "descripcion", "fotos", "caracteristicas", "detalles",
}

func (r *RawPropiedad) UnmarshalJSON(b []byte) error {
	type plain RawPropiedad
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(b, &all); err != nil {
		return err
	}
	for _, k := range knownKeys {
		delete(all, k)
	}
	if len(all) > 0 {
		p.Extra = all
	}
	*r = RawPropiedad(p)
	return nil
}

func (p Propiedad) MarshalJSON() ([]byte, error) {
	type plain Propiedad
	b, err := json.Marshal(plain(p))
	if err != nil || len(p.Extra) == 0 {
		return b, err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(b, &all); err != nil {
		return nil, err
	}
	for k, v := range p.Extra {
		if _, ok := all[k]; !ok {
			all[k] = v
		}
	}
	return json.Marshal(all)
}
