package catalog

// MaxDestacadas caps the featured selection.
const MaxDestacadas = 6

func filter(list []Propiedad, keep func(Propiedad) bool) []Propiedad {
	out := make([]Propiedad, 0)
	for _, p := range list {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func firstN(list []Propiedad, n int) []Propiedad {
	if len(list) > n {
		return list[:n]
	}
	return list
}

func isVentaDe(tipo string) func(Propiedad) bool {
	return func(p Propiedad) bool { return p.Tipo == tipo && p.Operacion == OperacionVenta }
}

func isTipo(tipo string) func(Propiedad) bool {
	return func(p Propiedad) bool { return p.Tipo == tipo }
}

func isAlquiler(p Propiedad) bool { return p.Operacion == OperacionAlquiler }

func CasasVenta(list []Propiedad) []Propiedad { return filter(list, isVentaDe(TipoCasa)) }

func DepartamentosVenta(list []Propiedad) []Propiedad {
	return filter(list, isVentaDe(TipoDepartamento))
}

func LotesVenta(list []Propiedad) []Propiedad  { return filter(list, isVentaDe(TipoTerreno)) }
func CamposVenta(list []Propiedad) []Propiedad { return filter(list, isVentaDe(TipoCampo)) }
func Alquileres(list []Propiedad) []Propiedad  { return filter(list, isAlquiler) }

// Destacadas picks the featured listings: 2 houses for sale, then one
// apartment, one lot, one rural property (any operation) and one rental,
// in that order, capped at MaxDestacadas.
func Destacadas(list []Propiedad) []Propiedad {
	groups := [][]Propiedad{
		firstN(CasasVenta(list), 2),
		firstN(filter(list, isTipo(TipoDepartamento)), 1),
		firstN(filter(list, isTipo(TipoTerreno)), 1),
		firstN(filter(list, isTipo(TipoCampo)), 1),
		firstN(Alquileres(list), 1),
	}
	out := make([]Propiedad, 0, MaxDestacadas)
	for _, g := range groups {
		out = append(out, g...)
	}
	return firstN(out, MaxDestacadas)
}

// Selectors maps the public slice names to their selection function.
var Selectors = map[string]func([]Propiedad) []Propiedad{
	"all":                 func(list []Propiedad) []Propiedad { return list },
	"casas-venta":         CasasVenta,
	"departamentos-venta": DepartamentosVenta,
	"lotes-venta":         LotesVenta,
	"campos-venta":        CamposVenta,
	"alquileres":          Alquileres,
	"destacadas":          Destacadas,
}
