package document

import "github.com/jhoicas/faktura-api/internal/domain/layout"

// FooterConfig pie de página fijo. Si la factura no configura pie, el bloque
// se omite por completo.
type FooterConfig struct {
	Text  string
	Align layout.Alignment
}

// Margins márgenes de página en puntos.
type Margins struct {
	Left   float64
	Right  float64
	Bottom float64
}

// Options configuración del render de un lote. Campos con nombre y tipo en
// lugar de un saco de propiedades opcionales; los vacíos toman los valores
// por defecto del diseño.
type Options struct {
	// Currency código de divisa de tres letras del bloque de información
	// adicional. Por defecto "PLN".
	Currency string
	// Footer contenido y alineación del pie; nil omite el bloque.
	Footer *FooterConfig
	// Margins márgenes de página; nil aplica 30/30/44.
	Margins *Margins
	// StripBuyerCountry prefijo de país que se quita del NIP del comprador si
	// el NIP empieza por él. Por defecto "PL".
	StripBuyerCountry string
	// Metadata pares clave/valor estampados en la metadata del documento
	// (title, author, subject, keywords, creator) si el backend lo soporta.
	Metadata map[string]string
}

// WithDefaults devuelve una copia con los valores por defecto aplicados.
func (o Options) WithDefaults() Options {
	if o.Currency == "" {
		o.Currency = "PLN"
	}
	if o.Margins == nil {
		o.Margins = &Margins{Left: 30, Right: 30, Bottom: 44}
	}
	if o.StripBuyerCountry == "" {
		o.StripBuyerCountry = "PL"
	}
	return o
}

// ParseAlignment interpreta una alineación textual ("left", "center",
// "right"); cualquier otro valor cae en centrado.
func ParseAlignment(s string) layout.Alignment {
	switch s {
	case "left":
		return layout.AlignLeft
	case "right":
		return layout.AlignRight
	default:
		return layout.AlignCenter
	}
}
