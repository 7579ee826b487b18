package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/faktura-api/internal/domain"
)

// VATRateKind clase de tratamiento VAT de una línea.
type VATRateKind int

const (
	VATPercentage    VATRateKind = iota // tasa numérica, ej. "23"
	VATNotApplicable                    // centinela "-1": no sujeto a VAT
	VATExempt                           // centinela "ZW": exento (zwolniony)
)

// VATRate variante etiquetada del código de tasa. Conserva el código crudo
// porque la agrupación del resumen se hace por igualdad exacta del string:
// "23" y "23.0" forman grupos distintos.
type VATRate struct {
	Kind    VATRateKind
	Code    string
	Percent decimal.Decimal // válido solo cuando Kind == VATPercentage
}

// ParseVATRate interpreta un código de tasa. El centinela "ZW" se acepta sin
// distinguir mayúsculas; cualquier código que no sea numérico ni centinela
// falla con ErrInvalidVATRate en lugar de coercionarse en silencio.
func ParseVATRate(code string) (VATRate, error) {
	switch {
	case code == "-1":
		return VATRate{Kind: VATNotApplicable, Code: code}, nil
	case strings.EqualFold(code, "ZW"):
		return VATRate{Kind: VATExempt, Code: code}, nil
	}
	pct, err := decimal.NewFromString(code)
	if err != nil {
		return VATRate{}, fmt.Errorf("%w: %q", domain.ErrInvalidVATRate, code)
	}
	return VATRate{Kind: VATPercentage, Code: code, Percent: pct}, nil
}

// Display texto de la celda de tasa: "np" para no sujeto, "ZW" para exento,
// "N %" para porcentajes.
func (r VATRate) Display() string {
	switch r.Kind {
	case VATNotApplicable:
		return "np"
	case VATExempt:
		return "ZW"
	default:
		return r.Code + " %"
	}
}
