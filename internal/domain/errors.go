package domain

import "errors"

// Errores de dominio (sin dependencias externas). El motor distingue dos
// fallos de render: un código de tasa VAT que no se reconoce (formato) y un
// importe que no se puede interpretar como decimal (datos). Ambos abortan la
// factura en curso y, con ella, el lote completo.
var (
	ErrInvalidVATRate  = errors.New("código de tasa VAT no reconocido")
	ErrMalformedAmount = errors.New("importe numérico inválido")
	ErrInvalidInput    = errors.New("entrada inválida")
)
