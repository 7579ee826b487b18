package entity

import (
	"strings"
	"time"
)

// DocumentType tipo de documento facturable. Un tipo no reconocido se
// renderiza con el título del tipo estándar.
type DocumentType string

const (
	DocumentStandard  DocumentType = "standard"  // Faktura VAT
	DocumentVatless   DocumentType = "vatless"   // Faktura (sin VAT)
	DocumentProforma  DocumentType = "proforma"  // Faktura Proforma
	DocumentDuplicate DocumentType = "duplicate" // Duplikat Faktury
)

// Address dirección postal de una de las partes.
type Address struct {
	Street  string
	ZipCode string
	City    string
	Country string
}

// Party vendedor o comprador. BankAccount es opcional; el NIP del comprador
// puede llegar con prefijo de país que se quita al renderizar según las
// opciones. Los campos ausentes se imprimen como líneas en blanco, nunca
// son un error.
type Party struct {
	Company     string
	Address     Address
	NIP         string
	BankAccount string
}

// LineItem una línea de la factura. Los montos son strings decimales tal como
// los entrega el caller: el motor no recalcula aritmética de impuestos, solo
// interpreta, suma y formatea los valores ya presentes. Quantity se imprime
// tal cual llega, sin forzar decimales.
type LineItem struct {
	Name      []string // líneas del concepto; se unen con salto de línea
	Quantity  string
	Price     string // precio unitario neto
	Net       string
	VATRate   string // "N" (porcentaje), "-1" (no sujeto) o "ZW" (exento)
	VATAmount string
	Gross     string
}

// DisplayName concepto de la línea listo para la celda de descripción.
func (li LineItem) DisplayName() string {
	return strings.Join(li.Name, "\n")
}

// Invoice cabecera y líneas de una factura. Se construye desde la entrada
// externa antes del render y es inmutable durante el mismo.
type Invoice struct {
	Number        string
	Type          DocumentType
	IssueDate     time.Time
	DuplicateDate *time.Time // fecha de emisión del duplicado, si aplica
	PaidDate      *time.Time // fecha de recepción del pago, si aplica
	DueDate       *time.Time // fecha límite de pago, si aplica
	Seller        Party
	Buyer         Party
	Items         []LineItem
	InvoiceInfo   string   // línea libre de información adicional
	Notes         []string // notas, cada una su propio párrafo
	PaymentMethod string
}
