// Package dto define los cuerpos JSON de la API y del CLI y su conversión a
// entidades. La factura puede llegar como un objeto suelto o como un arreglo;
// ambas formas se normalizan al mismo lote.
package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/faktura-api/internal/domain"
	"github.com/jhoicas/faktura-api/internal/domain/document"
	"github.com/jhoicas/faktura-api/internal/domain/entity"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RenderRequest body de POST /api/render. Invoice admite un objeto o un
// arreglo de facturas.
type RenderRequest struct {
	Invoice json.RawMessage      `json:"invoice"`
	Options RenderOptionsRequest `json:"options"`
}

// RenderOptionsRequest opciones del render tal como llegan en el body o en
// los flags del CLI.
type RenderOptionsRequest struct {
	Currency          string            `json:"currency,omitempty"`
	Footer            *FooterRequest    `json:"footer,omitempty"`
	Margins           *MarginsRequest   `json:"margins,omitempty"`
	StripBuyerCountry string            `json:"stripBuyerCountry,omitempty"`
	Metadata          map[string]string `json:"metadata,omitempty"`
}

// FooterRequest pie de página configurable.
type FooterRequest struct {
	Text  string `json:"text"`
	Align string `json:"align,omitempty"` // left, center, right
}

// MarginsRequest márgenes de página en puntos.
type MarginsRequest struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// ToOptions convierte las opciones del request al modelo del documento. Los
// campos vacíos quedan vacíos: los defaults los aplica el documento.
func (o RenderOptionsRequest) ToOptions() document.Options {
	opts := document.Options{
		Currency:          o.Currency,
		StripBuyerCountry: o.StripBuyerCountry,
		Metadata:          o.Metadata,
	}
	if o.Footer != nil {
		opts.Footer = &document.FooterConfig{
			Text:  o.Footer.Text,
			Align: document.ParseAlignment(o.Footer.Align),
		}
	}
	if o.Margins != nil {
		opts.Margins = &document.Margins{
			Left:   o.Margins.Left,
			Right:  o.Margins.Right,
			Bottom: o.Margins.Bottom,
		}
	}
	return opts
}

// InvoiceRequest factura tal como llega en JSON.
type InvoiceRequest struct {
	InvoiceNo     string        `json:"invoiceNo"`
	Type          string        `json:"type,omitempty"`
	IssueDate     string        `json:"issueDate"`
	DuplicateDate string        `json:"duplicateDate,omitempty"`
	PaidDate      string        `json:"paidDate,omitempty"`
	DueDate       string        `json:"dueDate,omitempty"`
	Seller        PartyRequest  `json:"seller"`
	Buyer         PartyRequest  `json:"buyer"`
	Items         []ItemRequest `json:"items"`
	InvoiceInfo   string        `json:"invoiceInfo,omitempty"`
	Notes         []string      `json:"notes,omitempty"`
	PaymentMethod string        `json:"paymentMethod,omitempty"`
}

// PartyRequest vendedor o comprador.
type PartyRequest struct {
	Company     string         `json:"company"`
	Address     AddressRequest `json:"address"`
	NIP         string         `json:"nip"`
	BankAccount string         `json:"bankAccount,omitempty"`
}

// AddressRequest dirección postal.
type AddressRequest struct {
	Street  string `json:"street"`
	Zipcode string `json:"zipcode"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// ItemRequest línea de la factura. Name admite un string o un arreglo de
// strings; los montos llegan como string o como número JSON y se conservan
// como texto sin reinterpretar.
type ItemRequest struct {
	Name      NameField   `json:"name"`
	Quantity  AmountField `json:"quantity"`
	Price     AmountField `json:"price"`
	Netto     AmountField `json:"netto"`
	VATRate   string      `json:"vatRate"`
	VATAmount AmountField `json:"vatAmount"`
	Brutto    AmountField `json:"brutto"`
}

// NameField concepto de la línea: string suelto o arreglo de líneas.
type NameField []string

// UnmarshalJSON acepta "texto" o ["línea 1", "línea 2"].
func (n *NameField) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var lines []string
		if err := json.Unmarshal(trimmed, &lines); err != nil {
			return err
		}
		*n = lines
		return nil
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return err
	}
	*n = NameField{s}
	return nil
}

// AmountField conserva el texto original del monto venga como número o como
// string JSON; el motor decide después si es un decimal válido.
type AmountField string

// UnmarshalJSON acepta "12.50" o 12.50.
func (a *AmountField) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*a = AmountField(s)
		return nil
	}
	if string(trimmed) == "null" {
		*a = ""
		return nil
	}
	*a = AmountField(trimmed)
	return nil
}

// ParseInvoices acepta un objeto suelto o un arreglo y lo normaliza a un
// slice de entidades: el caso singular y el lote de un elemento producen
// exactamente el mismo resultado.
func ParseInvoices(raw json.RawMessage) ([]*entity.Invoice, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: factura requerida", domain.ErrInvalidInput)
	}

	var requests []InvoiceRequest
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &requests); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	} else {
		var one InvoiceRequest
		if err := json.Unmarshal(trimmed, &one); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		requests = []InvoiceRequest{one}
	}

	out := make([]*entity.Invoice, 0, len(requests))
	for i, r := range requests {
		inv, err := r.ToEntity()
		if err != nil {
			return nil, fmt.Errorf("factura %d: %w", i+1, err)
		}
		out = append(out, inv)
	}
	return out, nil
}

// ToEntity valida número, tipo y fechas y construye la entidad.
func (r InvoiceRequest) ToEntity() (*entity.Invoice, error) {
	if r.InvoiceNo == "" {
		return nil, fmt.Errorf("%w: invoiceNo requerido", domain.ErrInvalidInput)
	}
	issue, err := parseDate(r.IssueDate)
	if err != nil {
		return nil, err
	}
	duplicate, err := parseOptionalDate(r.DuplicateDate)
	if err != nil {
		return nil, err
	}
	paid, err := parseOptionalDate(r.PaidDate)
	if err != nil {
		return nil, err
	}
	due, err := parseOptionalDate(r.DueDate)
	if err != nil {
		return nil, err
	}

	docType := entity.DocumentType(r.Type)
	if r.Type == "" {
		docType = entity.DocumentStandard
	}

	items := make([]entity.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entity.LineItem{
			Name:      it.Name,
			Quantity:  string(it.Quantity),
			Price:     string(it.Price),
			Net:       string(it.Netto),
			VATRate:   it.VATRate,
			VATAmount: string(it.VATAmount),
			Gross:     string(it.Brutto),
		})
	}

	return &entity.Invoice{
		Number:        r.InvoiceNo,
		Type:          docType,
		IssueDate:     issue,
		DuplicateDate: duplicate,
		PaidDate:      paid,
		DueDate:       due,
		Seller:        r.Seller.toEntity(),
		Buyer:         r.Buyer.toEntity(),
		Items:         items,
		InvoiceInfo:   r.InvoiceInfo,
		Notes:         r.Notes,
		PaymentMethod: r.PaymentMethod,
	}, nil
}

func (p PartyRequest) toEntity() entity.Party {
	return entity.Party{
		Company: p.Company,
		Address: entity.Address{
			Street:  p.Address.Street,
			ZipCode: p.Address.Zipcode,
			City:    p.Address.City,
			Country: p.Address.Country,
		},
		NIP:         p.NIP,
		BankAccount: p.BankAccount,
	}
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha %q (se espera YYYY-MM-DD)", domain.ErrInvalidInput, s)
	}
	return t, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
