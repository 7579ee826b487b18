// Package billing contiene la agregación de montos de la factura: el resumen
// por tasa VAT y el total general. Trabaja sobre decimales (shopspring) para
// que la acumulación no pierda precisión; el formateo a dos decimales ocurre
// una sola vez, en el render.
package billing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/faktura-api/internal/domain"
	"github.com/jhoicas/faktura-api/internal/domain/entity"
)

// VATSummaryRow acumulado de una tasa: neto, cuota VAT y bruto. Se construye
// transitoriamente por render y se descarta después.
type VATSummaryRow struct {
	Rate      entity.VATRate
	Net       decimal.Decimal
	VATAmount decimal.Decimal
	Gross     decimal.Decimal
}

// SummarizeVAT agrupa las líneas por el código crudo de tasa (igualdad exacta
// del string) y devuelve una fila por código distinto, en orden de primera
// aparición. Un importe no interpretable produce ErrMalformedAmount y un
// código de tasa no reconocido ErrInvalidVATRate, ambos con el número de
// línea.
func SummarizeVAT(items []entity.LineItem) ([]VATSummaryRow, error) {
	var rows []VATSummaryRow
	index := make(map[string]int, len(items))

	for i, item := range items {
		rate, err := entity.ParseVATRate(item.VATRate)
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", i+1, err)
		}
		net, vat, gross, err := parseAmounts(item)
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", i+1, err)
		}

		pos, seen := index[item.VATRate]
		if !seen {
			index[item.VATRate] = len(rows)
			rows = append(rows, VATSummaryRow{Rate: rate, Net: net, VATAmount: vat, Gross: gross})
			continue
		}
		rows[pos].Net = rows[pos].Net.Add(net)
		rows[pos].VATAmount = rows[pos].VATAmount.Add(vat)
		rows[pos].Gross = rows[pos].Gross.Add(gross)
	}
	return rows, nil
}

// SumTotals suma neto, cuota VAT y bruto de todas las líneas, sin considerar
// la agrupación por tasa. Alimenta la fila "Razem" de la tabla.
func SumTotals(items []entity.LineItem) (net, vat, gross decimal.Decimal, err error) {
	for i, item := range items {
		n, v, g, perr := parseAmounts(item)
		if perr != nil {
			return decimal.Zero, decimal.Zero, decimal.Zero, fmt.Errorf("línea %d: %w", i+1, perr)
		}
		net = net.Add(n)
		vat = vat.Add(v)
		gross = gross.Add(g)
	}
	return net, vat, gross, nil
}

func parseAmounts(item entity.LineItem) (net, vat, gross decimal.Decimal, err error) {
	if net, err = parseAmount(item.Net); err != nil {
		return
	}
	if vat, err = parseAmount(item.VATAmount); err != nil {
		return
	}
	gross, err = parseAmount(item.Gross)
	return
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrMalformedAmount, s)
	}
	return d, nil
}
