package document

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/faktura-api/internal/domain"
	"github.com/jhoicas/faktura-api/internal/domain/billing"
	"github.com/jhoicas/faktura-api/internal/domain/entity"
	"github.com/jhoicas/faktura-api/internal/domain/layout"
)

// Column cabecera bilingüe de una columna de la tabla.
type Column struct {
	Label   string // polaco
	LabelEN string
	Width   float64 // 0 → layout.DefaultCellWidth
	Align   layout.Alignment
}

func (c Column) width() float64 {
	if c.Width == 0 {
		return layout.DefaultCellWidth
	}
	return c.Width
}

// tableColumns esquema fijo de las ocho columnas: ordinal, descripción,
// cantidad, precio neto, valor neto, tasa VAT, cuota VAT y valor bruto.
func tableColumns() []Column {
	return []Column{
		{Label: "Lp.", LabelEN: "#", Width: 20, Align: layout.AlignLeft},
		{Label: "Nazwa pozycji", LabelEN: "Description", Width: 150, Align: layout.AlignLeft},
		{Label: "Ilość", LabelEN: "Quantity"},
		{Label: "Cena netto", LabelEN: "Net price", Align: layout.AlignRight},
		{Label: "Wartość netto", LabelEN: "Net value", Align: layout.AlignRight},
		{Label: "Stawka VAT", LabelEN: "VAT rate"},
		{Label: "Kwota VAT", LabelEN: "VAT Amount", Align: layout.AlignRight},
		{Label: "Wartość brutto", LabelEN: "Gross value", Align: layout.AlignRight},
	}
}

func tableWidth(cols []Column) float64 {
	var sum float64
	for _, c := range cols {
		sum += c.width()
	}
	return sum
}

// summaryLabelWidth ancho de la celda de texto de las filas de resumen y
// total: las primeras cuatro columnas combinadas.
func summaryLabelWidth(cols []Column) float64 {
	var sum float64
	for _, c := range cols[:4] {
		sum += c.width()
	}
	return sum
}

// writeTable dibuja el bloque de tabla completo: cabecera bilingüe, línea
// separadora, una fila por línea de factura (cada una con su separador), las
// filas de resumen por tasa VAT (cada una con su separador), el separador de
// cierre y la fila de total general. Devuelve el cursor tras el total.
func writeTable(c layout.Canvas, y float64, inv *entity.Invoice) (float64, error) {
	cols := tableColumns()
	width := tableWidth(cols)

	c.SetFontStyle(layout.FontRegular)
	c.SetFontSize(layout.LabelFontSize)
	y = writeTableHeader(c, y, cols)
	y = layout.HorizontalLine(c, y, layout.ColSeller, width)

	for i, item := range inv.Items {
		var err error
		y, err = writeItemRow(c, y, cols, i, item)
		if err != nil {
			return 0, err
		}
		y = layout.HorizontalLine(c, y, layout.ColSeller, width)
	}

	summary, err := billing.SummarizeVAT(inv.Items)
	if err != nil {
		return 0, err
	}
	for _, row := range summary {
		y = writeVATSummaryRow(c, y, cols, row)
		y = layout.HorizontalLine(c, y, layout.ColSeller, width)
	}
	y = layout.HorizontalLine(c, y, layout.ColSeller, width)

	return writeTotalRow(c, y, cols, inv.Items)
}

// writeTableHeader fila de rótulos en inglés (pequeña) y debajo en polaco
// (negrita, tamaño base).
func writeTableHeader(c layout.Canvas, y float64, cols []Column) float64 {
	english := make([]layout.Cell, len(cols))
	polish := make([]layout.Cell, len(cols))
	for i, col := range cols {
		english[i] = layout.Cell{Text: col.LabelEN, Width: col.Width, Align: col.Align}
		polish[i] = layout.Cell{Text: col.Label, Width: col.Width, Align: col.Align}
	}

	y = layout.WriteRow(c, y, layout.ColSeller, english)

	c.SetFontSize(layout.BaseFontSize)
	c.SetFontStyle(layout.FontBold)
	y = layout.WriteRow(c, y, layout.ColSeller, polish)
	c.SetFontStyle(layout.FontRegular)
	return y
}

// writeItemRow una línea de la factura; el ordinal se numera desde 1 según la
// posición. Los montos van a dos decimales, la cantidad tal cual llega.
func writeItemRow(c layout.Canvas, y float64, cols []Column, index int, item entity.LineItem) (float64, error) {
	rate, err := entity.ParseVATRate(item.VATRate)
	if err != nil {
		return 0, fmt.Errorf("línea %d: %w", index+1, err)
	}
	price, err := formatAmount(item.Price)
	if err != nil {
		return 0, fmt.Errorf("línea %d: %w", index+1, err)
	}
	net, err := formatAmount(item.Net)
	if err != nil {
		return 0, fmt.Errorf("línea %d: %w", index+1, err)
	}
	vat, err := formatAmount(item.VATAmount)
	if err != nil {
		return 0, fmt.Errorf("línea %d: %w", index+1, err)
	}
	gross, err := formatAmount(item.Gross)
	if err != nil {
		return 0, fmt.Errorf("línea %d: %w", index+1, err)
	}

	values := []string{
		strconv.Itoa(index + 1),
		item.DisplayName(),
		item.Quantity,
		price,
		net,
		rate.Display(),
		vat,
		gross,
	}
	cells := make([]layout.Cell, len(cols))
	for i, col := range cols {
		cells[i] = layout.Cell{Text: values[i], Width: col.Width, Align: col.Align}
	}
	// La celda de tasa va centrada aunque la columna no declare alineación.
	cells[5].Align = layout.AlignCenter

	return layout.WriteRow(c, y, layout.ColSeller, cells), nil
}

// writeVATSummaryRow fila de resumen de una tasa: leyenda inglesa pequeña y
// debajo la fila con la leyenda polaca abarcando las cuatro primeras
// columnas, seguida de neto, tasa, cuota y bruto.
func writeVATSummaryRow(c layout.Canvas, y float64, cols []Column, row billing.VATSummaryRow) float64 {
	english, polish := vatSummaryLabels(row.Rate)
	span := summaryLabelWidth(cols)
	w := cols[4].width()

	c.SetFontSize(layout.LabelFontSize)
	y = layout.WriteRow(c, y, layout.ColSeller, []layout.Cell{
		{Text: english, Width: span, Align: layout.AlignLeft},
	})

	c.SetFontSize(layout.BaseFontSize)
	return layout.WriteRow(c, y, layout.ColSeller, []layout.Cell{
		{Text: polish, Width: span, Align: layout.AlignLeft, Bold: true},
		{Text: row.Net.StringFixed(2), Width: w, Align: layout.AlignRight},
		{Text: row.Rate.Display(), Width: w, Align: layout.AlignCenter},
		{Text: row.VATAmount.StringFixed(2), Width: w, Align: layout.AlignRight},
		{Text: row.Gross.StringFixed(2), Width: w, Align: layout.AlignRight},
	})
}

// vatSummaryLabels leyendas bilingües del resumen según el tratamiento VAT.
func vatSummaryLabels(rate entity.VATRate) (english, polish string) {
	switch rate.Kind {
	case entity.VATNotApplicable:
		return "Total charges with no VAT", "Wartość usług nie podlegających VAT"
	case entity.VATExempt:
		return "Total charges exempt from VAT", "Wartość usług zwolnionych z VAT"
	default:
		return fmt.Sprintf("Total charges with %s%% VAT", rate.Code),
			fmt.Sprintf("Wartość usług podlegających VAT %s%%", rate.Code)
	}
}

// writeTotalRow fila de total general: "Razem" y las sumas de todas las
// líneas sin importar la tasa. La celda de tasa queda en blanco.
func writeTotalRow(c layout.Canvas, y float64, cols []Column, items []entity.LineItem) (float64, error) {
	net, vat, gross, err := billing.SumTotals(items)
	if err != nil {
		return 0, err
	}
	span := summaryLabelWidth(cols)
	w := cols[4].width()

	c.SetFontSize(layout.LabelFontSize)
	y = layout.WriteRow(c, y, layout.ColSeller, []layout.Cell{
		{Text: "Total", Align: layout.AlignLeft},
	})

	c.SetFontSize(layout.BaseFontSize)
	return layout.WriteRow(c, y, layout.ColSeller, []layout.Cell{
		{Text: "Razem", Width: span, Align: layout.AlignLeft, Bold: true},
		{Text: net.StringFixed(2), Width: w, Align: layout.AlignRight},
		{Text: " ", Width: w, Align: layout.AlignRight},
		{Text: vat.StringFixed(2), Width: w, Align: layout.AlignRight},
		{Text: gross.StringFixed(2), Width: w, Align: layout.AlignRight},
	}), nil
}

// formatAmount interpreta un monto del caller y lo fija a dos decimales.
func formatAmount(s string) (string, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", domain.ErrMalformedAmount, s)
	}
	return d.StringFixed(2), nil
}
