// Package document compone una factura completa sobre un layout.Canvas: el
// encabezado con el título del documento y sus fechas, las dos partes, la
// tabla de líneas con sus resúmenes, el bloque de información adicional y el
// pie. Cada bloque recibe el cursor vertical, dibuja y devuelve el cursor
// avanzado; el ensamblador de página los encadena con un aire fijo.
package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/faktura-api/internal/domain/entity"
	"github.com/jhoicas/faktura-api/internal/domain/layout"
)

const (
	// pageTop cursor inicial de cada página.
	pageTop = 50.0
	// blockGap aire vertical entre bloques del documento.
	blockGap = 50.0
	// headerDateOffset distancia del inicio del encabezado a su bloque de
	// fechas, dejando aire bajo el título grande.
	headerDateOffset = 80.0
	// partyLineGap aire entre los rótulos de las partes y sus cuatro líneas.
	partyLineGap = 2.0
	// partiesBlockHeight alto fijo reservado a las cuatro líneas de cada parte.
	partiesBlockHeight = 50.0
	// noteGap aire bajo cada párrafo de notas.
	noteGap = 4.0
)

// titles títulos bilingües por tipo de documento (inglés, polaco). Un tipo no
// reconocido cae en el estándar.
var titles = map[entity.DocumentType][2]string{
	entity.DocumentStandard:  {"VAT Invoice", "Faktura VAT"},
	entity.DocumentVatless:   {"Invoice", "Faktura"},
	entity.DocumentProforma:  {"Proforma Invoice", "Faktura Proforma"},
	entity.DocumentDuplicate: {"Duplicate Invoice", "Duplikat Faktury"},
}

func titleFor(t entity.DocumentType) (english, polish string) {
	pair, ok := titles[t]
	if !ok {
		pair = titles[entity.DocumentStandard]
	}
	return pair[0], pair[1]
}

// RenderInvoice dibuja una factura en una página nueva. El cursor vertical
// nunca retrocede dentro de la página; solo NewPage lo reinicia. El primer
// error (tasa no reconocida, importe inválido) aborta las secciones restantes
// de la página y se propaga al caller.
func RenderInvoice(c layout.Canvas, inv *entity.Invoice, opts Options) error {
	opts = opts.WithDefaults()

	c.NewPage()
	y := pageTop
	y = writeHeader(c, y, inv)
	y += blockGap
	y = writeParties(c, y, inv, opts)
	y += blockGap

	y, err := writeTable(c, y, inv)
	if err != nil {
		return err
	}
	y += blockGap

	writeAdditionalInfo(c, y, inv, opts)

	if opts.Footer != nil {
		writeFooter(c, opts.Footer)
	}
	return c.Err()
}

// writeHeader título bilingüe del documento con el número de factura y, a
// continuación, la fecha de emisión más las fechas opcionales presentes en la
// factura (duplicado, pago recibido, vencimiento).
func writeHeader(c layout.Canvas, y float64, inv *entity.Invoice) float64 {
	english, polish := titleFor(inv.Type)

	c.SetFontStyle(layout.FontRegular)
	c.SetFontSize(layout.BaseFontSize)
	c.DrawTextInline(english, layout.ColBuyer, y)

	c.SetFontSize(layout.TitleFontSize)
	c.SetFontStyle(layout.FontBold)
	c.DrawText(polish+"\n"+inv.Number, layout.ColBuyer, y+c.LineHeight(), layout.DefaultLabelWidth, layout.AlignLeft)
	c.SetFontStyle(layout.FontRegular)

	y += headerDateOffset
	y = layout.WriteInlineLabel(c, layout.ColBuyer, y, "Issue date", "Data wystawienia:", formatDate(inv.IssueDate))
	if inv.DuplicateDate != nil {
		y = layout.WriteInlineLabel(c, layout.ColBuyer, y, "Duplicate issue date", "Data wystawienia duplikatu:", formatDate(*inv.DuplicateDate))
	}
	if inv.PaidDate != nil {
		y = layout.WriteInlineLabel(c, layout.ColBuyer, y, "Payment received", "Data otrzymania zapłaty:", formatDate(*inv.PaidDate))
	}
	if inv.DueDate != nil {
		y = layout.WriteInlineLabel(c, layout.ColBuyer, y, "Due date", "Termin płatności:", formatDate(*inv.DueDate))
	}
	return y
}

// writeParties bloque de las dos partes, lado a lado: vendedor en ColSeller y
// comprador en ColBuyer, cada uno con su rótulo bilingüe y cuatro líneas
// fijas (empresa, calle, código postal + ciudad + país, NIP). Los campos
// ausentes quedan como líneas en blanco. Al NIP del comprador se le quita el
// prefijo de país configurado si el NIP empieza por él.
func writeParties(c layout.Canvas, y float64, inv *entity.Invoice, opts Options) float64 {
	c.SetFontStyle(layout.FontRegular)
	c.SetFontSize(layout.LabelFontSize)
	c.DrawTextInline("Seller", layout.ColSeller, y)
	c.DrawTextInline("Bill to", layout.ColBuyer, y)
	y += layout.LabelFontSize

	c.SetFontSize(layout.BaseFontSize)
	c.SetFontStyle(layout.FontBold)
	c.DrawTextInline("Sprzedawca:", layout.ColSeller, y)
	c.DrawTextInline("Nabywca:", layout.ColBuyer, y)
	c.SetFontStyle(layout.FontRegular)
	y += layout.BaseFontSize + partyLineGap

	seller := partyLines(inv.Seller, inv.Seller.NIP)
	buyer := partyLines(inv.Buyer, stripCountryPrefix(inv.Buyer.NIP, opts.StripBuyerCountry))
	c.DrawText(seller, layout.ColSeller, y, layout.DefaultLabelWidth, layout.AlignLeft)
	c.DrawText(buyer, layout.ColBuyer, y, layout.DefaultLabelWidth, layout.AlignLeft)

	return y + partiesBlockHeight
}

func partyLines(p entity.Party, nip string) string {
	return strings.Join([]string{
		p.Company,
		"ul. " + p.Address.Street,
		fmt.Sprintf("%s %s, %s", p.Address.ZipCode, p.Address.City, p.Address.Country),
		"NIP: " + nip,
	}, "\n")
}

// stripCountryPrefix quita el prefijo si el NIP empieza por él; si no, lo
// deja sin cambios.
func stripCountryPrefix(nip, prefix string) string {
	return strings.TrimPrefix(nip, prefix)
}

// writeAdditionalInfo divisa (siempre), cuenta bancaria (solo si el vendedor
// tiene, reagrupada en bloques de cuatro), forma de pago (solo si está) y el
// bloque de notas: la línea de información seguida de cada nota como su
// propio párrafo ajustado, avanzando por la altura medida de cada uno.
func writeAdditionalInfo(c layout.Canvas, y float64, inv *entity.Invoice, opts Options) float64 {
	y = layout.WriteLabel(c, layout.ColSeller, y, "Currency", "Waluta: "+opts.Currency, layout.LabelOpts{})

	if inv.Seller.BankAccount != "" {
		y = layout.WriteLabel(c, layout.ColSeller, y, "Bank account",
			"Numer konta: "+groupAccountDigits(inv.Seller.BankAccount), layout.LabelOpts{})
	}
	if inv.PaymentMethod != "" {
		y = layout.WriteLabel(c, layout.ColSeller, y, "Payment method",
			"Sposób płatności: "+inv.PaymentMethod, layout.LabelOpts{})
	}

	notes := noteLines(inv)
	if len(notes) == 0 {
		return y
	}

	width := c.PageWidth() - 2*layout.ColSeller
	y = layout.WriteLabel(c, layout.ColSeller, y, "Additional information", "Dodatkowe informacje:",
		layout.LabelOpts{Gap: noteGap})
	for _, note := range notes {
		c.DrawText(note, layout.ColSeller, y, width, layout.AlignLeft)
		y += c.TextHeight(note, width) + noteGap
	}
	return y
}

// noteLines concatena la línea libre de información con las notas, en ese
// orden.
func noteLines(inv *entity.Invoice) []string {
	var out []string
	if inv.InvoiceInfo != "" {
		out = append(out, inv.InvoiceInfo)
	}
	return append(out, inv.Notes...)
}

// groupAccountDigits reagrupa los caracteres de la cuenta en bloques de
// cuatro separados por espacio, ignorando los espacios que traiga.
func groupAccountDigits(account string) string {
	compact := strings.ReplaceAll(account, " ", "")
	runes := []rune(compact)

	var b strings.Builder
	for i, r := range runes {
		if i > 0 && i%4 == 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// writeFooter texto fijo en el margen inferior, a lo ancho de la página, con
// la alineación configurada.
func writeFooter(c layout.Canvas, footer *FooterConfig) {
	c.SetFontStyle(layout.FontRegular)
	c.SetFontSize(layout.BaseFontSize)

	width := c.PageWidth()
	height := c.TextHeight(footer.Text, width)
	align := footer.Align
	if align == "" {
		align = layout.AlignCenter
	}
	c.DrawText(footer.Text, 0, c.BottomY()-height, width, align)
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
