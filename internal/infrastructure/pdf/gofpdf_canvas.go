// Package pdf implementa el puerto layout.Canvas sobre jung-kurt/gofpdf:
// página A4 vertical en puntos, fuente Helvetica y texto traducido a cp1250
// para que los diacríticos polacos salgan bien con las fuentes base.
package pdf

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/jhoicas/faktura-api/internal/application/render"
	"github.com/jhoicas/faktura-api/internal/domain/document"
	"github.com/jhoicas/faktura-api/internal/domain/layout"
)

const (
	fontFamily = "Helvetica"
	// lineSpacing factor de alto de línea sobre el tamaño de fuente.
	lineSpacing = 1.2
	// topMargin margen superior fijo; el motor posiciona en absoluto, así que
	// solo interviene en el estado inicial de la página.
	topMargin = 30.0
)

// Canvas adaptador concreto del backend de dibujo.
type Canvas struct {
	pdf       *gofpdf.Fpdf
	out       io.Writer
	translate func(string) string
	fontSize  float64
	bottom    float64
	closed    bool
}

// Factory construye Canvas concretos; implementa render.CanvasFactory.
type Factory struct{}

// NewFactory construye la fábrica.
func NewFactory() *Factory { return &Factory{} }

// New crea un Canvas sobre el sink de salida.
func (Factory) New(w io.Writer, opts document.Options) (render.Canvas, error) {
	return NewCanvas(w, opts)
}

// NewCanvas prepara el documento: márgenes de las opciones, metadata, trazo
// gris de los separadores y salto de página automático desactivado (el
// cursor lo gobierna el motor de layout, no el backend).
func NewCanvas(w io.Writer, opts document.Options) (*Canvas, error) {
	opts = opts.WithDefaults()
	m := opts.Margins

	f := gofpdf.New("P", "pt", "A4", "")
	f.SetMargins(m.Left, topMargin, m.Right)
	f.SetAutoPageBreak(false, m.Bottom)
	f.SetFont(fontFamily, "", layout.BaseFontSize)
	f.SetCellMargin(0)
	f.SetDrawColor(0xbb, 0xbb, 0xbb)
	f.SetLineWidth(0.5)
	applyMetadata(f, opts.Metadata)

	c := &Canvas{
		pdf:       f,
		out:       w,
		translate: f.UnicodeTranslatorFromDescriptor("cp1250"),
		fontSize:  layout.BaseFontSize,
		bottom:    m.Bottom,
	}
	if err := f.Error(); err != nil {
		return nil, fmt.Errorf("pdf: inicializar documento: %w", err)
	}
	return c, nil
}

func applyMetadata(f *gofpdf.Fpdf, meta map[string]string) {
	for key, value := range meta {
		switch strings.ToLower(key) {
		case "title":
			f.SetTitle(value, true)
		case "author":
			f.SetAuthor(value, true)
		case "subject":
			f.SetSubject(value, true)
		case "keywords":
			f.SetKeywords(value, true)
		case "creator":
			f.SetCreator(value, true)
		}
	}
}

// NewPage inicia la siguiente página del lote.
func (c *Canvas) NewPage() { c.pdf.AddPage() }

// SetFontStyle alterna entre regular y negrita conservando el tamaño.
func (c *Canvas) SetFontStyle(style layout.FontStyle) {
	if style == layout.FontBold {
		c.pdf.SetFontStyle("B")
		return
	}
	c.pdf.SetFontStyle("")
}

// SetFontSize cambia el tamaño activo.
func (c *Canvas) SetFontSize(size float64) {
	c.fontSize = size
	c.pdf.SetFontSize(size)
}

// LineHeight alto de una línea con el tamaño activo.
func (c *Canvas) LineHeight() float64 { return c.fontSize * lineSpacing }

// DrawText texto ajustado al ancho, anclado por su esquina superior
// izquierda en (x, y).
func (c *Canvas) DrawText(text string, x, y, width float64, align layout.Alignment) {
	c.pdf.SetXY(x, y)
	c.pdf.MultiCell(width, c.LineHeight(), c.translate(text), "", alignString(align), false)
}

// DrawTextInline una sola línea sin ajuste.
func (c *Canvas) DrawTextInline(text string, x, y float64) {
	t := c.translate(text)
	c.pdf.SetXY(x, y)
	c.pdf.CellFormat(c.pdf.GetStringWidth(t), c.LineHeight(), t, "", 0, "L", false, 0, "")
}

// TextHeight altura del bloque ajustado al ancho con la fuente activa. El
// texto vacío mide una línea, de modo que el layout nunca lo trate aparte.
func (c *Canvas) TextHeight(text string, width float64) float64 {
	if text == "" {
		return c.LineHeight()
	}
	var lines int
	for _, paragraph := range strings.Split(text, "\n") {
		if paragraph == "" {
			lines++
			continue
		}
		split := c.pdf.SplitLines([]byte(c.translate(paragraph)), width)
		if len(split) == 0 {
			lines++
			continue
		}
		lines += len(split)
	}
	return float64(lines) * c.LineHeight()
}

// TextWidth ancho de una línea con la fuente activa.
func (c *Canvas) TextWidth(text string) float64 {
	return c.pdf.GetStringWidth(c.translate(text))
}

// DrawLine línea recta con el trazo de separador configurado.
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64) {
	c.pdf.Line(x1, y1, x2, y2)
}

// PageWidth ancho total de la página.
func (c *Canvas) PageWidth() float64 {
	width, _ := c.pdf.GetPageSize()
	return width
}

// BottomY límite inferior útil de la página.
func (c *Canvas) BottomY() float64 {
	_, height := c.pdf.GetPageSize()
	return height - c.bottom
}

// Err primer error acumulado por gofpdf, si lo hay.
func (c *Canvas) Err() error { return c.pdf.Error() }

// Close vuelca el documento terminado al sink. Idempotente: un segundo Close
// no vuelve a escribir.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if err := c.pdf.Output(c.out); err != nil {
		return fmt.Errorf("pdf: escribir salida: %w", err)
	}
	return nil
}

func alignString(a layout.Alignment) string {
	switch a {
	case layout.AlignLeft:
		return "L"
	case layout.AlignRight:
		return "R"
	default:
		return "C"
	}
}
