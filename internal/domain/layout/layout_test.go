package layout_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/faktura-api/internal/domain/layout"
)

// fakeCanvas doble de test con un modelo de medición determinista: cada
// carácter mide la mitad del tamaño de fuente y una línea mide tamaño × 1.2,
// de modo que las posiciones devueltas se pueden calcular a mano.
type fakeCanvas struct {
	fontSize float64
	style    layout.FontStyle
	ops      []string
	err      error
}

func newFakeCanvas() *fakeCanvas {
	return &fakeCanvas{fontSize: layout.BaseFontSize, style: layout.FontRegular}
}

func (f *fakeCanvas) record(format string, args ...any) {
	f.ops = append(f.ops, fmt.Sprintf(format, args...))
}

func (f *fakeCanvas) NewPage() { f.record("page") }

func (f *fakeCanvas) SetFontStyle(style layout.FontStyle) {
	f.style = style
	f.record("style=%s", style)
}

func (f *fakeCanvas) SetFontSize(size float64) {
	f.fontSize = size
	f.record("size=%.0f", size)
}

func (f *fakeCanvas) DrawText(text string, x, y, width float64, align layout.Alignment) {
	f.record("text(%q x=%.0f y=%.1f w=%.0f %s %s)", text, x, y, width, align, f.style)
}

func (f *fakeCanvas) DrawTextInline(text string, x, y float64) {
	f.record("inline(%q x=%.1f y=%.1f %s)", text, x, y, f.style)
}

func (f *fakeCanvas) TextHeight(text string, width float64) float64 {
	charsPerLine := int(width / (f.fontSize * 0.5))
	if charsPerLine < 1 {
		charsPerLine = 1
	}
	lines := 0
	for _, segment := range strings.Split(text, "\n") {
		n := len([]rune(segment))
		if n == 0 {
			lines++
			continue
		}
		lines += (n + charsPerLine - 1) / charsPerLine
	}
	if lines == 0 {
		lines = 1
	}
	return float64(lines) * f.LineHeight()
}

func (f *fakeCanvas) TextWidth(text string) float64 {
	return float64(len([]rune(text))) * f.fontSize * 0.5
}

func (f *fakeCanvas) LineHeight() float64 { return f.fontSize * 1.2 }

func (f *fakeCanvas) DrawLine(x1, y1, x2, y2 float64) {
	f.record("line(%.0f,%.1f -> %.0f,%.1f)", x1, y1, x2, y2)
}

func (f *fakeCanvas) PageWidth() float64 { return 595 }
func (f *fakeCanvas) BottomY() float64   { return 842 - 44 }
func (f *fakeCanvas) Err() error         { return f.err }

func opsContaining(ops []string, substr string) []string {
	var out []string
	for _, op := range ops {
		if strings.Contains(op, substr) {
			out = append(out, op)
		}
	}
	return out
}

// ── WriteRow ──────────────────────────────────────────────────────────────────

func TestWriteRow_OffsetsSucesivos(t *testing.T) {
	c := newFakeCanvas()

	cells := []layout.Cell{
		{Text: "a", Width: 20},
		{Text: "b", Width: 150},
		{Text: "c"}, // ancho por defecto 60
	}
	layout.WriteRow(c, 100, 30, cells)

	require.Len(t, opsContaining(c.ops, "text("), 3)
	assert.Contains(t, c.ops[0], "x=30", "la primera celda arranca en x")
	assert.Contains(t, c.ops[1], "x=50", "offset acumulado 30+20")
	assert.Contains(t, c.ops[2], "x=200", "offset acumulado 30+20+150")
	assert.Contains(t, c.ops[2], "w=60", "sin ancho propio se usa el por defecto")
}

func TestWriteRow_AvanzaPorCeldaMasAlta(t *testing.T) {
	c := newFakeCanvas()

	// Con fuente 7 y ancho 150 caben 42 caracteres por línea; 50 caracteres
	// ocupan dos líneas (2 × 8.4 = 16.8).
	long := strings.Repeat("x", 50)
	next := layout.WriteRow(c, 100, 30, []layout.Cell{
		{Text: "1", Width: 20},
		{Text: long, Width: 150},
	})

	assert.InDelta(t, 100+16.8, next, 0.001, "la fila mide lo que mide su celda más alta")
}

func TestWriteRow_NegritaSeRestaura(t *testing.T) {
	c := newFakeCanvas()

	layout.WriteRow(c, 0, 30, []layout.Cell{
		{Text: "Razem", Width: 230, Bold: true},
		{Text: "150.00"},
	})

	assert.Equal(t, layout.FontRegular, c.style, "el estilo vuelve a regular tras la celda en negrita")
	bolds := opsContaining(opsContaining(c.ops, "text("), "bold")
	require.Len(t, bolds, 1, "solo la celda marcada se dibuja en negrita")
	assert.Contains(t, bolds[0], "Razem")
}

func TestWriteRow_CeldaUnica(t *testing.T) {
	c := newFakeCanvas()

	next := layout.WriteRow(c, 50, 30, []layout.Cell{
		{Text: "nota", Width: 280, Align: layout.AlignLeft},
	})

	assert.InDelta(t, 50+8.4, next, 0.001)
	assert.Contains(t, c.ops[0], "left")
}

func TestWriteRow_AlineacionPorDefectoCentrada(t *testing.T) {
	c := newFakeCanvas()

	layout.WriteRow(c, 0, 30, []layout.Cell{{Text: "23 %"}})

	assert.Contains(t, c.ops[0], "center")
}

// ── HorizontalLine ────────────────────────────────────────────────────────────

func TestHorizontalLine_NoAvanza(t *testing.T) {
	c := newFakeCanvas()

	next := layout.HorizontalLine(c, 120, 30, 530)

	assert.Equal(t, 120.0, next, "la línea separadora no ocupa alto")
	require.Len(t, c.ops, 1)
	assert.Equal(t, "line(30,120.0 -> 560,120.0)", c.ops[0])
}

// ── WriteLabel / WriteInlineLabel ─────────────────────────────────────────────

func TestWriteLabel_AvanceVertical(t *testing.T) {
	c := newFakeCanvas()

	// Leyenda a tamaño 5 (línea 6.0) y valor a tamaño 7 (línea 8.4), más el
	// aire por defecto de 6.
	next := layout.WriteLabel(c, 30, 100, "Currency", "Waluta: PLN", layout.LabelOpts{})

	assert.InDelta(t, 100+6.0+8.4+6.0, next, 0.001)
	assert.Equal(t, layout.FontRegular, c.style, "la negrita del valor se restaura")

	texts := opsContaining(c.ops, "text(")
	require.Len(t, texts, 2)
	assert.Contains(t, texts[0], "Currency")
	assert.Contains(t, texts[1], "Waluta: PLN")
	assert.Contains(t, texts[1], "bold", "el valor va en negrita")
}

func TestWriteLabel_OpcionesPropias(t *testing.T) {
	c := newFakeCanvas()

	next := layout.WriteLabel(c, 310, 50, "Invoice", "Faktura VAT", layout.LabelOpts{
		ValueSize: layout.TitleFontSize,
		Width:     200,
		Gap:       1,
	})

	// Leyenda 5 → 6.0; valor 14 → 16.8; aire 1.
	assert.InDelta(t, 50+6.0+16.8+1.0, next, 0.001)
}

func TestWriteInlineLabel_EtiquetaYValorEnLinea(t *testing.T) {
	c := newFakeCanvas()

	next := layout.WriteInlineLabel(c, 310, 100, "Issue date", "Data wystawienia:", "2024-01-31")

	inlines := opsContaining(c.ops, "inline(")
	require.Len(t, inlines, 3)
	assert.Contains(t, inlines[0], "Issue date")
	assert.Contains(t, inlines[1], "Data wystawienia:")
	assert.Contains(t, inlines[1], "bold")
	// La etiqueta mide 17 caracteres × 3.5 = 59.5; el valor arranca 5 puntos
	// después: 310 + 59.5 + 5.
	assert.Contains(t, inlines[2], "x=374.5")
	assert.Contains(t, inlines[2], "regular")

	// Avance: línea de leyenda (6.0) + línea del valor (8.4) + aire 6.
	assert.InDelta(t, 100+6.0+8.4+6.0, next, 0.001)
}
