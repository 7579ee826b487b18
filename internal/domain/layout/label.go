package layout

// Separaciones fijas de los rótulos, en puntos.
const (
	// LabelGap aire vertical tras el valor de un rótulo.
	LabelGap = 6.0
	// inlineValueGap separación entre una etiqueta y su valor en línea.
	inlineValueGap = 5.0
)

// LabelOpts ajustes opcionales de WriteLabel. Los campos en cero toman los
// valores del diseño base.
type LabelOpts struct {
	CaptionSize float64 // tamaño de la leyenda; 0 → LabelFontSize
	ValueSize   float64 // tamaño del valor; 0 → BaseFontSize
	Width       float64 // ancho de ajuste; 0 → DefaultLabelWidth
	Gap         float64 // aire tras el valor; 0 → LabelGap
}

// WriteLabel escribe un rótulo bilingüe: la leyenda secundaria (inglés,
// pequeña) en (x, y) y debajo el valor principal en negrita. Devuelve la
// siguiente posición vertical: y + alto de la leyenda + alto del valor + el
// aire configurado. Todos los campos rotulados del documento (fechas, divisa,
// cuenta bancaria, encabezados) pasan por aquí para mantener el mismo ritmo
// vertical.
func WriteLabel(c Canvas, x, y float64, caption, value string, opts LabelOpts) float64 {
	captionSize := opts.CaptionSize
	if captionSize == 0 {
		captionSize = LabelFontSize
	}
	valueSize := opts.ValueSize
	if valueSize == 0 {
		valueSize = BaseFontSize
	}
	width := opts.Width
	if width == 0 {
		width = DefaultLabelWidth
	}
	gap := opts.Gap
	if gap == 0 {
		gap = LabelGap
	}

	c.SetFontSize(captionSize)
	c.DrawText(caption, x, y, width, AlignLeft)
	y += c.TextHeight(caption, width)

	c.SetFontSize(valueSize)
	c.SetFontStyle(FontBold)
	c.DrawText(value, x, y, width, AlignLeft)
	c.SetFontStyle(FontRegular)
	y += c.TextHeight(value, width) + gap

	return y
}

// WriteInlineLabel variante para campos de una sola línea: leyenda pequeña,
// luego la etiqueta en negrita y el valor regular a continuación en la misma
// línea, sin ajuste. Pensado para fechas ("Data wystawienia: 2024-01-31").
func WriteInlineLabel(c Canvas, x, y float64, caption, label, value string) float64 {
	c.SetFontSize(LabelFontSize)
	c.DrawTextInline(caption, x, y)
	y += c.LineHeight()

	c.SetFontSize(BaseFontSize)
	c.SetFontStyle(FontBold)
	c.DrawTextInline(label, x, y)
	labelWidth := c.TextWidth(label)
	c.SetFontStyle(FontRegular)
	c.DrawTextInline(value, x+labelWidth+inlineValueGap, y)

	return y + c.LineHeight() + LabelGap
}
