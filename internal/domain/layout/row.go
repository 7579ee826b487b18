package layout

// Cell una pieza de texto posicionada, con ancho y alineación, dentro de una
// fila. El ancho cero toma DefaultCellWidth y la alineación vacía es
// centrada.
type Cell struct {
	Text  string
	Width float64
	Align Alignment
	Bold  bool
}

func (c Cell) width() float64 {
	if c.Width == 0 {
		return DefaultCellWidth
	}
	return c.Width
}

func (c Cell) align() Alignment {
	if c.Align == "" {
		return AlignCenter
	}
	return c.Align
}

// WriteRow coloca las celdas en offsets horizontales sucesivos a partir de x
// (offset += ancho de la celda) compartiendo la posición vertical y, y
// devuelve y más la altura de la celda más alta: las columnas comparten línea
// base y la fila mide lo que mida su celda más alta (típicamente la
// descripción cuando se parte en varias líneas). Una fila de una sola celda
// degenera en la colocación simple de un texto alineado.
func WriteRow(c Canvas, y, x float64, cells []Cell) float64 {
	pad := x
	var maxHeight float64

	for _, cell := range cells {
		w := cell.width()
		if cell.Bold {
			c.SetFontStyle(FontBold)
		}
		c.DrawText(cell.Text, pad, y, w, cell.align())
		if cell.Bold {
			c.SetFontStyle(FontRegular)
		}
		if h := c.TextHeight(cell.Text, w); h > maxHeight {
			maxHeight = h
		}
		pad += w
	}
	return y + maxHeight
}

// HorizontalLine dibuja una línea separadora de la tabla desde x a lo largo
// de width, a la altura y. Devuelve y sin avanzar: la línea no ocupa alto.
func HorizontalLine(c Canvas, y, x, width float64) float64 {
	c.DrawLine(x, y, x+width, y)
	return y
}
