// Package layout contiene las primitivas de composición del documento: el
// puerto Canvas hacia el backend de dibujo, las celdas de una fila y los
// rótulos bilingües. El cursor vertical es siempre un valor explícito que
// entra y sale de cada función; ningún estado de posición vive fuera de las
// llamadas.
package layout

// Alignment alineación horizontal de un texto dentro de su ancho.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// FontStyle estilo tipográfico activo.
type FontStyle string

const (
	FontRegular FontStyle = "regular"
	FontBold    FontStyle = "bold"
)

// Geometría base del diseño de la factura (en puntos).
const (
	BaseFontSize  = 7.0
	LabelFontSize = BaseFontSize - 2
	TitleFontSize = BaseFontSize + 7

	// ColSeller y ColBuyer son las dos columnas de direccionamiento; la tabla
	// y el bloque de información adicional arrancan en ColSeller.
	ColSeller = 30.0
	ColBuyer  = 310.0

	// DefaultCellWidth ancho de una celda cuando no especifica el suyo.
	DefaultCellWidth = 60.0

	// DefaultLabelWidth ancho de ajuste de un rótulo (una columna de
	// direccionamiento).
	DefaultLabelWidth = ColBuyer - ColSeller
)

// Canvas capacidad de dibujo que el motor exige del backend PDF: fuente y
// tamaño, texto con ajuste de línea en una coordenada, medición de la altura
// resultante, líneas rectas y control de página. Una implementación concreta
// por librería (infrastructure/pdf) y un doble de test que registra llamadas.
//
// Los métodos de dibujo no retornan error: el backend acumula el primero que
// ocurra y lo expone en Err(). La disciplina de fuente es de pila: quien
// cambia estilo o tamaño lo restaura antes de devolver el control.
type Canvas interface {
	// NewPage inicia una página nueva con los márgenes configurados.
	NewPage()
	SetFontStyle(style FontStyle)
	SetFontSize(size float64)
	// DrawText dibuja texto en (x, y) ajustado al ancho dado. Los saltos de
	// línea embebidos se respetan.
	DrawText(text string, x, y, width float64, align Alignment)
	// DrawTextInline dibuja una sola línea sin ajuste, por ejemplo una fecha
	// a continuación de su etiqueta.
	DrawTextInline(text string, x, y float64)
	// TextHeight mide la altura del bloque ajustado al ancho con la fuente
	// activa. El texto vacío mide una línea.
	TextHeight(text string, width float64) float64
	// TextWidth mide el ancho de una línea con la fuente activa.
	TextWidth(text string) float64
	// LineHeight altura de una línea con el tamaño de fuente activo.
	LineHeight() float64
	DrawLine(x1, y1, x2, y2 float64)
	PageWidth() float64
	// BottomY límite inferior útil de la página (descontado el margen).
	BottomY() float64
	// Err primer error acumulado por el backend, si lo hay.
	Err() error
}
