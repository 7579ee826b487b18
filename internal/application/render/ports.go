package render

import (
	"io"

	"github.com/jhoicas/faktura-api/internal/domain/document"
	"github.com/jhoicas/faktura-api/internal/domain/layout"
)

// Canvas lo que el caso de uso necesita del backend además del dibujo: poder
// cerrar el documento volcándolo al sink. El sink es un stream de solo
// anexado, así que un lote fallido no se cierra: no hay recuperación parcial
// de página.
type Canvas interface {
	layout.Canvas
	Close() error
}

// CanvasFactory construye un backend de dibujo sobre el sink de salida con
// las opciones del lote (márgenes, metadata). Una implementación por librería
// PDF en infrastructure.
type CanvasFactory interface {
	New(w io.Writer, opts document.Options) (Canvas, error)
}
