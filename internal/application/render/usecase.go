// Package render orquesta el render de lotes de facturas: una página por
// factura, en orden, sobre un único stream de salida.
package render

import (
	"context"
	"fmt"
	"io"

	"github.com/jhoicas/faktura-api/internal/domain"
	"github.com/jhoicas/faktura-api/internal/domain/document"
	"github.com/jhoicas/faktura-api/internal/domain/entity"
	"github.com/jhoicas/faktura-api/pkg/logger"
)

// UseCase caso de uso de render. Secuencial por diseño: cada bloque depende
// del cursor final de su predecesor y el sink es de solo anexado, así que no
// hay nada que paralelizar dentro de un lote.
type UseCase struct {
	canvases CanvasFactory
	log      *logger.Logger
}

// NewUseCase construye el caso de uso inyectando la fábrica de backends.
func NewUseCase(canvases CanvasFactory, log *logger.Logger) *UseCase {
	return &UseCase{canvases: canvases, log: log}
}

// Render dibuja cada factura del lote en su propia página y finaliza el
// stream. El primer fallo aborta el lote completo: no se intenta saltar la
// factura fallida y continuar.
//
// Retorna:
//   - nil                     si el lote completo se volcó al sink.
//   - domain.ErrInvalidInput  si el lote llega vacío.
//   - el primer error de formato/datos/backend, envuelto con la factura y la
//     página en que ocurrió.
func (uc *UseCase) Render(_ context.Context, invoices []*entity.Invoice, opts document.Options, w io.Writer) error {
	if len(invoices) == 0 {
		return fmt.Errorf("%w: lote sin facturas", domain.ErrInvalidInput)
	}

	canvas, err := uc.canvases.New(w, opts)
	if err != nil {
		return fmt.Errorf("render: crear backend: %w", err)
	}

	for i, inv := range invoices {
		if err := document.RenderInvoice(canvas, inv, opts); err != nil {
			return fmt.Errorf("render: factura %q (página %d): %w", inv.Number, i+1, err)
		}
	}

	if err := canvas.Close(); err != nil {
		return fmt.Errorf("render: finalizar stream: %w", err)
	}

	uc.log.Debug().
		Int("facturas", len(invoices)).
		Msg("lote renderizado")
	return nil
}

// RenderOne normaliza una factura suelta a un lote de un elemento; la salida
// es idéntica a la de Render con ese único elemento.
func (uc *UseCase) RenderOne(ctx context.Context, inv *entity.Invoice, opts document.Options, w io.Writer) error {
	return uc.Render(ctx, []*entity.Invoice{inv}, opts, w)
}
