package http

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/faktura-api/internal/application/dto"
	"github.com/jhoicas/faktura-api/internal/application/render"
	"github.com/jhoicas/faktura-api/internal/domain"
	"github.com/jhoicas/faktura-api/internal/domain/document"
)

// RenderHandler maneja las peticiones HTTP de renderizado de facturas.
type RenderHandler struct {
	uc       *render.UseCase
	defaults document.Options
}

// NewRenderHandler construye el handler con las opciones por defecto del
// servidor, aplicadas cuando la petición no trae las suyas.
func NewRenderHandler(uc *render.UseCase, defaults document.Options) *RenderHandler {
	return &RenderHandler{uc: uc, defaults: defaults}
}

// Render genera el PDF del lote de facturas del cuerpo.
// POST /api/render
func (h *RenderHandler) Render(c *fiber.Ctx) error {
	var in dto.RenderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	invoices, err := dto.ParseInvoices(in.Invoice)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	opts := h.mergeOptions(in.Options.ToOptions())

	var buf bytes.Buffer
	if err := h.uc.Render(c.Context(), invoices, opts, &buf); err != nil {
		if errors.Is(err, domain.ErrInvalidVATRate) ||
			errors.Is(err, domain.ErrMalformedAmount) ||
			errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "faktura.pdf"))
	return c.Send(buf.Bytes())
}

// mergeOptions completa la petición con los defaults del servidor.
func (h *RenderHandler) mergeOptions(opts document.Options) document.Options {
	if opts.Currency == "" {
		opts.Currency = h.defaults.Currency
	}
	if opts.Footer == nil {
		opts.Footer = h.defaults.Footer
	}
	if opts.StripBuyerCountry == "" {
		opts.StripBuyerCountry = h.defaults.StripBuyerCountry
	}
	return opts
}
