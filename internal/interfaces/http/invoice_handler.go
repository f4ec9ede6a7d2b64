package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/invoices-dashboard/internal/application/billing"
	"github.com/jhoicas/invoices-dashboard/internal/application/dto"
	"github.com/jhoicas/invoices-dashboard/internal/domain"
	"github.com/rs/zerolog/log"
)

// InvoiceHandler maneja el listado y las acciones de formulario de facturas (protegido).
type InvoiceHandler struct {
	actions *billing.InvoiceActions
	queries *billing.InvoiceQueryUseCase
	pdf     *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(actions *billing.InvoiceActions, queries *billing.InvoiceQueryUseCase, pdf *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{actions: actions, queries: queries, pdf: pdf}
}

// actionResponse cuerpo JSON de una acción que no navega o que falló.
type actionResponse struct {
	Outcome string              `json:"outcome"`
	Errors  billing.FieldErrors `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}

// List devuelve una página del listado.
// GET /dashboard/invoices?query=&page=
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var in dto.PageRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.queries.ListInvoices(c.Context(), in)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// GetByID devuelve la factura para precargar el formulario de edición.
// GET /dashboard/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.queries.GetInvoice(c.Context(), c.Params("id"))
	if err != nil {
		return queryError(c, err, "factura no encontrada")
	}
	return c.JSON(out)
}

// Create crea una factura desde el formulario.
// POST /dashboard/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	state := h.actions.CreateInvoice(c.Context(), nil, invoiceForm(c))
	return writeAction(c, state)
}

// Update edita la factura :id desde el formulario.
// POST|PUT /dashboard/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	state := h.actions.UpdateInvoice(c.Context(), c.Params("id"), nil, invoiceForm(c))
	return writeAction(c, state)
}

// Delete elimina la factura :id.
// DELETE /dashboard/invoices/:id, POST /dashboard/invoices/:id/delete
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	return writeAction(c, h.actions.DeleteInvoice(c.Context(), c.Params("id")))
}

// Receipt descarga el comprobante en PDF.
// GET /dashboard/invoices/:id/receipt.pdf
func (h *InvoiceHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdf.DownloadInvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		return queryError(c, err, "factura no encontrada")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

func invoiceForm(c *fiber.Ctx) billing.FormValues {
	return billing.FormValues{
		billing.FieldCustomerID: c.FormValue(billing.FieldCustomerID),
		billing.FieldAmount:     c.FormValue(billing.FieldAmount),
		billing.FieldStatus:     c.FormValue(billing.FieldStatus),
	}
}

// writeAction traduce el estado de la acción a HTTP: 303 si navega, 200 si no,
// 422 con errores por campo, 500 si falló el almacenamiento.
func writeAction(c *fiber.Ctx, state billing.ActionState) error {
	body := actionResponse{
		Outcome: state.Outcome.String(),
		Errors:  state.Errors,
		Message: state.Message,
	}
	switch state.Outcome {
	case billing.OutcomeOK:
		if state.RedirectTo != "" {
			return c.Redirect(state.RedirectTo, fiber.StatusSeeOther)
		}
		return c.JSON(body)
	case billing.OutcomeValidationFailed:
		return c.Status(fiber.StatusUnprocessableEntity).JSON(body)
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(body)
	}
}

func queryError(c *fiber.Ctx, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: notFoundMsg})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	default:
		return internalError(c, err)
	}
}

// internalError registra la causa y responde 500 sin exponerla.
func internalError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
