package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/invoices-dashboard/internal/application/billing"
)

// CustomerHandler expone los clientes para el select del formulario (protegido).
type CustomerHandler struct {
	queries *billing.InvoiceQueryUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(queries *billing.InvoiceQueryUseCase) *CustomerHandler {
	return &CustomerHandler{queries: queries}
}

// List lista los clientes ordenados por nombre.
// GET /dashboard/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.queries.ListCustomers(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}
