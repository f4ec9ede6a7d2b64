package billing

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoices-dashboard/internal/domain/repository"
	"github.com/rs/zerolog"
)

// InvoicesPath ruta del listado de facturas: se invalida tras cada mutación
// y es el destino de la navegación de create/update.
const InvoicesPath = "/dashboard/invoices"

// Mensajes de resumen devueltos al formulario.
const (
	MsgCreateInvalid = "Failed to create invoice. Please fix the invalid fields and try again."
	MsgUpdateInvalid = "Failed to update invoice. Please fix the invalid fields and try again."
	MsgCreateDBError = "Database Error: Failed to Create Invoice."
	MsgUpdateDBError = "Database Error: Failed to Update Invoice."
	MsgDeleteFailed  = "Failed to delete invoice."
)

// InvoiceActions acciones de formulario sobre facturas:
// validar → transformar → ejecutar → efectos (invalidar caché, navegar).
type InvoiceActions struct {
	repo repository.InvoiceRepository
	log  zerolog.Logger
	now  func() time.Time

	onCreate []Effect
	onUpdate []Effect
	onDelete []Effect
}

// NewInvoiceActions construye las acciones. now se usa para la fecha de emisión.
func NewInvoiceActions(repo repository.InvoiceRepository, revalidator Revalidator, log zerolog.Logger, now func() time.Time) *InvoiceActions {
	if now == nil {
		now = time.Now
	}
	return &InvoiceActions{
		repo: repo,
		log:  log,
		now:  now,
		onCreate: []Effect{
			Revalidate(revalidator, InvoicesPath),
			Redirect(InvoicesPath),
		},
		onUpdate: []Effect{
			Revalidate(revalidator, InvoicesPath),
			Redirect(InvoicesPath),
		},
		// Delete se invoca desde el propio listado: no navega.
		onDelete: []Effect{
			Revalidate(revalidator, InvoicesPath),
		},
	}
}

// CreateInvoice crea una factura a partir del formulario. El segundo argumento
// es el estado del envío anterior; no se usa, viaja solo para reintentos del formulario.
func (a *InvoiceActions) CreateInvoice(ctx context.Context, _ *ActionState, form FormValues) ActionState {
	in, errs := ParseInvoiceForm(form)
	if errs != nil {
		a.log.Debug().Interface("errors", errs).Msg("create: formulario inválido")
		return validationFailed(errs, MsgCreateInvalid)
	}

	invoice := &entity.Invoice{
		CustomerID: in.CustomerID,
		Amount:     in.Cents(),
		Status:     in.Status,
		Date:       entity.IssueDate(a.now()),
	}
	if err := a.repo.Create(ctx, invoice); err != nil {
		a.log.Error().Err(err).Str("customer_id", invoice.CustomerID).Msg("create: error de base de datos")
		return storageFailed(MsgCreateDBError)
	}

	a.log.Info().Str("invoice_id", invoice.ID).Int64("amount", invoice.Amount).Msg("factura creada")
	state := ActionState{Outcome: OutcomeOK}
	runEffects(ctx, a.log, a.onCreate, &state)
	return state
}

// UpdateInvoice reemplaza cliente, monto y estado de la factura id.
// La fecha de emisión no cambia.
func (a *InvoiceActions) UpdateInvoice(ctx context.Context, id string, _ *ActionState, form FormValues) ActionState {
	id = strings.TrimSpace(id)
	in, errs := ParseInvoiceForm(form)
	if id == "" {
		if errs == nil {
			errs = FieldErrors{}
		}
		errs.add(FieldID, MsgMissingID)
	}
	if errs != nil {
		a.log.Debug().Str("invoice_id", id).Interface("errors", errs).Msg("update: formulario inválido")
		return validationFailed(errs, MsgUpdateInvalid)
	}

	invoice := &entity.Invoice{
		ID:         id,
		CustomerID: in.CustomerID,
		Amount:     in.Cents(),
		Status:     in.Status,
	}
	if err := a.repo.Update(ctx, invoice); err != nil {
		a.log.Error().Err(err).Str("invoice_id", id).Msg("update: error de base de datos")
		return storageFailed(MsgUpdateDBError)
	}

	a.log.Info().Str("invoice_id", id).Int64("amount", invoice.Amount).Msg("factura actualizada")
	state := ActionState{Outcome: OutcomeOK}
	runEffects(ctx, a.log, a.onUpdate, &state)
	return state
}

// DeleteInvoice elimina la factura id. Un id inexistente no es error.
func (a *InvoiceActions) DeleteInvoice(ctx context.Context, id string) ActionState {
	id = strings.TrimSpace(id)
	if id == "" {
		return validationFailed(FieldErrors{FieldID: {MsgMissingID}}, MsgDeleteFailed)
	}
	if err := a.repo.Delete(ctx, id); err != nil {
		a.log.Error().Err(err).Str("invoice_id", id).Msg("delete: error de base de datos")
		return storageFailed(MsgDeleteFailed)
	}

	a.log.Info().Str("invoice_id", id).Msg("factura eliminada")
	state := ActionState{Outcome: OutcomeOK}
	runEffects(ctx, a.log, a.onDelete, &state)
	return state
}
