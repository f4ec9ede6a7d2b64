package billing

import (
	"math"
	"strings"

	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Campos del formulario de factura (nombres tal como llegan del cliente).
const (
	FieldID         = "id"
	FieldCustomerID = "customerId"
	FieldAmount     = "amount"
	FieldStatus     = "status"
)

// Mensajes de validación mostrados junto a cada campo.
const (
	MsgSelectCustomer = "Please select a customer."
	MsgAmountPositive = "Please enter an amount greater than $0."
	MsgSelectStatus   = "Please select an invoice status."
	MsgMissingID      = "Missing invoice id."
)

var maxCents = decimal.NewFromInt(math.MaxInt64)

// Límites del texto del monto. Fuera de ellos el valor se trata como 0.
const (
	maxAmountLen      = 32
	maxAmountExponent = 18
	minAmountExponent = -32
)

// FormValues campos crudos del formulario: nombre -> valor.
type FormValues map[string]string

// FieldErrors errores por campo: nombre -> mensajes legibles.
type FieldErrors map[string][]string

func (e FieldErrors) add(field, msg string) {
	e[field] = append(e[field], msg)
}

// InvoiceForm datos ya validados y tipados del formulario.
type InvoiceForm struct {
	CustomerID string
	Amount     decimal.Decimal // dólares, tal como se ingresaron
	Status     entity.InvoiceStatus
}

// Cents convierte el monto a centavos. Redondea a 2 decimales
// (mitad lejos de cero) antes de multiplicar por 100.
func (f InvoiceForm) Cents() int64 {
	return toCents(f.Amount).IntPart()
}

func toCents(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2).Shift(2)
}

// ParseInvoiceForm valida los campos crudos. Nunca entra en pánico ni corta en
// el primer error: devuelve todos los errores por campo, o nil si son válidos.
func ParseInvoiceForm(in FormValues) (InvoiceForm, FieldErrors) {
	errs := FieldErrors{}
	var out InvoiceForm

	out.CustomerID = strings.TrimSpace(in[FieldCustomerID])
	if out.CustomerID == "" {
		errs.add(FieldCustomerID, MsgSelectCustomer)
	}

	out.Amount = coerceAmount(in[FieldAmount])
	cents := toCents(out.Amount)
	if !out.Amount.IsPositive() || !cents.IsPositive() || cents.GreaterThan(maxCents) {
		errs.add(FieldAmount, MsgAmountPositive)
	}

	out.Status = entity.InvoiceStatus(in[FieldStatus])
	if !out.Status.Valid() {
		errs.add(FieldStatus, MsgSelectStatus)
	}

	if len(errs) > 0 {
		return InvoiceForm{}, errs
	}
	return out, nil
}

// coerceAmount convierte el texto a número. Vacío, no numérico o con un
// exponente fuera de rango equivale a 0, que luego falla la regla "mayor que 0".
func coerceAmount(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxAmountLen {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	if exp := d.Exponent(); exp > maxAmountExponent || exp < minAmountExponent {
		return decimal.Zero
	}
	return d
}
