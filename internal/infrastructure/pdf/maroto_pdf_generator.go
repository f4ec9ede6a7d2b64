// Package pdf genera el comprobante imprimible de una factura del dashboard.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Acme + "Invoice"    │  ID corto + Fecha            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILL TO: Nombre + Email                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE: Estado | Monto                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con el ID + leyenda                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	appbilling "github.com/jhoicas/invoices-dashboard/internal/application/billing"
	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
)

var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 37, Green: 99, Blue: 235}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorPaid    = &props.Color{Red: 22, Green: 163, Blue: 74}
)

var usd = message.NewPrinter(language.AmericanEnglish)

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	issuer string
}

// NewMarotoPDFGenerator construye el generador. issuer aparece en el encabezado.
func NewMarotoPDFGenerator(issuer string) *MarotoPDFGenerator {
	if strings.TrimSpace(issuer) == "" {
		issuer = "Acme"
	}
	return &MarotoPDFGenerator{issuer: issuer}
}

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	ctx context.Context,
	invoice *entity.Invoice,
	customer *entity.Customer,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if invoice == nil || customer == nil {
		return nil, fmt.Errorf("pdf: factura y cliente son obligatorios")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Invoice "+invoice.ID, true).
		WithAuthor(g.issuer, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.issuer, invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(billToRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(detailRow(invoice))
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(invoice))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(issuer string, invoice *entity.Invoice) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(issuer, props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 1,
			}),
			text.New("INVOICE", props.Text{Size: 9, Top: 11, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("#"+shortID(invoice.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2,
			}),
			text.New("Date: "+invoice.DateString(), props.Text{
				Size: 9, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

func billToRow(customer *entity.Customer) core.Row {
	return row.New(18).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{Style: fontstyle.Bold, Size: 11, Top: 6}),
			text.New(customer.Email, props.Text{Size: 9, Top: 12, Color: colorGray}),
		),
	)
}

func detailRow(invoice *entity.Invoice) core.Row {
	statusColor := colorGray
	if invoice.Status == entity.InvoiceStatusPaid {
		statusColor = colorPaid
	}
	return row.New(16).Add(
		col.New(6).Add(
			text.New("Status", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1, Color: colorGray}),
			text.New(strings.ToUpper(string(invoice.Status)), props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 7, Color: statusColor,
			}),
		),
		col.New(6).Add(
			text.New("Amount due", props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1, Align: align.Right, Color: colorGray,
			}),
			text.New(FormatCents(invoice.Amount), props.Text{
				Style: fontstyle.Bold, Size: 14, Top: 6, Align: align.Right, Color: colorPrimary,
			}),
		),
	)
}

func footerRow(invoice *entity.Invoice) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(invoice.ID, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Invoice ID: "+invoice.ID, props.Text{Size: 8, Top: 6, Left: 3, Color: colorGray}),
			text.New("Thank you for your business.", props.Text{
				Style: fontstyle.Italic, Size: 9, Top: 16, Left: 3,
			}),
		),
	)
}

// FormatCents convierte centavos a moneda USD con separador de miles.
// Ej: 123456 → "$1,234.56", -5 → "-$0.05".
func FormatCents(cents int64) string {
	amount, _ := decimal.New(cents, -2).Abs().Float64()
	s := usd.Sprint(number.Decimal(amount, number.Scale(2)))
	if cents < 0 {
		return "-$" + s
	}
	return "$" + s
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
