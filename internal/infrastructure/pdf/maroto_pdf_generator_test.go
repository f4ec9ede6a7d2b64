package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
)

func TestFormatCents(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{1050, "$10.50"},
		{123456, "$1,234.56"},
		{100000000, "$1,000,000.00"},
		{-5, "-$0.05"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCents(tt.in))
	}
}

func TestGenerateInvoicePDF(t *testing.T) {
	g := NewMarotoPDFGenerator("")
	inv := &entity.Invoice{
		ID:         "3958dc9e-712f-4377-85e9-fec4b6a6442a",
		CustomerID: "c1",
		Amount:     15795,
		Status:     entity.InvoiceStatusPaid,
		Date:       time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
	}
	cust := &entity.Customer{ID: "c1", Name: "Lee Robinson", Email: "lee@robinson.com"}

	out, err := g.GenerateInvoicePDF(context.Background(), inv, cust)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "salida debe ser un PDF")
}

func TestGenerateInvoicePDF_SinCliente(t *testing.T) {
	_, err := NewMarotoPDFGenerator("Acme").GenerateInvoicePDF(context.Background(), &entity.Invoice{ID: "x"}, nil)
	assert.Error(t, err)
}

func TestGenerateInvoicePDF_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMarotoPDFGenerator("Acme").GenerateInvoicePDF(ctx, &entity.Invoice{}, &entity.Customer{})
	assert.ErrorIs(t, err, context.Canceled)
}
