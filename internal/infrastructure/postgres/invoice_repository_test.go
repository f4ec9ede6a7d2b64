package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoices-dashboard/internal/domain"
	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Querier de prueba: registra SQL y argumentos, sin base de datos.
// ──────────────────────────────────────────────────────────────────────────────

type call struct {
	sql  string
	args []any
}

type recordingQuerier struct {
	calls   []call
	execErr error
	row     pgx.Row
}

func (q *recordingQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.calls = append(q.calls, call{sql: sql, args: args})
	if q.execErr != nil {
		return pgconn.CommandTag{}, q.execErr
	}
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func (q *recordingQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.calls = append(q.calls, call{sql: sql, args: args})
	return nil, errors.New("query no soportado en el fake")
}

func (q *recordingQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.calls = append(q.calls, call{sql: sql, args: args})
	return q.row
}

const invID = "3958dc9e-712f-4377-85e9-fec4b6a6442a"

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceRepo_Create_UnaSentenciaParametrizada(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewInvoiceRepository(q)
	date := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	inv := &entity.Invoice{
		CustomerID: "C1",
		Amount:     1050,
		Status:     entity.InvoiceStatusPending,
		Date:       date,
	}
	require.NoError(t, repo.Create(context.Background(), inv))

	require.Len(t, q.calls, 1, "exactamente una sentencia")
	assert.NotEmpty(t, inv.ID, "se genera el ID")
	assert.Contains(t, q.calls[0].sql, "INSERT INTO invoices")
	assert.NotContains(t, q.calls[0].sql, "C1", "los valores nunca se interpolan en el SQL")
	assert.Equal(t, []any{inv.ID, "C1", int64(1050), "pending", date}, q.calls[0].args)
}

func TestInvoiceRepo_Update_NoModificaFecha(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewInvoiceRepository(q)

	err := repo.Update(context.Background(), &entity.Invoice{
		ID: invID, CustomerID: "C2", Amount: 999, Status: entity.InvoiceStatusPaid,
	})
	require.NoError(t, err)

	require.Len(t, q.calls, 1)
	sql := q.calls[0].sql
	assert.Contains(t, sql, "UPDATE invoices")
	assert.Contains(t, sql, "SET customer_id = $2, amount = $3, status = $4\n")
	assert.Contains(t, sql, "WHERE id = $1")
	assert.NotContains(t, sql, "date =")
	assert.Equal(t, []any{invID, "C2", int64(999), "paid"}, q.calls[0].args)
}

func TestInvoiceRepo_Delete_PorID(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewInvoiceRepository(q)

	require.NoError(t, repo.Delete(context.Background(), invID))
	require.Len(t, q.calls, 1)
	assert.Equal(t, "DELETE FROM invoices WHERE id = $1", q.calls[0].sql)
	assert.Equal(t, []any{invID}, q.calls[0].args)
}

func TestInvoiceRepo_IDNoUUID_CeroFilas(t *testing.T) {
	q := &recordingQuerier{execErr: &pgconn.PgError{Code: codeInvalidTextRep}}
	repo := NewInvoiceRepository(q)
	ctx := context.Background()

	assert.NoError(t, repo.Delete(ctx, "ya-borrada"))
	assert.NoError(t, repo.Update(ctx, &entity.Invoice{
		ID: "ya-borrada", CustomerID: "C2", Amount: 999, Status: entity.InvoiceStatusPaid,
	}))
	inv, err := repo.GetByID(ctx, "ya-borrada")
	assert.NoError(t, err)
	assert.Nil(t, inv)
	assert.Empty(t, q.calls, "no se envía ninguna sentencia")
}

func TestInvoiceRepo_Create_TraduceErroresPostgres(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{codeForeignKeyViolation, domain.ErrForeignKey},
		{codeUniqueViolation, domain.ErrDuplicate},
		{codeInvalidTextRep, domain.ErrInvalidInput},
		{codeCheckViolation, domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			pgErr := &pgconn.PgError{Code: tt.code}
			repo := NewInvoiceRepository(&recordingQuerier{execErr: pgErr})

			err := repo.Create(context.Background(), &entity.Invoice{CustomerID: "C1", Amount: 1, Status: entity.InvoiceStatusPaid})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, pgErr, "la causa original se conserva")
		})
	}
}

func TestInvoiceRepo_GetByID_NoExiste(t *testing.T) {
	repo := NewInvoiceRepository(&recordingQuerier{row: errRow{err: pgx.ErrNoRows}})

	inv, err := repo.GetByID(context.Background(), "7d3c1a2e-0000-4000-8000-000000000404")
	require.NoError(t, err)
	assert.Nil(t, inv)
}

func TestInvoiceRepo_GetByID_ErrorDeScan(t *testing.T) {
	repo := NewInvoiceRepository(&recordingQuerier{row: errRow{err: errors.New("conn reset")}})

	_, err := repo.GetByID(context.Background(), invID)
	assert.ErrorContains(t, err, "get invoice")
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%%", likePattern(""))
	assert.Equal(t, "%lee%", likePattern("lee"))
}
