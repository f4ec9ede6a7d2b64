package postgres

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/invoices-dashboard/internal/domain"
)

// Códigos SQLSTATE que se traducen a errores de dominio.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeInvalidTextRep      = "22P02" // p. ej. uuid mal formado
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// translate envuelve err con op y, si corresponde, con el error de dominio.
func translate(op string, err error) error {
	switch pgErrorCode(err) {
	case codeUniqueViolation:
		return fmt.Errorf("%s: %w: %w", op, domain.ErrDuplicate, err)
	case codeForeignKeyViolation:
		return fmt.Errorf("%s: %w: %w", op, domain.ErrForeignKey, err)
	case codeInvalidTextRep, codeCheckViolation:
		return fmt.Errorf("%s: %w: %w", op, domain.ErrInvalidInput, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// isUUID indica si id puede existir en una columna UUID.
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
