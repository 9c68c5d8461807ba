package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/leonz04/pruebaTecnicaBack/internal/domain"
)

// Querier abstrae pool y transacción: *pgxpool.Pool y pgx.Tx lo satisfacen.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// mapUniqueViolation traduce una violación de constraint único (23505) al error
// de dominio del índice afectado. El índice único es el respaldo autoritativo
// bajo el chequeo best-effort del generador de email y del validador.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "email"):
		return domain.ErrDuplicateEmail
	case strings.Contains(pgErr.ConstraintName, "identification"):
		return domain.ErrDuplicateIdentification
	default:
		return domain.ErrDuplicate
	}
}

// textOrNil devuelve nil para cadenas vacías (columnas opcionales NULL).
func textOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
