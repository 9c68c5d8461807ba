package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/leonz04/pruebaTecnicaBack/internal/domain"
	"github.com/leonz04/pruebaTecnicaBack/internal/domain/entity"
	"github.com/leonz04/pruebaTecnicaBack/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL
// (usable con pool o tx vía Querier).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para empleados.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, first_name, middle_name, last_name, second_last_name, country,
	identification_type, identification_number, email, hire_date, area, status, created_at, updated_at`

// Create persiste un nuevo empleado. El almacén asigna id y timestamps.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (first_name, middle_name, last_name, second_last_name, country,
			identification_type, identification_number, email, hire_date, area, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		user.FirstName, textOrNil(user.MiddleName), user.LastName, user.SecondLastName, user.Country,
		user.IdentificationType, user.IdentificationNumber, user.Email, user.HireDate, user.Area, user.Status,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if derr := mapUniqueViolation(err); derr != nil {
			return derr
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID. Devuelve nil, nil si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// Update reemplaza todos los campos editables y refresca updated_at.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET first_name = $2, middle_name = $3, last_name = $4, second_last_name = $5,
			country = $6, identification_type = $7, identification_number = $8, email = $9,
			hire_date = $10, area = $11, status = $12, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`
	err := r.q.QueryRow(ctx, query,
		user.ID, user.FirstName, textOrNil(user.MiddleName), user.LastName, user.SecondLastName,
		user.Country, user.IdentificationType, user.IdentificationNumber, user.Email,
		user.HireDate, user.Area, user.Status,
	).Scan(&user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrUserNotFound
		}
		if derr := mapUniqueViolation(err); derr != nil {
			return derr
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete elimina un empleado por ID.
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// List devuelve todos los empleados en orden de inserción.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// EmailExists indica si otro registro (distinto de excludeID) ya usa ese email.
func (r *UserRepo) EmailExists(ctx context.Context, addr string, excludeID int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND id <> $2)`,
		addr, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("email exists: %w", err)
	}
	return exists, nil
}

// IdentificationNumberExists indica si otro registro ya usa ese número.
func (r *UserRepo) IdentificationNumberExists(ctx context.Context, number string, excludeID int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE identification_number = $1 AND id <> $2)`,
		number, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("identification exists: %w", err)
	}
	return exists, nil
}

// LockEmailBase toma un advisory lock transaccional sobre la parte local base.
// Serializa los flujos chequeo-de-existencia → escritura que compiten por el
// mismo email; se libera solo al terminar la transacción.
func (r *UserRepo) LockEmailBase(ctx context.Context, base string) error {
	if _, err := r.q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, base); err != nil {
		return fmt.Errorf("lock email base: %w", err)
	}
	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var middle *string
	err := row.Scan(
		&u.ID, &u.FirstName, &middle, &u.LastName, &u.SecondLastName, &u.Country,
		&u.IdentificationType, &u.IdentificationNumber, &u.Email, &u.HireDate,
		&u.Area, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if middle != nil {
		u.MiddleName = *middle
	}
	return &u, nil
}
