package repository

import (
	"context"

	"github.com/leonz04/pruebaTecnicaBack/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Create asigna ID, CreatedAt y UpdatedAt; Update refresca UpdatedAt.
// Update y Delete devuelven domain.ErrUserNotFound si el ID no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*entity.User, error)

	// EmailExists indica si otro registro (distinto de excludeID; 0 = ninguno)
	// ya usa exactamente ese email.
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	// IdentificationNumberExists indica si otro registro (distinto de excludeID)
	// ya usa ese número de identificación.
	IdentificationNumberExists(ctx context.Context, number string, excludeID int64) (bool, error)
	// LockEmailBase serializa escrituras que compiten por la misma parte local
	// base del email, dentro de la transacción actual.
	LockEmailBase(ctx context.Context, base string) error
}
