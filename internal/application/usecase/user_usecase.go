package usecase

import (
	"context"
	"time"

	"github.com/leonz04/pruebaTecnicaBack/internal/application/dto"
	"github.com/leonz04/pruebaTecnicaBack/internal/application/validation"
	"github.com/leonz04/pruebaTecnicaBack/internal/domain"
	"github.com/leonz04/pruebaTecnicaBack/internal/domain/email"
	"github.com/leonz04/pruebaTecnicaBack/internal/domain/entity"
	"github.com/leonz04/pruebaTecnicaBack/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción del almacén, con un repositorio
// atado a esa transacción. La derivación de email y la escritura van juntas para
// que dos solicitudes con la misma parte local base no pasen ambas el chequeo
// de existencia antes de escribir.
type TxRunner interface {
	Run(ctx context.Context, fn func(repo repository.UserRepository) error) error
}

// UserUseCase orquesta validar → derivar email → persistir para empleados.
type UserUseCase struct {
	repo      repository.UserRepository
	tx        TxRunner
	validator *validation.UserValidator
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia,
// el ejecutor transaccional y el validador de campos.
func NewUserUseCase(repo repository.UserRepository, tx TxRunner, validator *validation.UserValidator) *UserUseCase {
	return &UserUseCase{repo: repo, tx: tx, validator: validator}
}

// Create valida la solicitud, deriva el email único y persiste el empleado.
func (uc *UserUseCase) Create(ctx context.Context, in dto.SaveUserRequest) (*dto.UserResponse, error) {
	hireDate, err := uc.validator.Validate(ctx, in, validation.ModeCreate, 0)
	if err != nil {
		return nil, err
	}

	user := buildUser(in, hireDate)
	err = uc.tx.Run(ctx, func(repo repository.UserRepository) error {
		// Serializar por parte local base: cierra la carrera entre el chequeo
		// de existencia y el INSERT para solicitudes con el mismo nombre.
		base := email.BaseLocalPart(in.FirstName, in.LastName)
		if err := repo.LockEmailBase(ctx, base); err != nil {
			return err
		}
		addr, err := email.Generate(ctx, repo, in.FirstName, in.LastName, in.Country, 0)
		if err != nil {
			return err
		}
		user.Email = addr
		return repo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene un empleado por ID. Devuelve domain.ErrUserNotFound si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// Update valida, rederiva el email (excluyendo el propio registro de la
// comprobación de colisión) y actualiza el empleado completo.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.SaveUserRequest) (*dto.UserResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrUserNotFound
	}

	hireDate, err := uc.validator.Validate(ctx, in, validation.ModeUpdate, id)
	if err != nil {
		return nil, err
	}

	user := buildUser(in, hireDate)
	user.ID = id
	user.CreatedAt = current.CreatedAt
	err = uc.tx.Run(ctx, func(repo repository.UserRepository) error {
		base := email.BaseLocalPart(in.FirstName, in.LastName)
		if err := repo.LockEmailBase(ctx, base); err != nil {
			return err
		}
		addr, err := email.Generate(ctx, repo, in.FirstName, in.LastName, in.Country, id)
		if err != nil {
			return err
		}
		user.Email = addr
		return repo.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina un empleado. Devuelve domain.ErrUserNotFound si no existe.
func (uc *UserUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// List devuelve todos los empleados (sin paginación: el recurso es acotado).
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

func buildUser(in dto.SaveUserRequest, hireDate time.Time) *entity.User {
	middle := ""
	if in.MiddleName != nil {
		middle = *in.MiddleName
	}
	return &entity.User{
		FirstName:            in.FirstName,
		MiddleName:           middle,
		LastName:             in.LastName,
		SecondLastName:       in.SecondLastName,
		Country:              in.Country,
		IdentificationType:   in.IdentificationType,
		IdentificationNumber: in.IdentificationNumber,
		HireDate:             hireDate,
		Area:                 in.Area,
		Status:               in.Status,
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	var middle *string
	if u.MiddleName != "" {
		middle = &u.MiddleName
	}
	return &dto.UserResponse{
		ID:                   u.ID,
		FirstName:            u.FirstName,
		MiddleName:           middle,
		LastName:             u.LastName,
		SecondLastName:       u.SecondLastName,
		Country:              u.Country,
		IdentificationType:   u.IdentificationType,
		IdentificationNumber: u.IdentificationNumber,
		Email:                u.Email,
		HireDate:             u.HireDate.Format("2006-01-02"),
		Area:                 u.Area,
		Status:               u.Status,
		CreatedAt:            u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            u.UpdatedAt.Format(time.RFC3339),
	}
}
