package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/leonz04/pruebaTecnicaBack/internal/application/dto"
	"github.com/leonz04/pruebaTecnicaBack/internal/application/usecase"
	"github.com/leonz04/pruebaTecnicaBack/internal/application/validation"
	"github.com/leonz04/pruebaTecnicaBack/internal/domain"
)

// UserHandler maneja las peticiones HTTP de empleados.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create POST /api/v1/users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Cuerpo de la petición inválido", Error: err.Error(),
		})
	}
	user, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UserMessageResponse{
		Message: "Usuario creado con éxito", User: user,
	})
}

// Update PUT /api/v1/users/:id
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c)
	}
	var in dto.SaveUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Cuerpo de la petición inválido", Error: err.Error(),
		})
	}
	user, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(dto.UserMessageResponse{
		Message: "Usuario actualizado con éxito", User: user,
	})
}

// Delete DELETE /api/v1/users/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Usuario eliminado con éxito"})
}

// GetByID GET /api/v1/users/:id
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c)
	}
	user, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(user)
}

// List GET /api/v1/users
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.uc.List(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(users)
}

// fail traduce errores del caso de uso a la respuesta HTTP. Nada se propaga
// más allá del handler: todo fallo termina en un cuerpo JSON con su estado.
func (h *UserHandler) fail(c *fiber.Ctx, err error) error {
	var verr *validation.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
			Message: "Los datos proporcionados no son válidos.",
			Errors:  verr.Fields,
		})
	case errors.Is(err, domain.ErrUserNotFound):
		return notFound(c)
	case errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrDuplicateIdentification),
		errors.Is(err, domain.ErrDuplicate):
		// Carrera que superó el chequeo best-effort: el índice único manda.
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Message: "Conflicto de unicidad", Error: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Error interno del servidor", Error: err.Error(),
		})
	}
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "Usuario no encontrado"})
}

// parseID valida el parámetro de ruta. Un ID no numérico equivale a un
// registro inexistente.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
