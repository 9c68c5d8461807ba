package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrUserNotFound            = errors.New("usuario no encontrado")
	ErrDuplicateEmail          = errors.New("el email ya está registrado")
	ErrDuplicateIdentification = errors.New("el número de identificación ya está registrado")
	ErrDuplicate               = errors.New("recurso duplicado")
)
