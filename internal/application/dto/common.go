package dto

// MessageResponse cuerpo con solo un mensaje (delete, not found).
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse cuerpo 422: mensaje general + errores por campo.
type ValidationErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// ErrorResponse cuerpo de error genérico (conflictos y fallos internos).
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
