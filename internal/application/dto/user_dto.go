package dto

// SaveUserRequest entrada para crear o actualizar un empleado. El mismo cuerpo
// sirve para POST y PUT; email, id y timestamps nunca los envía el cliente.
type SaveUserRequest struct {
	FirstName            string  `json:"first_name"`
	MiddleName           *string `json:"middle_name"`
	LastName             string  `json:"last_name"`
	SecondLastName       string  `json:"second_last_name"`
	Country              string  `json:"country"`
	IdentificationType   string  `json:"identification_type"`
	IdentificationNumber string  `json:"identification_number"`
	HireDate             string  `json:"hire_date"`
	Area                 string  `json:"area"`
	Status               string  `json:"status"`
}

// UserResponse salida de un empleado con los campos derivados por el sistema.
// hire_date viaja como fecha plana YYYY-MM-DD.
type UserResponse struct {
	ID                   int64   `json:"id"`
	FirstName            string  `json:"first_name"`
	MiddleName           *string `json:"middle_name"`
	LastName             string  `json:"last_name"`
	SecondLastName       string  `json:"second_last_name"`
	Country              string  `json:"country"`
	IdentificationType   string  `json:"identification_type"`
	IdentificationNumber string  `json:"identification_number"`
	Email                string  `json:"email"`
	HireDate             string  `json:"hire_date"`
	Area                 string  `json:"area"`
	Status               string  `json:"status"`
	CreatedAt            string  `json:"created_at"`
	UpdatedAt            string  `json:"updated_at"`
}

// UserMessageResponse cuerpo de éxito para create y update: mensaje + registro.
type UserMessageResponse struct {
	Message string        `json:"message"`
	User    *UserResponse `json:"user"`
}
