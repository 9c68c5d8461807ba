package entity

import "time"

// Países permitidos para User. El país determina el dominio del correo generado.
const (
	CountryColombia      = "Colombia"
	CountryEstadosUnidos = "Estados Unidos"
)

// Countries conjunto cerrado de países válidos.
var Countries = []string{CountryColombia, CountryEstadosUnidos}

// Tipos de identificación permitidos.
const (
	IdentificationCedulaCiudadania  = "Cédula de Ciudadanía"
	IdentificationCedulaExtranjeria = "Cédula de Extranjería"
	IdentificationPasaporte         = "Pasaporte"
	IdentificationPermisoEspecial   = "Permiso Especial"
)

// IdentificationTypes conjunto cerrado de tipos de identificación válidos.
var IdentificationTypes = []string{
	IdentificationCedulaCiudadania,
	IdentificationCedulaExtranjeria,
	IdentificationPasaporte,
	IdentificationPermisoEspecial,
}

// Areas conjunto cerrado de áreas de la compañía.
var Areas = []string{
	"Administración",
	"Financiera",
	"Compras",
	"Infraestructura",
	"Operación",
	"Talento Humano",
	"Servicios Varios",
}

// StatusActivo único estado permitido para un empleado.
const StatusActivo = "Activo"

// User representa un registro de empleado. Email no lo suministra el cliente:
// se deriva de first_name, last_name y country al crear o actualizar.
type User struct {
	ID                   int64
	FirstName            string
	MiddleName           string // opcional, vacío = no informado
	LastName             string
	SecondLastName       string
	Country              string
	IdentificationType   string
	IdentificationNumber string
	Email                string
	HireDate             time.Time // solo fecha, sin componente horario
	Area                 string
	Status               string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
