// Package validation aplica las reglas de campo sobre una solicitud de empleado
// antes de tocar la persistencia. Los errores se acumulan por campo y se
// devuelven de una sola vez; nunca se aplica una solicitud parcialmente válida.
package validation

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/leonz04/pruebaTecnicaBack/internal/application/dto"
	"github.com/leonz04/pruebaTecnicaBack/internal/domain/entity"
)

// Mode distingue las reglas que cambian entre crear y actualizar:
// la exclusión del propio registro en unicidad y el tope de hire_date.
type Mode int

const (
	ModeCreate Mode = iota
	ModeUpdate
)

// FieldErrors acumula mensajes de validación por campo.
type FieldErrors map[string][]string

// Add agrega un mensaje al campo.
func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// ValidationError agrupa todos los campos inválidos de una solicitud.
type ValidationError struct {
	Fields FieldErrors
}

// Error resume los campos con error (orden estable para logs y tests).
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validación fallida: " + strings.Join(fields, ", ")
}

// IdentificationChecker puerto mínimo hacia el almacén para la regla de
// unicidad de identification_number (excludeID = 0 en create).
type IdentificationChecker interface {
	IdentificationNumberExists(ctx context.Context, number string, excludeID int64) (bool, error)
}

// Patrones de campo. last_name admite espacios internos (apellidos compuestos);
// el generador de email los elimina al derivar la parte local.
var (
	reUpper       = regexp.MustCompile(`^[A-Z]+$`)
	reUpperSpace  = regexp.MustCompile(`^[A-Z ]+$`)
	reUpperBlanks = regexp.MustCompile(`^[A-Z\s]+$`)
	reAlphaNum    = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// hireDateLayout formato esperado para hire_date.
const hireDateLayout = "2006-01-02"

// UserValidator valida solicitudes de empleado contra las reglas de campo y la
// unicidad de identificación en el almacén.
type UserValidator struct {
	checker IdentificationChecker
	now     func() time.Time
}

// New construye el validador. now es inyectable para tests.
func New(checker IdentificationChecker) *UserValidator {
	return &UserValidator{checker: checker, now: time.Now}
}

// WithNow reemplaza el reloj (tests de la regla de hire_date futura).
func (v *UserValidator) WithNow(now func() time.Time) *UserValidator {
	v.now = now
	return v
}

// Validate aplica todas las reglas y devuelve el hire_date ya tipado.
// Si alguna regla falla retorna *ValidationError con los campos agrupados;
// un fallo del almacén al consultar unicidad se propaga como error normal.
func (v *UserValidator) Validate(ctx context.Context, in dto.SaveUserRequest, mode Mode, excludeID int64) (time.Time, error) {
	errs := FieldErrors{}

	validateName(errs, "first_name", in.FirstName, reUpper, 20)
	validateName(errs, "last_name", in.LastName, reUpperSpace, 20)
	validateName(errs, "second_last_name", in.SecondLastName, reUpper, 20)

	if in.MiddleName != nil && *in.MiddleName != "" {
		if !reUpperBlanks.MatchString(*in.MiddleName) {
			errs.Add("middle_name", "El campo middle_name solo admite letras mayúsculas y espacios.")
		}
		if len(*in.MiddleName) > 50 {
			errs.Add("middle_name", "El campo middle_name no debe superar los 50 caracteres.")
		}
	}

	validateEnum(errs, "country", in.Country, entity.Countries)
	validateEnum(errs, "identification_type", in.IdentificationType, entity.IdentificationTypes)
	validateEnum(errs, "area", in.Area, entity.Areas)

	switch in.Status {
	case "":
		errs.Add("status", "El campo status es obligatorio.")
	case entity.StatusActivo:
	default:
		errs.Add("status", fmt.Sprintf("El campo status debe ser %s.", entity.StatusActivo))
	}

	if err := v.validateIdentificationNumber(ctx, errs, in.IdentificationNumber, excludeID); err != nil {
		return time.Time{}, err
	}

	hireDate := v.validateHireDate(errs, in.HireDate, mode)

	if len(errs) > 0 {
		return time.Time{}, &ValidationError{Fields: errs}
	}
	return hireDate, nil
}

func validateName(errs FieldErrors, field, value string, pattern *regexp.Regexp, max int) {
	if value == "" {
		errs.Add(field, fmt.Sprintf("El campo %s es obligatorio.", field))
		return
	}
	if !pattern.MatchString(value) {
		errs.Add(field, fmt.Sprintf("El campo %s solo admite letras mayúsculas.", field))
	}
	if len(value) > max {
		errs.Add(field, fmt.Sprintf("El campo %s no debe superar los %d caracteres.", field, max))
	}
}

func validateEnum(errs FieldErrors, field, value string, allowed []string) {
	if value == "" {
		errs.Add(field, fmt.Sprintf("El campo %s es obligatorio.", field))
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	errs.Add(field, fmt.Sprintf("El campo %s debe ser uno de: %s.", field, strings.Join(allowed, ", ")))
}

// validateIdentificationNumber aplica las reglas sintácticas y la unicidad en
// el almacén. Un fallo al consultar el almacén se propaga: no es un 422.
func (v *UserValidator) validateIdentificationNumber(ctx context.Context, errs FieldErrors, number string, excludeID int64) error {
	if number == "" {
		errs.Add("identification_number", "El campo identification_number es obligatorio.")
		return nil
	}
	if !reAlphaNum.MatchString(number) {
		errs.Add("identification_number", "El campo identification_number solo admite caracteres alfanuméricos.")
		return nil
	}
	if len(number) > 20 {
		errs.Add("identification_number", "El campo identification_number no debe superar los 20 caracteres.")
		return nil
	}
	taken, err := v.checker.IdentificationNumberExists(ctx, number, excludeID)
	if err != nil {
		return fmt.Errorf("verificar identification_number: %w", err)
	}
	if taken {
		errs.Add("identification_number", "El número de identificación ya está registrado.")
	}
	return nil
}

func (v *UserValidator) validateHireDate(errs FieldErrors, raw string, mode Mode) time.Time {
	if raw == "" {
		errs.Add("hire_date", "El campo hire_date es obligatorio.")
		return time.Time{}
	}
	hireDate, err := time.Parse(hireDateLayout, raw)
	if err != nil {
		errs.Add("hire_date", "El campo hire_date debe ser una fecha válida con formato YYYY-MM-DD.")
		return time.Time{}
	}
	// Solo en update la fecha no puede ser futura.
	if mode == ModeUpdate {
		now := v.now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if hireDate.After(today) {
			errs.Add("hire_date", "El campo hire_date no puede ser posterior a la fecha actual.")
		}
	}
	return hireDate
}
