package validation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonz04/pruebaTecnicaBack/internal/application/dto"
	"github.com/leonz04/pruebaTecnicaBack/internal/application/validation"
)

// fakeChecker responde la consulta de unicidad de identification_number.
type fakeChecker struct {
	existing map[string]int64 // número -> ID del dueño
	err      error
}

func (f *fakeChecker) IdentificationNumberExists(_ context.Context, number string, excludeID int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	owner, ok := f.existing[number]
	if !ok {
		return false, nil
	}
	return excludeID == 0 || owner != excludeID, nil
}

func validRequest() dto.SaveUserRequest {
	middle := "CARLOS"
	return dto.SaveUserRequest{
		FirstName:            "JUAN",
		MiddleName:           &middle,
		LastName:             "PEREZ",
		SecondLastName:       "GOMEZ",
		Country:              "Colombia",
		IdentificationType:   "Cédula de Ciudadanía",
		IdentificationNumber: "123456789",
		HireDate:             "2022-01-01",
		Area:                 "Administración",
		Status:               "Activo",
	}
}

func newValidator(checker *fakeChecker) *validation.UserValidator {
	return validation.New(checker).WithNow(func() time.Time {
		return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	})
}

// fieldErrors extrae el detalle por campo o falla el test si no es un 422.
func fieldErrors(t *testing.T, err error) validation.FieldErrors {
	t.Helper()
	var verr *validation.ValidationError
	require.ErrorAs(t, err, &verr, "se esperaba un error de validación")
	return verr.Fields
}

func TestValidate_SolicitudValida(t *testing.T) {
	v := newValidator(&fakeChecker{})

	hireDate, err := v.Validate(context.Background(), validRequest(), validation.ModeCreate, 0)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), hireDate)
}

func TestValidate_CamposObligatorios(t *testing.T) {
	v := newValidator(&fakeChecker{})

	_, err := v.Validate(context.Background(), dto.SaveUserRequest{}, validation.ModeCreate, 0)

	fields := fieldErrors(t, err)
	for _, f := range []string{
		"first_name", "last_name", "second_last_name", "country",
		"identification_type", "identification_number", "hire_date", "area", "status",
	} {
		assert.Contains(t, fields, f, "campo obligatorio %s debe reportarse", f)
	}
	// middle_name es opcional: su ausencia no genera error.
	assert.NotContains(t, fields, "middle_name")
}

func TestValidate_ReglasDeNombre(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.SaveUserRequest)
		field  string
	}{
		{"first_name con minúsculas", func(r *dto.SaveUserRequest) { r.FirstName = "Juan" }, "first_name"},
		{"first_name con espacios", func(r *dto.SaveUserRequest) { r.FirstName = "JUAN CARLOS" }, "first_name"},
		{"first_name muy largo", func(r *dto.SaveUserRequest) { r.FirstName = "ABCDEFGHIJKLMNOPQRSTU" }, "first_name"},
		{"second_last_name con dígitos", func(r *dto.SaveUserRequest) { r.SecondLastName = "GOMEZ2" }, "second_last_name"},
		{"middle_name con minúsculas", func(r *dto.SaveUserRequest) { m := "carlos"; r.MiddleName = &m }, "middle_name"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := newValidator(&fakeChecker{})
			req := validRequest()
			tc.mutate(&req)

			_, err := v.Validate(context.Background(), req, validation.ModeCreate, 0)

			assert.Contains(t, fieldErrors(t, err), tc.field)
		})
	}
}

func TestValidate_ApellidoCompuestoValido(t *testing.T) {
	v := newValidator(&fakeChecker{})
	req := validRequest()
	req.LastName = "DE LA CRUZ"

	_, err := v.Validate(context.Background(), req, validation.ModeCreate, 0)

	require.NoError(t, err, "last_name admite espacios internos")
}

func TestValidate_EnumsInvalidos(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.SaveUserRequest)
		field  string
	}{
		{"país fuera del conjunto", func(r *dto.SaveUserRequest) { r.Country = "Perú" }, "country"},
		{"tipo de identificación inválido", func(r *dto.SaveUserRequest) { r.IdentificationType = "DNI" }, "identification_type"},
		{"área inexistente", func(r *dto.SaveUserRequest) { r.Area = "Marketing" }, "area"},
		{"status distinto de Activo", func(r *dto.SaveUserRequest) { r.Status = "Inactivo" }, "status"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := newValidator(&fakeChecker{})
			req := validRequest()
			tc.mutate(&req)

			_, err := v.Validate(context.Background(), req, validation.ModeCreate, 0)

			assert.Contains(t, fieldErrors(t, err), tc.field)
		})
	}
}

func TestValidate_IdentificacionDuplicada(t *testing.T) {
	checker := &fakeChecker{existing: map[string]int64{"123456789": 9}}
	v := newValidator(checker)

	_, err := v.Validate(context.Background(), validRequest(), validation.ModeCreate, 0)

	assert.Contains(t, fieldErrors(t, err), "identification_number")
}

func TestValidate_IdentificacionPropiaNoCuentaEnUpdate(t *testing.T) {
	checker := &fakeChecker{existing: map[string]int64{"123456789": 9}}
	v := newValidator(checker)

	_, err := v.Validate(context.Background(), validRequest(), validation.ModeUpdate, 9)

	require.NoError(t, err, "en update el propio registro no es un duplicado")
}

func TestValidate_IdentificacionNoAlfanumerica(t *testing.T) {
	v := newValidator(&fakeChecker{})
	req := validRequest()
	req.IdentificationNumber = "123-456"

	_, err := v.Validate(context.Background(), req, validation.ModeCreate, 0)

	assert.Contains(t, fieldErrors(t, err), "identification_number")
}

func TestValidate_HireDateFutura(t *testing.T) {
	req := validRequest()
	req.HireDate = "2030-01-01"

	t.Run("en create se acepta", func(t *testing.T) {
		v := newValidator(&fakeChecker{})
		_, err := v.Validate(context.Background(), req, validation.ModeCreate, 0)
		require.NoError(t, err)
	})

	t.Run("en update se rechaza", func(t *testing.T) {
		v := newValidator(&fakeChecker{})
		_, err := v.Validate(context.Background(), req, validation.ModeUpdate, 1)
		assert.Contains(t, fieldErrors(t, err), "hire_date")
	})
}

func TestValidate_HireDateMalFormada(t *testing.T) {
	v := newValidator(&fakeChecker{})
	req := validRequest()
	req.HireDate = "01/01/2022"

	_, err := v.Validate(context.Background(), req, validation.ModeCreate, 0)

	assert.Contains(t, fieldErrors(t, err), "hire_date")
}

func TestValidate_FalloDelAlmacenNoEs422(t *testing.T) {
	checker := &fakeChecker{err: errors.New("conexión caída")}
	v := newValidator(checker)

	_, err := v.Validate(context.Background(), validRequest(), validation.ModeCreate, 0)

	require.Error(t, err)
	var verr *validation.ValidationError
	assert.False(t, errors.As(err, &verr),
		"un fallo de infraestructura debe propagarse, no convertirse en error de campo")
}
