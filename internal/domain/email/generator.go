// Package email deriva el correo corporativo de un empleado a partir de su
// nombre, apellido y país, resolviendo colisiones con un sufijo numérico.
package email

import (
	"context"
	"fmt"
	"strings"
)

// Dominios corporativos por país.
const (
	DomainColombia = "global.com.co"
	DomainDefault  = "global.com.us"
)

// Checker consulta si un email ya está en uso, excluyendo opcionalmente un
// registro (excludeID > 0) para que un update no colisione consigo mismo.
type Checker interface {
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
}

// Domain devuelve el dominio de correo según el país.
func Domain(country string) string {
	if country == "Colombia" {
		return DomainColombia
	}
	return DomainDefault
}

// BaseLocalPart construye la parte local base: nombre y apellido en minúsculas
// unidos por punto. Los espacios internos del apellido se eliminan.
func BaseLocalPart(firstName, lastName string) string {
	first := strings.ToLower(firstName)
	last := strings.ToLower(strings.ReplaceAll(lastName, " ", ""))
	return first + "." + last
}

// Generate devuelve el primer candidato libre: base@dominio y, si ya existe,
// base.1@dominio, base.2@dominio, ... El chequeo usa el Checker recibido, de
// modo que dentro de una transacción consulta el estado visible por esa tx.
func Generate(ctx context.Context, checker Checker, firstName, lastName, country string, excludeID int64) (string, error) {
	base := BaseLocalPart(firstName, lastName)
	domain := Domain(country)

	candidate := base + "@" + domain
	for counter := 1; ; counter++ {
		taken, err := checker.EmailExists(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("verificar email %s: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s.%d@%s", base, counter, domain)
	}
}
