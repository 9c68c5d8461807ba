package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/leonz04/pruebaTecnicaBack/pkg/logger"
)

// LocalRequestID clave en c.Locals para el ID de correlación de la petición.
const LocalRequestID = "request_id"

// RequestLogger registra cada petición con un request_id propio, método, ruta,
// estado y duración. El ID también se devuelve en la cabecera X-Request-ID.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := uuid.New().String()
		c.Locals(LocalRequestID, reqID)
		c.Set("X-Request-ID", reqID)

		err := c.Next()

		log.Info().
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("petición atendida")
		return err
	}
}
