package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/inventario-tiers/pkg/logger"
)

// LocalRequestID clave en c.Locals del id de la petición.
const LocalRequestID = "request_id"

// CORS responde 204 a cualquier OPTIONS con cabeceras permisivas, antes de toda otra lógica.
func CORS() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodOptions {
			return c.Next()
		}
		c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
		c.Set(fiber.HeaderAccessControlAllowMethods, "GET,POST,OPTIONS")
		c.Set(fiber.HeaderAccessControlAllowHeaders, "content-type")
		c.Status(fiber.StatusNoContent)
		return nil
	}
}

// RequestID reutiliza X-Request-ID del cliente o genera un UUID, y lo devuelve en la respuesta.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.Clone(c.Get(fiber.HeaderXRequestID))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, id)
		c.Locals(LocalRequestID, id)
		return c.Next()
	}
}

// GetRequestID devuelve el id asignado por RequestID (vacío si no pasó por el middleware).
func GetRequestID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRequestID).(string)
	return s
}

// RequestLogger registra cada petición. Solo se registra la ruta: el query lleva la credencial.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		ev := log.Info()
		if err != nil {
			ev = log.Error().Err(err)
		}
		ev.Str("request_id", GetRequestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("petición HTTP")
		return err
	}
}
