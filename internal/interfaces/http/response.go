package http

import (
	"bytes"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

const (
	contentTypeJSON = "application/json; charset=utf-8"
	contentTypeText = "text/plain; charset=utf-8"
)

// writeJSON responde v con sangría de dos espacios, sin escapar HTML y sin caché.
func writeJSON(c *fiber.Ctx, status int, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, contentTypeJSON)
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Status(status).Send(bytes.TrimRight(buf.Bytes(), "\n"))
}

// writeText responde texto plano UTF-8.
func writeText(c *fiber.Ctx, status int, msg string) error {
	c.Set(fiber.HeaderContentType, contentTypeText)
	return c.Status(status).SendString(msg)
}
