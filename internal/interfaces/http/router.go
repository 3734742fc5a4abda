package http

import (
	"errors"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventario-tiers/internal/application/dto"
	"github.com/jhoicas/inventario-tiers/internal/application/inventory"
	"github.com/jhoicas/inventario-tiers/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Catalog     *inventory.CatalogUseCase
	Log         *logger.Logger
	SwaggerFile string // vacío o inexistente = sin /docs
}

// NewApp crea la app Fiber con rutas exactas (estrictas y sensibles a mayúsculas).
func NewApp(name string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               name,
		StrictRouting:         true,
		CaseSensitive:         true,
		DisableStartupMessage: true,
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 60,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			msg := err.Error()
			if code == fiber.StatusInternalServerError {
				msg = "Internal Server Error"
			}
			return writeJSON(c, code, dto.ErrorResponse{Error: msg})
		},
	})
	app.Use(recover.New())
	return app
}

// Router registra middlewares y rutas. OPTIONS se resuelve antes que todo lo demás.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	app.Use(CORS())
	app.Use(RequestID())
	app.Use(RequestLogger(log.Component("http")))

	// Swagger UI: http://localhost:<port>/docs
	if deps.SwaggerFile != "" {
		if _, err := os.Stat(deps.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: deps.SwaggerFile,
				Path:     "docs",
				Title:    "Inventory Tiers API",
			}))
		} else {
			log.Warn().Str("file", deps.SwaggerFile).Msg("archivo swagger no encontrado, /docs deshabilitado")
		}
	}

	h := NewInventoryHandler(deps.Catalog, log)

	// Cualquier método distinto de OPTIONS recibe la misma respuesta.
	app.All("/api/public", h.Public)
	app.All("/api/inventory", h.Inventory)

	app.Use(h.Usage)
}
