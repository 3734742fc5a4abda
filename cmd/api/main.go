package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/inventario-tiers/internal/application/inventory"
	"github.com/jhoicas/inventario-tiers/internal/domain/access"
	"github.com/jhoicas/inventario-tiers/internal/infrastructure/kvstore"
	httpRouter "github.com/jhoicas/inventario-tiers/internal/interfaces/http"
	"github.com/jhoicas/inventario-tiers/pkg/config"
	"github.com/jhoicas/inventario-tiers/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	if cfg.Access.Admin == "" && cfg.Access.Level3 == "" && cfg.Access.Level2 == "" && cfg.Access.Level1 == "" {
		log.Warn().Msg("ningún PW_* configurado: /api/inventory responderá siempre 401")
	}

	ctx := context.Background()
	store, err := kvstore.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("abrir almacén")
	}
	defer store.Close()

	reader := inventory.NewReader(store, cfg.Store.Key, log)
	catalogUC := inventory.NewCatalogUseCase(reader, access.Secrets{
		Admin:  cfg.Access.Admin,
		Level3: cfg.Access.Level3,
		Level2: cfg.Access.Level2,
		Level1: cfg.Access.Level1,
	})

	app := httpRouter.NewApp(cfg.App.Name)
	httpRouter.Router(app, httpRouter.RouterDeps{
		Catalog:     catalogUC,
		Log:         log,
		SwaggerFile: cfg.Docs.SwaggerFile,
	})

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
