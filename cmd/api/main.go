package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/lbcompany/inventario-api/internal/application/audit"
	"github.com/lbcompany/inventario-api/internal/application/auth"
	"github.com/lbcompany/inventario-api/internal/application/documents"
	"github.com/lbcompany/inventario-api/internal/application/inventory"
	"github.com/lbcompany/inventario-api/internal/application/report"
	"github.com/lbcompany/inventario-api/internal/infrastructure/backend"
	"github.com/lbcompany/inventario-api/internal/infrastructure/excel"
	infrapdf "github.com/lbcompany/inventario-api/internal/infrastructure/pdf"
	"github.com/lbcompany/inventario-api/internal/infrastructure/storage"
	httpRouter "github.com/lbcompany/inventario-api/internal/interfaces/http"
	"github.com/lbcompany/inventario-api/pkg/config"
	"github.com/lbcompany/inventario-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Montos como números JSON en el wire (el cliente espera numbers, no strings).
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()

	// Selección de backend: una sola vez, para toda la vida del proceso.
	sel, err := backend.Select(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer sel.Close()
	log.Info().Str("backend", sel.Name).Msg("backend de registros seleccionado")

	blobs, err := storage.NewLocal(cfg.Store.UploadsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento de payloads")
	}

	auditUC := audit.New(sel.Store)
	inventoryUC := inventory.New(sel.Store, auditUC)
	documentsUC := documents.New(sel.Store, blobs, auditUC, log)
	reportUC := report.New(
		inventoryUC, sel.Store, blobs, auditUC,
		excel.NewWorkbookRenderer(), infrapdf.NewReportRenderer(),
	)
	authUC := auth.New(sel.Store, auditUC, auth.Config{
		SecurityCode: cfg.Auth.SecurityCode,
		JWTSecret:    cfg.JWT.Secret,
		JWTIssuer:    cfg.JWT.Issuer,
		ExpMinutes:   cfg.JWT.Expiration,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario L&B API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "backend": sel.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC: inventoryUC,
		DocumentsUC: documentsUC,
		ReportUC:    reportUC,
		AuditUC:     auditUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	// Cliente estático (login, dashboard)
	if cfg.HTTP.ClientDir != "" {
		app.Static("/", cfg.HTTP.ClientDir)
	}

	go func() {
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
