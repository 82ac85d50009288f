package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lbcompany/inventario-api/internal/application/audit"
	"github.com/lbcompany/inventario-api/internal/application/auth"
	"github.com/lbcompany/inventario-api/internal/application/documents"
	"github.com/lbcompany/inventario-api/internal/application/inventory"
	"github.com/lbcompany/inventario-api/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC *inventory.UseCase
	DocumentsUC *documents.UseCase
	ReportUC    *report.UseCase
	AuditUC     *audit.UseCase
	AuthUC      *auth.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Inventario
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv := protected.Group("/inventory")
	inv.Get("/", inventoryHandler.List)
	inv.Post("/", inventoryHandler.Create)
	inv.Put("/:id", inventoryHandler.Update)
	inv.Delete("/:id", inventoryHandler.Delete)

	// Reporte
	reportHandler := NewReportHandler(deps.ReportUC)
	inv.Post("/report", reportHandler.Generate)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboard.Get("/summary", inventoryHandler.Summary)

	// Documentos
	documentsHandler := NewDocumentsHandler(deps.DocumentsUC)
	docs := protected.Group("/documents")
	docs.Get("/", documentsHandler.List)
	docs.Post("/", documentsHandler.Upload)
	docs.Get("/:id/download", documentsHandler.Download)
	docs.Delete("/:id", documentsHandler.Delete)

	// Bitácora
	logsHandler := NewLogsHandler(deps.AuditUC)
	protected.Get("/logs", logsHandler.List)
}
