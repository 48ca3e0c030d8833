package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/application/auth"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/application/receipts"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/application/usecase"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	EmployeeUC *usecase.EmployeeUseCase
	BatchUC    *receipts.BatchUseCase
	Files      FileSource
	AuthUC     *auth.AuthUseCase // sem segredo JWT: rotas /api abertas
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	protected := api
	if deps.AuthUC.Enabled() {
		protected = api.Group("", AuthMiddleware(deps.AuthUC))
	}

	employees := protected.Group("/funcionarios")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	receiptHandler := NewReceiptHandler(deps.BatchUC, deps.Files)
	protected.Post("/recibos/gerar", receiptHandler.Generate)
	protected.Get("/recibos/arquivos/:nome", receiptHandler.Download)
	protected.Get("/periodos/interpretar", receiptHandler.InterpretPeriod)
}
