package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/application/auth"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/application/receipts"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/application/usecase"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain/entity"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain/repository"
	infrapdf "github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/infrastructure/pdf"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/infrastructure/postgres"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/infrastructure/sqlite"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/infrastructure/storage"
	httpRouter "github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/interfaces/http"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/observability"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/pkg/config"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db", cfg.DB.Driver).
		Str("pdf", cfg.Receipt.Engine).
		Msg("iniciando aplicação")

	ctx := context.Background()
	employeeRepo, closeDB := openEmployeeStore(ctx, cfg, log)
	defer closeDB()

	tpl, err := infrapdf.LoadTemplate(cfg.Receipt.TemplatePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Receipt.TemplatePath).Msg("template do recibo")
	}
	var renderer receipts.ReceiptRenderer
	switch cfg.Receipt.Engine {
	case "gotenberg":
		renderer = infrapdf.NewGotenbergRenderer(cfg.Receipt.GotenbergURL, tpl, nil)
	default:
		renderer = infrapdf.NewMarotoRenderer(tpl)
	}

	metrics := observability.NewMetrics()
	scratch := storage.NewOSScratchDir(cfg.Receipt.ScratchDir)
	company := entity.Company{Name: cfg.Company.Name, TaxID: cfg.Company.CNPJ, City: cfg.Company.City}

	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	batchUC := receipts.NewBatchUseCase(employeeRepo, renderer, scratch, company,
		log.Component("recibos"), receipts.WithMetrics(metrics))
	authUC := auth.NewAuthUseCase(
		auth.Credentials{User: cfg.Auth.User, PasswordHash: cfg.Auth.PasswordHash},
		auth.JWTConfig{Secret: cfg.JWT.Secret, ExpMinutes: cfg.JWT.Expiration, Issuer: cfg.JWT.Issuer},
	)
	if !authUC.Enabled() {
		log.Warn().Msg("JWT_SECRET vazio: API sem autenticação")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Minute * 5, // lotes grandes com Gotenberg
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))
	app.Use(metrics.Middleware())

	// Swagger UI: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.DocsPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.DocsPath,
			Path:     "docs",
			Title:    "Gerador de Recibos API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		EmployeeUC: employeeUC,
		BatchUC:    batchUC,
		Files:      scratch,
		AuthUC:     authUC,
	})

	// Frontend estático opcional (registrado por último para não encobrir /api)
	if cfg.HTTP.StaticDir != "" {
		app.Static("/", cfg.HTTP.StaticDir)
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}

// openEmployeeStore abre o store conforme DB_DRIVER e devolve a função de fechamento.
func openEmployeeStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.EmployeeRepository, func()) {
	switch cfg.DB.Driver {
	case "sqlite":
		db, err := sqlite.Open(cfg.DB.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Msg("conexão SQLite")
		}
		return sqlite.NewEmployeeRepository(db), func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexão PostgreSQL")
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("schema PostgreSQL")
		}
		return postgres.NewEmployeeRepository(pool), pool.Close
	}
}
