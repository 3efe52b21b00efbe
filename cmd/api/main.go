package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/gestion360-api/internal/application/analytics"
	"github.com/jhoicas/gestion360-api/internal/application/auth"
	"github.com/jhoicas/gestion360-api/internal/application/session"
	"github.com/jhoicas/gestion360-api/internal/application/usecase"
	"github.com/jhoicas/gestion360-api/internal/domain/repository"
	"github.com/jhoicas/gestion360-api/internal/infrastructure/localstore"
	infrapdf "github.com/jhoicas/gestion360-api/internal/infrastructure/pdf"
	"github.com/jhoicas/gestion360-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/gestion360-api/internal/interfaces/http"
	"github.com/jhoicas/gestion360-api/pkg/config"
	"github.com/jhoicas/gestion360-api/pkg/logger"
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
		Str("driver", cfg.Store.Driver).
		Msg("iniciando aplicación")

	var (
		productRepo  repository.ProductRepository
		customerRepo repository.CustomerRepository
		txRepo       repository.TransactionRepository
		userRepo     repository.UserRepository
	)

	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		productRepo = postgres.NewProductRepository(pool)
		customerRepo = postgres.NewCustomerRepository(pool)
		txRepo = postgres.NewTransactionRepository(pool)
		userRepo = postgres.NewUserRepository(pool)
	default:
		store, err := localstore.Open(cfg.Store.DataDir, log)
		if err != nil {
			log.Fatal().Err(err).Str("dir", cfg.Store.DataDir).Msg("abrir almacenamiento local")
		}
		productRepo = store.Products()
		customerRepo = store.Customers()
		txRepo = store.Transactions()
		userRepo = store.Users()
	}

	holder := session.NewHolder()
	holder.Clear() // sin token previo, arranca sin sesión

	authUC := auth.NewAuthUseCase(userRepo, holder, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	transactionUC := usecase.NewTransactionUseCase(txRepo)
	userUC := usecase.NewUserUseCase(userRepo, holder)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	analyticsUC := analytics.NewAnalyticsUseCase(txRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ProductUC:     productUC,
		CustomerUC:    customerUC,
		TransactionUC: transactionUC,
		UserUC:        userUC,
		AnalyticsUC:   analyticsUC,
		UserRepo:      userRepo,
		JWTSecret:     cfg.JWT.Secret,
	})

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
