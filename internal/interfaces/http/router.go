package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion360-api/internal/application/analytics"
	"github.com/jhoicas/gestion360-api/internal/application/auth"
	"github.com/jhoicas/gestion360-api/internal/application/usecase"
	"github.com/jhoicas/gestion360-api/internal/domain/entity"
	"github.com/jhoicas/gestion360-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ProductUC     *usecase.ProductUseCase
	CustomerUC    *usecase.CustomerUseCase
	TransactionUC *usecase.TransactionUseCase
	UserUC        *usecase.UserUseCase
	AnalyticsUC   *analytics.AnalyticsUseCase
	UserRepo      repository.UserRepository
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.LoginPIN)
	authGroup.Post("/login-email", authHandler.LoginEmail)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/session", authHandler.Session)
	authGroup.Get("/profile", AuthMiddleware(deps.JWTSecret), authHandler.Profile)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Inventario (flag inventory)
	products := protected.Group("/products", RequirePermission(ModuleInventory, deps.UserRepo))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Clientes (flag customers)
	customers := protected.Group("/customers", RequirePermission(ModuleCustomers, deps.UserRepo))
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Ventas y gastos (flag sales; el delete además exige rol admin)
	transactions := protected.Group("/transactions", RequirePermission(ModuleSales, deps.UserRepo))
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/grouped", transactionHandler.ListGrouped)
	transactions.Get("/:id", transactionHandler.GetByID)
	transactions.Put("/:id", transactionHandler.Update)
	transactions.Delete("/:id", RequireRole(entity.RoleAdmin), transactionHandler.Delete)

	// Perfiles (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Resumen de inicio (sin flag propio; lo ve cualquier perfil autenticado)
	dashboardHandler := NewDashboardHandler(deps.AnalyticsUC)
	protected.Get("/dashboard", dashboardHandler.Get)

	// Reportes (flag reports)
	reports := protected.Group("/reports", RequirePermission(ModuleReports, deps.UserRepo))
	reportHandler := NewReportHandler(deps.AnalyticsUC)
	reports.Get("/", reportHandler.Get)
	reports.Get("/export", reportHandler.Export)
}
