package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-inventory-api/internal/handler"
	"go-inventory-api/internal/middleware"
	"go-inventory-api/internal/model"
	"go-inventory-api/internal/policy"
	"go-inventory-api/internal/repository"
	"go-inventory-api/internal/service"
	"go-inventory-api/internal/ws"
	"go-inventory-api/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup database
	db := database.ConnectDB()
	db.AutoMigrate(&model.Role{}, &model.User{}, &model.Product{}, &model.Supplier{}, &model.Transaction{})

	// 3. Seed default roles and admin user
	seedRolesAndAdmin(db)

	// 4. Setup WebSocket hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency injection (wiring layers)
	roleRepo := repository.NewRoleRepo(db)
	userRepo := repository.NewUserRepo(db)
	productRepo := repository.NewProductRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	txRepo := repository.NewTransactionRepo(db)

	authService := service.NewAuthService(userRepo, roleRepo)
	userService := service.NewUserService(userRepo, roleRepo)
	productService := service.NewProductService(productRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	ledgerService := service.NewLedgerService(productRepo, txRepo, db, wsHub)
	statsService := service.NewStatsService(productRepo, txRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService, statsService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	txHandler := handler.NewTransactionHandler(ledgerService, txRepo)
	dashHandler := handler.NewDashboardHandler(statsService)
	roleHandler := handler.NewRoleHandler(roleRepo)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Inventory API v1.0",
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	protected.Post("/auth/logout", authHandler.Logout)

	// Self-service profile
	protected.Get("/users/me", userHandler.Me)
	protected.Put("/users/me", userHandler.UpdateMe)

	// User management
	protected.Get("/users", middleware.RequirePermission(policy.UserView), userHandler.GetUsers)
	protected.Get("/users/:id", middleware.RequirePermission(policy.UserView), userHandler.GetUser)
	protected.Post("/users", middleware.RequirePermission(policy.UserManage), userHandler.CreateUser)
	protected.Put("/users/:id", middleware.RequirePermission(policy.UserManage), userHandler.UpdateUser)
	protected.Delete("/users/:id", middleware.RequirePermission(policy.UserManage), userHandler.DeleteUser)

	// Roles
	protected.Get("/roles", middleware.RequirePermission(policy.RoleView), roleHandler.GetRoles)
	protected.Post("/roles", middleware.RequirePermission(policy.RoleManage), roleHandler.CreateRole)
	protected.Put("/roles/:id", middleware.RequirePermission(policy.RoleManage), roleHandler.UpdateRole)
	protected.Delete("/roles/:id", middleware.RequirePermission(policy.RoleManage), roleHandler.DeleteRole)

	// Products
	protected.Get("/products", middleware.RequirePermission(policy.ProductView), productHandler.GetProducts)
	protected.Get("/products/low-stock", middleware.RequirePermission(policy.ProductView), productHandler.GetLowStock)
	protected.Get("/products/:id", middleware.RequirePermission(policy.ProductView), productHandler.GetProduct)
	protected.Get("/products/:id/stats", middleware.RequirePermission(policy.ProductView), productHandler.GetProductStats)
	protected.Post("/products", middleware.RequirePermission(policy.ProductManage), productHandler.CreateProduct)
	protected.Put("/products/:id", middleware.RequirePermission(policy.ProductManage), productHandler.UpdateProduct)
	protected.Delete("/products/:id", middleware.RequirePermission(policy.ProductManage), productHandler.DeleteProduct)

	// Suppliers
	protected.Get("/suppliers", middleware.RequirePermission(policy.SupplierView), supplierHandler.GetSuppliers)
	protected.Get("/suppliers/stats", middleware.RequirePermission(policy.SupplierView), supplierHandler.GetSupplierStats)
	protected.Get("/suppliers/:id", middleware.RequirePermission(policy.SupplierView), supplierHandler.GetSupplier)
	protected.Post("/suppliers", middleware.RequirePermission(policy.SupplierManage), supplierHandler.CreateSupplier)
	protected.Put("/suppliers/:id", middleware.RequirePermission(policy.SupplierManage), supplierHandler.UpdateSupplier)
	protected.Delete("/suppliers/:id", middleware.RequirePermission(policy.SupplierManage), supplierHandler.DeleteSupplier)

	// Transactions (ledger)
	protected.Get("/transactions", middleware.RequirePermission(policy.TransactionView), txHandler.GetTransactions)
	protected.Get("/transactions/recent", middleware.RequirePermission(policy.TransactionView), txHandler.GetRecent)
	protected.Get("/transactions/mine", middleware.RequirePermission(policy.TransactionView), txHandler.GetMine)
	protected.Get("/transactions/:id", middleware.RequirePermission(policy.TransactionView), txHandler.GetTransaction)
	protected.Post("/transactions", middleware.RequirePermission(policy.TransactionCreate), txHandler.CreateTransaction)

	// Dashboard and charts
	protected.Get("/dashboard/stats", middleware.RequirePermission(policy.DashboardView), dashHandler.GetDashboardStats)
	protected.Get("/dashboard/inventory", middleware.RequirePermission(policy.DashboardView), dashHandler.GetInventoryOverview)
	protected.Get("/charts/product/:id", middleware.RequirePermission(policy.DashboardView), dashHandler.GetProductChart)
	protected.Get("/charts/inventory-overview", middleware.RequirePermission(policy.DashboardView), dashHandler.GetInventoryChart)
	protected.Get("/charts/category-distribution", middleware.RequirePermission(policy.DashboardView), dashHandler.GetCategoryDistribution)

	// WebSocket route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedRolesAndAdmin creates the default roles and an admin user if absent
func seedRolesAndAdmin(db *gorm.DB) {
	roleRepo := repository.NewRoleRepo(db)
	userRepo := repository.NewUserRepo(db)

	if err := roleRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed roles: %v", err)
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@example.com"
	}

	if _, err := userRepo.FindByEmail(adminEmail); err == nil {
		return
	}

	adminRole, err := roleRepo.FindByCode(model.RoleAdmin)
	if err != nil {
		log.Printf("Warning: ADMIN role missing, skipping admin seed: %v", err)
		return
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	admin := &model.User{
		Email:     adminEmail,
		FirstName: "Administrator",
		RoleID:    &adminRole.ID,
		IsActive:  true,
	}
	if err := admin.SetPassword(adminPassword); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Printf("Admin user created: %s (ADMIN)", adminEmail)
	}
}
