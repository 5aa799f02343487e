package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-bengkel-api/internal/handler"
	"go-bengkel-api/internal/model"
	"go-bengkel-api/internal/repository"
	"go-bengkel-api/internal/service"
	"go-bengkel-api/internal/ws"
	"go-bengkel-api/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto Migrate (Hati-hati di production, sebaiknya pakai tools migrasi terpisah)
	db.AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.Customer{},
		&model.Supplier{},
		&model.Transaction{},
		&model.TransactionItem{},
		&model.Payment{},
		&model.Receivable{},
		&model.ReceivablePayment{},
		&model.Payable{},
		&model.PayablePayment{},
		&model.Expense{},
	)

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	receivableRepo := repository.NewReceivableRepo(db)
	payableRepo := repository.NewPayableRepo(db)
	expenseRepo := repository.NewExpenseRepo(db)

	catalogService := service.NewCatalogService(productRepo, categoryRepo, db, wsHub)
	partyService := service.NewPartyService(customerRepo, supplierRepo)
	ledgerService := service.NewLedgerService(productRepo, txRepo, receivableRepo, payableRepo, db, wsHub)
	debtService := service.NewDebtService(receivableRepo, payableRepo, customerRepo, supplierRepo, db, wsHub)
	expenseService := service.NewExpenseService(expenseRepo)
	reportService := service.NewReportService(txRepo, productRepo, expenseRepo, receivableRepo, payableRepo)
	dashService := service.NewDashboardService(productRepo, txRepo, receivableRepo, payableRepo)

	catalogHandler := handler.NewCatalogHandler(catalogService)
	partyHandler := handler.NewPartyHandler(partyService)
	txHandler := handler.NewTransactionHandler(ledgerService)
	debtHandler := handler.NewDebtHandler(debtService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	reportHandler := handler.NewReportHandler(reportService)
	dashHandler := handler.NewDashboardHandler(dashService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Bengkel Manager API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	api := app.Group("/api/v1")

	// Catalog
	api.Get("/products", catalogHandler.GetProducts)
	api.Post("/products", catalogHandler.CreateProduct)
	api.Get("/products/:id", catalogHandler.GetProduct)
	api.Put("/products/:id", catalogHandler.UpdateProduct)
	api.Delete("/products/:id", catalogHandler.DeleteProduct)

	api.Get("/categories", catalogHandler.GetCategories)
	api.Post("/categories", catalogHandler.CreateCategory)
	api.Get("/categories/:id", catalogHandler.GetCategory)
	api.Put("/categories/:id", catalogHandler.UpdateCategory)
	api.Delete("/categories/:id", catalogHandler.DeleteCategory)

	// Parties
	api.Get("/customers", partyHandler.GetCustomers)
	api.Post("/customers", partyHandler.CreateCustomer)
	api.Get("/customers/:id", partyHandler.GetCustomer)
	api.Put("/customers/:id", partyHandler.UpdateCustomer)
	api.Delete("/customers/:id", partyHandler.DeleteCustomer)

	api.Get("/suppliers", partyHandler.GetSuppliers)
	api.Post("/suppliers", partyHandler.CreateSupplier)
	api.Get("/suppliers/:id", partyHandler.GetSupplier)
	api.Put("/suppliers/:id", partyHandler.UpdateSupplier)
	api.Delete("/suppliers/:id", partyHandler.DeleteSupplier)

	// Ledger
	api.Get("/transactions", txHandler.GetTransactions)
	api.Post("/transactions", txHandler.CreateTransaction)
	api.Get("/transactions/:id", txHandler.GetTransaction)
	api.Delete("/transactions/:id", txHandler.DeleteTransaction)
	api.Get("/transactions/:id/payments", txHandler.GetPayments)
	api.Post("/transactions/:id/payments", txHandler.CreatePayment)

	// Receivables / Payables
	api.Get("/receivables", debtHandler.GetReceivables)
	api.Post("/receivables", debtHandler.CreateReceivable)
	api.Get("/receivables/:id", debtHandler.GetReceivable)
	api.Delete("/receivables/:id", debtHandler.DeleteReceivable)
	api.Get("/receivables/:id/payments", debtHandler.GetReceivablePayments)
	api.Post("/receivables/:id/payments", debtHandler.CreateReceivablePayment)

	api.Get("/payables", debtHandler.GetPayables)
	api.Post("/payables", debtHandler.CreatePayable)
	api.Get("/payables/:id", debtHandler.GetPayable)
	api.Delete("/payables/:id", debtHandler.DeletePayable)
	api.Get("/payables/:id/payments", debtHandler.GetPayablePayments)
	api.Post("/payables/:id/payments", debtHandler.CreatePayablePayment)

	// Expenses
	api.Get("/expenses", expenseHandler.GetExpenses)
	api.Post("/expenses", expenseHandler.CreateExpense)
	api.Get("/expenses/:id", expenseHandler.GetExpense)
	api.Put("/expenses/:id", expenseHandler.UpdateExpense)
	api.Delete("/expenses/:id", expenseHandler.DeleteExpense)

	// Reports
	api.Get("/reports/sales", reportHandler.SalesReport)
	api.Get("/reports/purchases", reportHandler.PurchasesReport)
	api.Get("/reports/profit", reportHandler.ProfitReport)
	api.Get("/reports/stock", reportHandler.StockReport)
	api.Get("/reports/expenses", reportHandler.ExpensesReport)
	api.Get("/reports/debts", reportHandler.DebtsReport)

	// Dashboard
	api.Get("/dashboard/stats", dashHandler.GetStats)
	api.Get("/dashboard/stock-movement", dashHandler.GetStockMovement)

	// WebSocket Route
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

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
