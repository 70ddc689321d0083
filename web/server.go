package web

import (
	"fmt"
	"log"
	"time"

	"github.com/Alas-3/syrincal-system/auth"
	"github.com/Alas-3/syrincal-system/config"
	"github.com/Alas-3/syrincal-system/models"
	"github.com/Alas-3/syrincal-system/web/handlers"
	"github.com/Alas-3/syrincal-system/web/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
)

// Server represents the web server
type Server struct {
	app *fiber.App
}

// NewServer creates a new Fiber server
func NewServer(cfg *config.Config) *Server {
	engine := html.New("./web/templates", ".html")
	engine.Reload(cfg.App.Environment == "development")

	engine.AddFunc("formatDate", func(t time.Time) string {
		return t.Format("02 Jan 2006")
	})
	engine.AddFunc("formatDateYMD", func(t time.Time) string {
		return t.Format("2006-01-02")
	})
	engine.AddFunc("formatOptionalDate", func(t *time.Time) string {
		if t == nil || t.IsZero() {
			return "—"
		}
		return t.Format("02 Jan 2006")
	})
	engine.AddFunc("formatOptionalDateYMD", func(t *time.Time) string {
		if t == nil || t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02")
	})
	engine.AddFunc("formatCurrency", func(amount float64) string {
		return fmt.Sprintf("₱%.2f", amount)
	})
	engine.AddFunc("formatDuration", func(d time.Duration) string {
		if d < time.Millisecond {
			return fmt.Sprintf("%.2fµs", float64(d.Nanoseconds())/1000)
		}
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1000000)
	})
	engine.AddFunc("add", func(a, b int) int { return a + b })
	engine.AddFunc("sub", func(a, b int) int { return a - b })
	engine.AddFunc("lineTotal", func(qty int, price float64) float64 {
		return float64(qty) * price
	})

	app := fiber.New(fiber.Config{
		Views:       engine,
		AppName:     "Syrincal Trading",
		ReadTimeout: 30 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("ERROR [%s %s]: %v", c.Method(), c.Path(), err)

			if c.Accepts("html", "json") == "json" {
				return c.Status(code).JSON(fiber.Map{
					"error": err.Error(),
				})
			}

			return c.Status(code).Render("pages/error", fiber.Map{
				"Title":           "Error",
				"Active":          "",
				"Error":           err.Error(),
				"Code":            code,
				"SQLQueries":      c.Locals("SQLQueries"),
				"TotalSQLQueries": c.Locals("TotalSQLQueries"),
			}, "layouts/base")
		},
	})

	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
	}))

	// Inject per-request SQL logs for the debug panel
	app.Use(middleware.SQLDebugMiddleware())

	// Method override for HTML forms
	app.Use(func(c *fiber.Ctx) error {
		if c.Method() == "POST" {
			if method := c.FormValue("_method"); method != "" {
				c.Method(method)
			}
		}
		return c.Next()
	})

	app.Static("/static", "./web/static")

	sessions := auth.NewSessionManager(cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.SessionHours)*time.Hour)
	middleware.InitAuth(sessions, cfg.Auth.CookieName)

	setupRoutes(app)

	return &Server{app: app}
}

// Start starts the server
func (s *Server) Start(port string) error {
	log.Printf("Server starting on http://localhost:%s", port)
	return s.app.Listen(":" + port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App) {
	// Login flow is the only unauthenticated surface
	app.Get("/login", handlers.LoginPage)
	app.Post("/login", handlers.LoginSubmit)
	app.Get("/logout", handlers.Logout)
	app.Post("/logout", handlers.Logout)

	app.Use(middleware.RequireAuth())

	backOffice := middleware.RequireRole(models.RoleAdmin, models.RoleManager)

	// Dashboard
	app.Get("/", backOffice, handlers.HomePage)

	// Debug endpoint for SQL logs
	app.Get("/api/debug/sql", backOffice, handlers.GetSQLLogs)
	app.Delete("/api/debug/sql", backOffice, handlers.ClearSQLLogs)

	// Product batches
	products := app.Group("/products", backOffice)
	products.Get("/", handlers.ProductList)
	products.Get("/new", handlers.ProductNew)
	products.Post("/", handlers.ProductCreate)
	products.Get("/:id/edit", handlers.ProductEdit)
	products.Put("/:id", handlers.ProductUpdate)
	products.Delete("/:id", handlers.ProductDelete)

	// Sales
	sales := app.Group("/sales", backOffice)
	sales.Get("/", handlers.SalesList)
	sales.Get("/new", handlers.SaleNew)
	sales.Post("/", handlers.SaleCreate)
	sales.Get("/:id/edit", handlers.SaleEdit)
	sales.Put("/:id", handlers.SaleUpdate)
	sales.Delete("/:id", handlers.SaleDelete)

	// Inventory overview
	app.Get("/inventory", backOffice, handlers.InventoryOverview)

	// Reports
	app.Get("/reports", backOffice, handlers.ReportsOverview)

	// Client directory
	clients := app.Group("/clients", backOffice)
	clients.Get("/", handlers.ClientList)
	clients.Get("/new", handlers.ClientNew)
	clients.Post("/", handlers.ClientCreate)
	clients.Get("/:id/edit", handlers.ClientEdit)
	clients.Put("/:id", handlers.ClientUpdate)
	clients.Delete("/:id", handlers.ClientDelete)

	// Storefront: every authenticated role may browse
	app.Get("/shop", handlers.Storefront)
}
