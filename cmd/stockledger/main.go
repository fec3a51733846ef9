package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"stockledger/internal/config"
	"stockledger/internal/http/handlers"
	applog "stockledger/internal/log"
	"stockledger/internal/repos"
	"stockledger/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			applog.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Auth wiring
	sessionRepo := repos.NewSessionRepo(db)
	authSvc, err := services.NewAuthService(sessionRepo, cfg.AdminPassword)
	if err != nil {
		log.Fatal(err)
	}
	authH := &handlers.AuthHandler{Auth: authSvc}

	// Templates & app
	engine := html.New("./web/templates", ".html")
	engine.AddFunc("daysSince", handlers.DaysSince)
	engine.AddFunc("daysUntil", handlers.DaysUntil)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals; best-effort render
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		Next: func(c *fiber.Ctx) bool {
			// The payment endpoint takes JSON, not form posts.
			return c.Is("json")
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", map[string]any{"form": c.FormValue("csrf")})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	app.Static("/static", "./web/static")

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cfg)
	gate := handlers.RequireLogin(authSvc)

	app.Get("/", func(c *fiber.Ctx) error {
		if !authSvc.LoggedIn(c.Cookies("sid")) {
			return c.Redirect("/login")
		}
		return c.Redirect("/dashboard")
	})

	// Auth routes (login throttled)
	app.Get("/login", authH.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Too many attempts. Please try again later."})
		},
	}), authH.Login)
	app.Post("/logout", gate, authH.Logout)

	// Stock ledger
	app.Get("/dashboard", gate, deps.DashboardHandler.Summary)
	app.Get("/stock", gate, deps.StockHandler.List)
	app.Get("/products/new", gate, deps.StockHandler.NewForm)
	app.Post("/products/new", gate, deps.StockHandler.Create)
	app.Get("/products/:id/edit", gate, deps.StockHandler.EditForm)
	app.Post("/products/:id/edit", gate, deps.StockHandler.Update)
	app.Post("/products/:id/delete", gate, deps.StockHandler.Delete)

	// Reports
	app.Get("/expiry-alerts", gate, deps.ReportHandler.ExpiryAlerts)
	app.Get("/pending-suppliers", gate, deps.ReportHandler.PendingSuppliers)
	app.Get("/export/stock.csv", gate, deps.ReportHandler.ExportStock)
	app.Get("/export/pending.csv", gate, deps.ReportHandler.ExportPending)

	// Payments
	app.Post("/payments/:id", gate, deps.PaymentHandler.Process)
	app.Post("/payments/:id/mark-paid", gate, deps.PaymentHandler.MarkPaid)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
