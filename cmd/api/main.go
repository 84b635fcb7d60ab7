package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"cvalchemist/resume-analyzer/internal/cache"
	"cvalchemist/resume-analyzer/internal/config"
	"cvalchemist/resume-analyzer/internal/handlers"
	"cvalchemist/resume-analyzer/internal/services"
)

func main() {
	// Load configuration and startup secrets
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize the result store
	var store cache.ResultStore
	if cfg.Cache.DatabaseURL != "" {
		pgStore, err := cache.NewPostgresStore(cfg.Cache.DatabaseURL)
		if err != nil {
			log.Fatalf("❌ Failed to initialize result store: %v", err)
		}
		store = pgStore
		log.Println("✅ Shared result store initialized")
	} else {
		store = cache.NewMemoryStore()
		log.Println("✅ In-memory result store initialized (single instance only)")
	}

	// Initialize Gemini
	llm, err := services.NewGeminiClient(cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}
	log.Println("✅ Gemini initialized successfully")

	// Initialize services
	extractor := services.NewTextExtractor()
	analyzer := services.NewAnalyzerService(extractor, llm, store)
	generator := services.NewDocumentGenerator()

	payments := services.NewStripeCheckout(cfg.Stripe.APIKey)
	if cfg.Stripe.APIKey == "" {
		log.Println("⚠️  STRIPE_API_KEY not set, checkout disabled")
	}

	mailer := services.NewSMTPMailer(cfg.Mail)
	if !cfg.Mail.Complete() {
		log.Println("⚠️  Mail configuration incomplete, contact form disabled")
	}
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	homeHandler := handlers.NewHomeHandler(cfg.Server.IndexPath)
	analyzeHandler := handlers.NewAnalyzeHandler(analyzer)
	resultHandler := handlers.NewResultHandler(store)
	rewriteHandler := handlers.NewRewriteHandler(analyzer)
	downloadHandler := handlers.NewDownloadHandler(generator)
	checkoutHandler := handlers.NewCheckoutHandler(payments)
	contactHandler := handlers.NewContactHandler(mailer)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	app.Get("/", homeHandler.HandleIndex)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	app.Get("/result/:id", resultHandler.HandleGetResult)
	app.Post("/analyze", analyzeHandler.HandleAnalyze)
	app.Post("/rewrite", rewriteHandler.HandleRewrite)
	app.Get("/contact", contactHandler.HandleContactForm)
	app.Post("/contact", contactHandler.HandleContactSubmit)
	app.Post("/create-checkout-session", checkoutHandler.HandleCreateCheckoutSession)
	app.Post("/download-pdf", downloadHandler.HandleDownloadPDF)
	app.Post("/download-docx", downloadHandler.HandleDownloadDOCX)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"detail": err.Error(),
	})
}
