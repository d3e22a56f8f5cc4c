package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"business-directory-platform/internal/config"
	"business-directory-platform/internal/handlers"
	"business-directory-platform/internal/middleware"
	"business-directory-platform/internal/services"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Create session store
	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))

	// Configure session options
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30, // 30 days
		HttpOnly: true,
		Secure:   cfg.Server.Env == "production",
		SameSite: http.SameSiteLaxMode,
	}

	// Initialize services
	companyService := services.NewCompanyService()
	emailService := services.NewMockEmailService(&cfg.Resend)
	paymentService := services.NewMockPaymentService(&cfg.Paystack)
	notifier := services.NewCartNotifier()

	checkoutService := services.NewCheckoutService(
		sessionStore,
		emailService,
		paymentService,
		time.Duration(cfg.Checkout.SendTimeoutSeconds)*time.Second,
	)

	// Initialize handlers
	publicHandler := handlers.NewPublicHandler(companyService, emailService)
	companyHandler := handlers.NewCompanyHandler(companyService, sessionStore, notifier)
	cartHandler := handlers.NewCartHandler(sessionStore, notifier)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, sessionStore, notifier)

	// Rate limit code issuance endpoints
	codeLimiter := middleware.NewRateLimiter(
		cfg.Checkout.ResendMaxAttempts,
		time.Duration(cfg.Checkout.ResendWindowMinutes)*time.Minute,
	)

	// Set up router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.CORSMiddleware(middleware.DefaultCORSConfig()))

	r.Route("/api", func(r chi.Router) {
		r.Get("/search", publicHandler.Search)
		r.Post("/investigations", publicHandler.RequestInvestigation)

		r.Route("/companies/{id}", func(r chi.Router) {
			r.Get("/", companyHandler.GetCompany)
			r.Post("/cart", companyHandler.AddToCart)
			r.Post("/custom-report", publicHandler.RequestCustomReport)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.ViewCart)
			r.Get("/count", cartHandler.CartCount)
			r.Delete("/", cartHandler.ClearCart)
			r.Delete("/items/{id}", cartHandler.RemoveItem)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/", checkoutHandler.StartCheckout)
			r.With(codeLimiter.Limit).Post("/email", checkoutHandler.SubmitEmail)
			r.Post("/code", checkoutHandler.SubmitCode)
			r.With(codeLimiter.Limit).Post("/resend", checkoutHandler.ResendCode)
			r.Post("/back", checkoutHandler.Back)
			r.Post("/confirm", checkoutHandler.ConfirmPayment)
			r.Delete("/", checkoutHandler.CancelCheckout)
		})
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on http://%s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
