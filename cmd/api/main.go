// cmd/api/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/sam23121/car-detailing/internal/config"
	"github.com/sam23121/car-detailing/internal/database"
	"github.com/sam23121/car-detailing/internal/handler"
	"github.com/sam23121/car-detailing/internal/logging"
	"github.com/sam23121/car-detailing/internal/notify"
	"github.com/sam23121/car-detailing/internal/repository"
	"github.com/sam23121/car-detailing/internal/service"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()
	log := logging.New(cfg.Environment)
	defer func() { _ = log.Sync() }()

	if cfg.AdminSecret == "" {
		log.Warn("ADMIN_SECRET is not set: admin endpoints are open to everyone")
	}

	// ── 1. Connect to PostgreSQL, migrate, seed ──────────────────────────
	pool, err := database.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatal("database", zap.Error(err))
	}
	defer pool.Close()
	log.Info("connected to postgres")

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatal("migrations", zap.Error(err))
	}
	if cfg.SeedOnStart {
		if err := database.Seed(ctx, pool); err != nil {
			// Don't crash on a failed seed; the API still works without it.
			log.Warn("startup seed failed", zap.Error(err))
		}
	}

	// ── 2. Wire up layers ────────────────────────────────────────────────
	customerRepo := repository.NewCustomerRepository(pool)
	serviceRepo := repository.NewServiceRepository(pool)
	slotRepo := repository.NewSlotRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)
	contentRepo := repository.NewContentRepository(pool)

	var emailSender notify.EmailSender
	if s := notify.NewResendSender(cfg.Notify.ResendAPIKey, cfg.Notify.ResendFrom); s != nil {
		emailSender = s
	}
	var smsSender notify.SMSSender
	if s := notify.NewTwilioSender(cfg.Notify.TwilioSID, cfg.Notify.TwilioToken, cfg.Notify.TwilioFrom); s != nil {
		smsSender = s
	}
	dispatcher := notify.NewDispatcher(bookingRepo, emailSender, smsSender,
		cfg.Notify.OwnerEmail, cfg.Notify.OwnerPhone, log)

	availabilitySvc := service.NewAvailabilityService(slotRepo)
	bookingSvc := service.NewBookingService(bookingRepo, customerRepo, serviceRepo, dispatcher)
	customerSvc := service.NewCustomerService(customerRepo)
	catalogSvc := service.NewCatalogService(serviceRepo)
	reviewSvc := service.NewReviewService(reviewRepo)
	contentSvc := service.NewContentService(contentRepo)

	gate := handler.NewAdminGate(cfg.AdminSecret)
	availabilityHandler := handler.NewAvailabilityHandler(availabilitySvc, gate)
	bookingHandler := handler.NewBookingHandler(bookingSvc)
	customerHandler := handler.NewCustomerHandler(customerSvc)
	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	reviewHandler := handler.NewReviewHandler(reviewSvc)
	contentHandler := handler.NewContentHandler(contentSvc)

	// ── 3. Build the router ───────────────────────────────────────────────
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(handler.AccessLog(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Admin-Secret"},
	}))

	r.Get("/health", handler.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Route("/availability", func(r chi.Router) {
			r.Get("/", availabilityHandler.List)
			r.With(gate.Require).Post("/", availabilityHandler.Create)
			r.With(gate.Require).Delete("/{id}", availabilityHandler.Delete)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", bookingHandler.Create)
			r.Post("/multi", bookingHandler.CreateMulti)
			r.With(gate.Require).Get("/with-details", bookingHandler.ListWithDetails)
			r.Get("/customer/{id}", bookingHandler.ListByCustomer)
			r.Get("/{id}", bookingHandler.Get)
			r.Put("/{id}", bookingHandler.Update)
			r.With(gate.Require).Delete("/{id}", bookingHandler.Delete)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Post("/", customerHandler.Create)
			r.Get("/", customerHandler.List)
			r.Get("/{id}", customerHandler.Get)
			r.Put("/{id}", customerHandler.Update)
			r.Delete("/{id}", customerHandler.Delete)
		})

		r.Route("/services", func(r chi.Router) {
			r.Post("/", catalogHandler.CreateService)
			r.Get("/", catalogHandler.ListServices)
			r.Get("/slug/{slug}", catalogHandler.GetServiceBySlug)
			r.Get("/{id}", catalogHandler.GetService)
			r.Put("/{id}", catalogHandler.UpdateService)
			r.Delete("/{id}", catalogHandler.DeleteService)
			r.Get("/{id}/packages", catalogHandler.ListServicePackages)
			r.Post("/{id}/packages", catalogHandler.CreatePackage)
		})

		r.Get("/packages/{id}", catalogHandler.GetPackage)

		r.Route("/reviews", func(r chi.Router) {
			r.Post("/", reviewHandler.Create)
			r.Get("/", reviewHandler.List)
			r.Get("/verified", reviewHandler.ListVerified)
			r.Get("/service/{id}", reviewHandler.ListByService)
			r.Get("/{id}", reviewHandler.Get)
			r.With(gate.Require).Put("/{id}", reviewHandler.Update)
			r.With(gate.Require).Delete("/{id}", reviewHandler.Delete)
		})

		r.Route("/contact", func(r chi.Router) {
			r.Post("/", contentHandler.CreateContactMessage)
			r.With(gate.Require).Get("/", contentHandler.ListContactMessages)
			r.With(gate.Require).Get("/{id}", contentHandler.GetContactMessage)
			r.With(gate.Require).Delete("/{id}", contentHandler.DeleteContactMessage)
		})

		r.Route("/blog", func(r chi.Router) {
			r.With(gate.Require).Post("/", contentHandler.CreateBlogPost)
			r.Get("/", contentHandler.ListBlogPosts)
			r.Get("/slug/{slug}", contentHandler.GetBlogPostBySlug)
			r.Get("/{id}", contentHandler.GetBlogPost)
			r.With(gate.Require).Put("/{id}", contentHandler.UpdateBlogPost)
			r.With(gate.Require).Delete("/{id}", contentHandler.DeleteBlogPost)
		})

		r.Route("/business", func(r chi.Router) {
			r.With(gate.Require).Post("/info", contentHandler.CreateBusinessInfo)
			r.Get("/info", contentHandler.GetBusinessInfo)
			r.With(gate.Require).Put("/info/{id}", contentHandler.UpdateBusinessInfo)
			r.With(gate.Require).Post("/faq", contentHandler.CreateFAQ)
			r.Get("/faq", contentHandler.ListFAQs)
			r.Get("/faq/{id}", contentHandler.GetFAQ)
			r.With(gate.Require).Put("/faq/{id}", contentHandler.UpdateFAQ)
			r.With(gate.Require).Delete("/faq/{id}", contentHandler.DeleteFAQ)
		})
	})

	// ── 4. Start server with graceful shutdown ────────────────────────────
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("graceful shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}
