package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/michelrahaddad/sitevidah-sub000/internal/config"
	"github.com/michelrahaddad/sitevidah-sub000/internal/entity"
	"github.com/michelrahaddad/sitevidah-sub000/internal/infra/database"
	"github.com/michelrahaddad/sitevidah-sub000/internal/infra/http/handlers"
	"github.com/michelrahaddad/sitevidah-sub000/internal/infra/http/middleware"
	"github.com/michelrahaddad/sitevidah-sub000/internal/infra/mail"
	"github.com/michelrahaddad/sitevidah-sub000/internal/infra/payment"
	"github.com/michelrahaddad/sitevidah-sub000/internal/infra/queue"
	"github.com/michelrahaddad/sitevidah-sub000/internal/infra/worker"
	"github.com/michelrahaddad/sitevidah-sub000/internal/usecase"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitUser, cfg.RabbitPass, cfg.RabbitHost, cfg.RabbitPort)
	if err != nil {
		panic(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositórios e catálogo
	customerRepo := database.NewCustomerRepository(db)
	subRepo := database.NewSubscriptionRepository(db)
	cardRepo := database.NewCardRepository(db)
	leadRepo := database.NewLeadRepository(db)
	dependentRepo := database.NewDependentRepository(db)
	planCatalog := database.NewPlanCatalog(entity.DefaultPlans())

	// 2. Gateways e adapters
	gateway := payment.NewClient(cfg.GatewayURL, cfg.GatewayAPIKey, cfg.GatewayTimeout)
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)

	// 3. Workers
	notifyWorker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go notifyWorker.Start(queue.QueueName)

	expirationWorker := worker.NewPendingExpirationWorker(db, cfg.PendingWindow)
	go expirationWorker.Start(context.Background())

	// 4. UseCases
	checkoutUC := usecase.NewCreateSubscriptionUseCase(
		customerRepo, planCatalog, subRepo, cardRepo, gateway, producer,
	)
	addDependentUC := usecase.NewAddDependentUseCase(subRepo, planCatalog, dependentRepo)

	// 5. Handlers
	subHandler := handlers.NewSubscriptionHandler(checkoutUC, addDependentUC, subRepo, cardRepo, dependentRepo)
	planHandler := handlers.NewPlanHandler(planCatalog)
	cardHandler := handlers.NewCardHandler(subRepo)
	leadHandler := handlers.NewLeadHandler(leadRepo)
	adminHandler := handlers.NewAdminHandler(leadRepo, subRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/subscriptions", subHandler.HandleCheckout)
		r.Get("/subscriptions/{id}", subHandler.HandleGet)
		r.Post("/subscriptions/{id}/dependents", subHandler.HandleAddDependent)
		r.Get("/subscriptions/{id}/dependents", subHandler.HandleListDependents)

		r.Get("/plans", planHandler.HandleList)
		r.Get("/plans/{id}", planHandler.HandleGet)
		r.Post("/plans/{id}/quote", planHandler.HandleQuote)

		r.Post("/cards/verify", cardHandler.HandleVerify)

		r.Post("/leads", leadHandler.CaptureLead)
		r.Get("/admin/leads", adminHandler.HandleListLeads)
		r.Get("/admin/leads/export", adminHandler.HandleExportLeads)
		r.Get("/admin/subscriptions/export", adminHandler.HandleExportSubscriptions)
	})

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	log.Printf("🔥 Server Cartão + Vidah rodando na porta %s", cfg.HTTPAddr)
	http.ListenAndServe(cfg.HTTPAddr, r)
}
