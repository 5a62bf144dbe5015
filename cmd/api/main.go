package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"shootsuite/internal/config"
	"shootsuite/internal/database"
	"shootsuite/internal/middleware"
	"shootsuite/internal/modules/auth"
	"shootsuite/internal/modules/client"
	"shootsuite/internal/modules/deliverable"
	"shootsuite/internal/modules/expense"
	"shootsuite/internal/modules/export"
	"shootsuite/internal/modules/invoice"
	"shootsuite/internal/modules/job"
	"shootsuite/internal/modules/payment"
	"shootsuite/internal/modules/portal"
	"shootsuite/internal/modules/report"
	"shootsuite/internal/modules/task"
	"shootsuite/internal/modules/team"
	"shootsuite/internal/notification"
	jwtsvc "shootsuite/internal/pkg/jwt"
	"shootsuite/internal/reminder"
	"shootsuite/internal/repository"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	accountRepo := repository.NewAccountRepository(db)
	clientRepo := repository.NewClientRepository(db)
	jobRepo := repository.NewJobRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	deliverableRepo := repository.NewDeliverableRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	email := notification.NewEmailSender(cfg.ResendAPIKey, cfg.EmailFrom)
	sms := notification.NewSMSSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
	hub := notification.NewHub()
	notify := notification.NewNotifier(email, hub)
	wsHandler := notification.NewWSHandler(hub, j)

	authHandler := auth.NewHandler(auth.NewService(accountRepo, j))
	clientHandler := client.NewHandler(client.NewService(clientRepo))
	jobHandler := job.NewHandler(job.NewService(jobRepo, accountRepo, notify))
	teamHandler := team.NewHandler(team.NewService(teamRepo, accountRepo, jobRepo))
	invoiceHandler := invoice.NewHandler(invoice.NewService(invoiceRepo, jobRepo, cfg.PortalBaseURL))
	paymentHandler := payment.NewHandler(payment.NewService(
		paymentRepo, invoiceRepo, jobRepo, deliverableRepo, notify,
		cfg.CheckoutBaseURL, cfg.WebhookSecret, cfg.PortalBaseURL,
	))
	deliverableHandler := deliverable.NewHandler(deliverable.NewService(
		deliverableRepo, jobRepo, invoiceRepo, notify, cfg.PortalBaseURL,
	))
	portalHandler := portal.NewHandler(portal.NewService(jobRepo, j, cfg.PortalTTL))
	expenseHandler := expense.NewHandler(expense.NewService(expenseRepo, jobRepo))
	taskHandler := task.NewHandler(task.NewService(taskRepo, jobRepo))
	reportHandler := report.NewHandler(report.NewService(paymentRepo, expenseRepo, jobRepo))
	exportHandler := export.NewHandler(export.NewService(jobRepo, clientRepo, paymentRepo))

	r := gin.New()
	r.Use(gin.Recovery(), middleware.CORS(), middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			clientHandler.RegisterRoutes(protected)
			jobHandler.RegisterRoutes(protected)
			teamHandler.RegisterRoutes(protected)
			invoiceHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
			deliverableHandler.RegisterRoutes(protected)
			expenseHandler.RegisterRoutes(protected)
			taskHandler.RegisterRoutes(protected)
			reportHandler.RegisterRoutes(protected)
			exportHandler.RegisterRoutes(protected)

			admin := protected.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				authHandler.RegisterAdminRoutes(admin)
			}
		}

		webhooks := v1.Group("/webhooks")
		webhooks.Use(middleware.WebhookSignature(cfg.WebhookSecret))
		{
			paymentHandler.RegisterWebhookRoutes(webhooks)
		}
	}

	// public portal and the dashboard event stream live outside /api/v1
	portalHandler.RegisterRoutes(r)
	r.GET("/ws/events", wsHandler.HandleWebSocket)

	sched := reminder.NewScheduler(jobRepo, invoiceRepo, email, sms)
	if err := sched.Start(); err != nil {
		log.Fatal(err)
	}
	defer sched.Stop()

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
