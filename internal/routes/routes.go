package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/handykonnect/handykonnect-api/internal/audit"
	"github.com/handykonnect/handykonnect-api/internal/config"
	"github.com/handykonnect/handykonnect-api/internal/events"
	"github.com/handykonnect/handykonnect-api/internal/handlers"
	infraRepo "github.com/handykonnect/handykonnect-api/internal/infra/repository"
	"github.com/handykonnect/handykonnect-api/internal/mailer"
	"github.com/handykonnect/handykonnect-api/internal/middleware"
	"github.com/handykonnect/handykonnect-api/internal/processor"
	"github.com/handykonnect/handykonnect-api/internal/realtime"
	"github.com/handykonnect/handykonnect-api/internal/storage"
	ucAnalytics "github.com/handykonnect/handykonnect-api/internal/usecase/analytics"
	ucBooking "github.com/handykonnect/handykonnect-api/internal/usecase/booking"
	ucMessaging "github.com/handykonnect/handykonnect-api/internal/usecase/messaging"
	ucPayment "github.com/handykonnect/handykonnect-api/internal/usecase/payment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	rdb *redis.Client,
	hub *realtime.Hub,
	log *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	paymentRepo := infraRepo.NewPaymentGormRepository(db)
	messageRepo := infraRepo.NewMessageGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	publisher := events.NewRedisPublisher(rdb, log)

	resendMailer := mailer.NewResendMailer(cfg.ResendAPIKey, cfg.EmailFrom, cfg.AlertRecipient, log)
	stripeProcessor := processor.NewStripeProcessor(cfg.StripeSecretKey)
	uploader := storage.NewUploader(cfg)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
		resendMailer,
		publisher,
	)

	transitionBookingUC := ucBooking.NewTransitionBooking(
		bookingRepo,
		auditDispatcher,
		resendMailer,
		publisher,
	)

	listBookingsUC := ucBooking.NewListBookings(bookingRepo)

	// ======================================================
	// USE CASES — PAYMENTS
	// ======================================================
	createIntentUC := ucPayment.NewCreateIntent(
		paymentRepo,
		stripeProcessor,
		auditDispatcher,
		publisher,
	)

	confirmPaymentUC := ucPayment.NewConfirmPayment(
		paymentRepo,
		stripeProcessor,
		auditDispatcher,
		resendMailer,
		publisher,
	)

	manualPaymentUC := ucPayment.NewRecordManualPayment(
		paymentRepo,
		auditDispatcher,
		resendMailer,
		publisher,
	)

	refundPaymentUC := ucPayment.NewRefundPayment(
		paymentRepo,
		stripeProcessor,
		auditDispatcher,
		resendMailer,
		publisher,
	)

	listPaymentsUC := ucPayment.NewListPayments(paymentRepo)

	// ======================================================
	// USE CASES — MESSAGING / ANALYTICS
	// ======================================================
	sendMessageUC := ucMessaging.NewSendMessage(messageRepo, auditDispatcher, publisher)
	listMessagesUC := ucMessaging.NewListMessages(messageRepo)

	summarizeUC := ucAnalytics.NewSummarize(bookingRepo, paymentRepo, cfg.ReportTimezone)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher, uploader)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		transitionBookingUC,
		listBookingsUC,
	)

	paymentHandler := handlers.NewPaymentHandler(
		createIntentUC,
		confirmPaymentUC,
		manualPaymentUC,
		refundPaymentUC,
		listPaymentsUC,
	)

	messageHandler := handlers.NewMessageHandler(sendMessageUC, listMessagesUC)
	analyticsHandler := handlers.NewAnalyticsHandler(summarizeUC)
	invitationHandler := handlers.NewInvitationHandler(db, auditDispatcher, resendMailer)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	wsHandler := handlers.NewWSHandler(hub, cfg, log)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", serviceHandler.ListActive)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// REALTIME (token via query param)
		// ------------------------------
		api.GET("/ws", wsHandler.Connect)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// BOOKINGS
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.ListMine)

			// PAYMENTS
			secured.POST("/payments/intent", paymentHandler.CreateIntent)
			secured.POST("/payments/confirm", paymentHandler.Confirm)
			secured.POST("/payments/manual", paymentHandler.RecordManual)
			secured.GET("/payments", paymentHandler.ListMine)

			// SUPPORT MESSAGING
			secured.POST("/messages", messageHandler.Send)
			secured.GET("/messages", messageHandler.List)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				admin.GET("/services", serviceHandler.List)
				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)
				admin.DELETE("/services/:id", serviceHandler.Delete)
				admin.POST("/services/:id/image", serviceHandler.UploadImage)

				admin.GET("/bookings", bookingHandler.ListAll)
				admin.PATCH("/bookings/:id/status", bookingHandler.Transition)

				admin.GET("/payments", paymentHandler.ListAll)
				admin.POST("/payments/:id/refund", paymentHandler.Refund)

				admin.GET("/conversations", messageHandler.Conversations)

				admin.GET("/analytics/summary", analyticsHandler.Summary)

				admin.POST("/invitations", invitationHandler.Create)
				admin.GET("/invitations", invitationHandler.List)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
