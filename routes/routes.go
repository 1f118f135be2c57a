package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/uniteam/uniteam-backend/config"
	"github.com/uniteam/uniteam-backend/database"
	"github.com/uniteam/uniteam-backend/internal/auditlog"
	"github.com/uniteam/uniteam-backend/internal/auth"
	"github.com/uniteam/uniteam-backend/internal/calendar"
	"github.com/uniteam/uniteam-backend/internal/contact"
	"github.com/uniteam/uniteam-backend/internal/event"
	"github.com/uniteam/uniteam-backend/internal/group"
	"github.com/uniteam/uniteam-backend/internal/notification"
	"github.com/uniteam/uniteam-backend/internal/participant"
	"github.com/uniteam/uniteam-backend/internal/reports"
	"github.com/uniteam/uniteam-backend/internal/room"
	"github.com/uniteam/uniteam-backend/internal/status"
	"github.com/uniteam/uniteam-backend/middleware"

	_ "github.com/uniteam/uniteam-backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func Setup(r *gin.Engine, cfg *config.Config, rdb *redis.Client, kafkaWriter *kafka.Writer) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimiter())     // Global rate limit per IP
	api.Use(middleware.AuditMiddleware()) // Capture client IP for audit logs

	// ========== Audit Log ==========
	auditRepo := auditlog.NewRepository(database.DB)
	auditSvc := auditlog.NewService(auditRepo)
	auditHandler := auditlog.NewHandler(auditSvc)

	// ========== Notifications ==========
	emailSender := notification.NewEmailSender(cfg)
	notifRepo := notification.NewRepository(database.DB)
	notifSvc := notification.NewService(notifRepo, emailSender, rdb, kafkaWriter)
	notifHandler := notification.NewHandler(notifSvc)

	// ========== Auth ==========
	authRepo := auth.NewRepository(database.DB)
	authSvc := auth.NewService(authRepo, emailSender, cfg)
	authHandler := auth.NewHandler(authSvc)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/token", authHandler.Token)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.GET("/me", middleware.AuthMiddleware(cfg, authSvc), authHandler.Me)
	}

	// ========== Catalogs ==========
	groupRepo := group.NewRepository(database.DB)
	groupSvc := group.NewService(groupRepo)
	groupHandler := group.NewHandler(groupSvc)

	roomRepo := room.NewRepository(database.DB)
	roomSvc := room.NewService(roomRepo)
	roomHandler := room.NewHandler(roomSvc)

	statusRepo := status.NewRepository(database.DB)
	statusSvc := status.NewService(statusRepo, rdb)
	statusHandler := status.NewHandler(statusSvc)

	// ========== Participants ==========
	participantRepo := participant.NewRepository(database.DB)
	participantSvc := participant.NewService(participantRepo)
	participantHandler := participant.NewHandler(participantSvc)

	// ========== Events ==========
	eventRepo := event.NewRepository(database.DB)
	eventSvc := event.NewService(eventRepo, authRepo, participantSvc, notifSvc, statusSvc, roomSvc, auditSvc)
	eventHandler := event.NewHandler(eventSvc)

	// ========== Calendar ==========
	calendarHandler := calendar.NewHandler(eventRepo)

	// ========== Contact ==========
	contactRepo := contact.NewRepository(database.DB)
	contactSvc := contact.NewService(contactRepo, notifSvc, cfg.ContactEmail)
	contactHandler := contact.NewHandler(contactSvc)

	// ========== Reports ==========
	reportsRepo := reports.NewRepository(database.DB)
	reportsSvc := reports.NewService(reportsRepo)
	reportsHandler := reports.NewHandler(reportsSvc)

	// Contact form is reachable without an account
	api.POST("/contact", contactHandler.Submit)

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg, authSvc))
	{
		// Events
		protected.POST("/events", eventHandler.CreateEvent)
		protected.GET("/events", eventHandler.ListEvents)
		protected.GET("/events/:id", eventHandler.GetEvent)
		protected.DELETE("/events/:id", eventHandler.DeleteEvent)
		protected.PATCH("/events/:id/status", middleware.RequireAdmin(), eventHandler.UpdateStatus)
		protected.GET("/events/stats", middleware.RequireAdmin(), eventHandler.Stats)
		protected.GET("/events/:id/ics", eventHandler.DownloadICS)
		protected.GET("/events/:id/calendar-links", eventHandler.GetCalendarLinks)

		// Calendar
		protected.GET("/calendar/:year/:month", calendarHandler.GetMonth)

		// Catalogs
		protected.GET("/groups", groupHandler.List)
		protected.GET("/groups/:id", groupHandler.Get)
		protected.POST("/groups", middleware.RequireAdmin(), groupHandler.Create)

		protected.GET("/rooms", roomHandler.List)
		protected.GET("/rooms/:id", roomHandler.Get)
		protected.POST("/rooms", middleware.RequireAdmin(), roomHandler.Create)

		protected.GET("/status", statusHandler.List)
		protected.GET("/status/:id", statusHandler.Get)

		// Users
		protected.GET("/users", authHandler.ListUsers)
		protected.GET("/users/:id", authHandler.GetUser)
		protected.POST("/users", middleware.RequireAdmin(), authHandler.CreateUser)

		// Participants
		protected.GET("/participants", participantHandler.List)
		protected.POST("/participants", participantHandler.Create)

		// Notifications
		protected.GET("/notifications", notifHandler.List)
		protected.POST("/notifications", middleware.RequireAdmin(), notifHandler.Create)
		protected.DELETE("/notifications/:id", notifHandler.Delete)
		protected.DELETE("/notifications", notifHandler.Clear)
		protected.GET("/notifications/feed", notifHandler.Feed)
		protected.DELETE("/notifications/feed", notifHandler.ClearFeed)

		// Contact inbox
		protected.GET("/contact", middleware.RequireAdmin(), contactHandler.List)

		// Audit logs
		protected.GET("/auditlogs", middleware.RequireAdmin(), auditHandler.GetAuditLogs)
		protected.GET("/auditlogs/:id", middleware.RequireAdmin(), auditHandler.GetAuditLogByID)

		// Reports
		protected.GET("/reports/:type", middleware.RequireAdmin(), reportsHandler.Export)
	}
}
