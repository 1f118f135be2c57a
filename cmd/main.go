package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/uniteam/uniteam-backend/config"
	"github.com/uniteam/uniteam-backend/database"
	"github.com/uniteam/uniteam-backend/internal/auditlog"
	"github.com/uniteam/uniteam-backend/internal/auth"
	"github.com/uniteam/uniteam-backend/internal/contact"
	"github.com/uniteam/uniteam-backend/internal/event"
	"github.com/uniteam/uniteam-backend/internal/group"
	"github.com/uniteam/uniteam-backend/internal/notification"
	"github.com/uniteam/uniteam-backend/internal/participant"
	"github.com/uniteam/uniteam-backend/internal/reminder"
	"github.com/uniteam/uniteam-backend/internal/room"
	"github.com/uniteam/uniteam-backend/internal/status"
	"github.com/uniteam/uniteam-backend/routes"
	"github.com/uniteam/uniteam-backend/utils"
)

// @title UniTeam API
// @version 1.0
// @description Room and event booking API for teams.
// @BasePath /api/v1
func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	// Init Redis and Kafka
	rdb := utils.NewRedisClient(cfg)
	kafkaWriter := utils.NewKafkaWriter(cfg)
	kafkaReader := utils.NewKafkaReader(cfg)

	// Auto-migrate models
	log.Println("🔄 Running database migrations...")
	if err := db.AutoMigrate(
		&auth.User{},
		&group.Group{},
		&room.Room{},
		&status.Status{},
		&event.Event{},
		&participant.Participant{},
		&notification.Notification{},
		&contact.ContactMessage{},
		&auditlog.AuditLog{},
	); err != nil {
		panic(fmt.Sprintf("❌ DB AutoMigrate failed: %v", err))
	}
	log.Println("✅ Database migrations completed")

	// Seed the status catalog and the bootstrap admin
	statusSvc := status.NewService(status.NewRepository(db), rdb)
	if err := statusSvc.Seed(); err != nil {
		panic(fmt.Sprintf("❌ Failed to seed statuses: %v", err))
	}

	emailSender := notification.NewEmailSender(cfg)
	authSvc := auth.NewService(auth.NewRepository(db), emailSender, cfg)
	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := authSvc.EnsureAdmin(cfg.AdminEmail, cfg.AdminPassword, "Admin", "UniTeam", 1); err != nil {
			panic(fmt.Sprintf("❌ Failed to seed admin: %v", err))
		}
	}

	// Drain the email topic in the background
	if kafkaReader != nil {
		go notification.StartKafkaConsumer(context.Background(), kafkaReader, emailSender)
	}

	// Daily reminder job
	eventRepo := event.NewRepository(db)
	participantSvc := participant.NewService(participant.NewRepository(db))
	notifSvc := notification.NewService(notification.NewRepository(db), emailSender, rdb, kafkaWriter)
	scheduler := reminder.NewScheduler(eventRepo, auth.NewRepository(db), participantSvc, notifSvc)
	if err := scheduler.Start(); err != nil {
		log.Printf("⚠️ Reminder scheduler failed to start: %v", err)
	}

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL, "http://localhost:5173", "http://127.0.0.1:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Content-Length", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Setup(router, cfg, rdb, kafkaWriter)

	fmt.Printf("🚀 Server starting on port %s\n", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		panic(fmt.Sprintf("Failed to start server: %v", err))
	}
}
