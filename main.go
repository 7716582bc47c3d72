package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"tourhub/config"
	"tourhub/constants"
	"tourhub/database"
	"tourhub/handler"
	"tourhub/helper"
	"tourhub/middleware"
	"tourhub/notify"
	"tourhub/router"
	"tourhub/service"
	"tourhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

func main() {
	utils.InitLogger()
	decimal.MarshalJSONWithoutQuotes = true

	if err := database.ConnectDB(); err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	var notifiers notify.Multi

	if config.Config("SMTP_USERNAME") == "" {
		log.Warn().Msg("SMTP not configured, emails are discarded")
		notifiers = append(notifiers, notify.Discard{})
	} else {
		mailer, err := notify.NewMailer(notify.MailerConfig{
			Host:        config.ConfigDefault("SMTP_HOST", "smtp.gmail.com"),
			Port:        config.ConfigInt("SMTP_PORT", 587),
			Username:    config.Config("SMTP_USERNAME"),
			Password:    config.Config("SMTP_PASSWORD"),
			From:        config.ConfigDefault("SMTP_FROM", config.Config("SMTP_USERNAME")),
			FrontendURL: config.ConfigDefault("FRONTEND_URL", "http://localhost:3000"),
			AdminEmail:  config.Config("ADMIN_EMAIL"),
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mailer init failed")
		}
		notifiers = append(notifiers, mailer)
	}

	var feed handler.LiveFeed
	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.ConfigDefault("REDIS_ADDR", "localhost:6379"),
		Password: config.Config("REDIS_PASSWORD"),
	})
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, live booking feed disabled")
		_ = redisClient.Close()
		redisClient = nil
	} else {
		publisher := notify.NewPublisher(redisClient, constants.BOOKINGS_CHANNEL)
		notifiers = append(notifiers, publisher)
		feed = publisher
	}
	cancelPing()

	svc := service.New(database.DB, notifiers)

	var images helper.ImageStore
	if config.Config("CLOUDINARY_CLOUD_NAME") != "" {
		store, err := helper.InitCloudinary(constants.UPLOAD_FOLDER)
		if err != nil {
			log.Warn().Err(err).Msg("cloudinary unavailable, uploads disabled")
		} else {
			images = store
		}
	}

	scheduler, err := helper.StartDigestScheduler(svc.Bookings.SendPendingDigest)
	if err != nil {
		log.Fatal().Err(err).Msg("scheduler init failed")
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
		AppName:   "tourhub",
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigDefault("CORS_ORIGINS", "http://localhost:3000"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))
	app.Use(middleware.RequestLogger())

	router.SetupRoutes(app, handler.New(svc, images, feed))

	go func() {
		addr := ":" + strings.TrimPrefix(config.ConfigDefault("PORT", "8000"), ":")
		if err := app.Listen(addr); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if err := scheduler.Shutdown(); err != nil {
		log.Error().Err(err).Msg("scheduler shutdown")
	}
	svc.Wait()
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
