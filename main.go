package main

import (
	"log"
	"strings"

	"booking-service/config"
	"booking-service/controllers"
	"booking-service/database"
	"booking-service/kafka"
	"booking-service/pkg/logger"
	"booking-service/repository"
	"booking-service/routes"
	"booking-service/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("[BookingService] ❌ Failed to load config:", err)
	}

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	if err := database.Connect(cfg.DSN()); err != nil {
		log.Fatal("[BookingService] ❌ Failed to connect to DB:", err)
	}
	if err := database.Migrate(); err != nil {
		log.Fatal("[BookingService] ❌ Failed to run migrations:", err)
	}

	bookingRepo := repository.NewGormBookingRepo(database.DB)
	orderRepo := repository.NewGormOrderRepo(database.DB)
	passRepo := repository.NewGormPassRepo(database.DB)
	webhookRepo := repository.NewGormWebhookEventRepo(database.DB)

	gateway := services.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, cfg.RazorpayWebhookSecret)

	producer := kafka.NewBookingEventProducer(strings.Split(cfg.KafkaBrokers, ","), cfg.BookingEventsTopic)
	defer producer.Close()

	bookingSvc := services.NewBookingService(bookingRepo, logger.Log)
	orderSvc := services.NewOrderService(bookingRepo, orderRepo, gateway, cfg.Currency, logger.Log)
	passSvc := services.NewPassService(passRepo, bookingRepo, logger.Log)
	reconciler := services.NewReconciler(bookingRepo, orderRepo, passRepo, webhookRepo, gateway, producer, logger.Log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())

	routes.RegisterRoutes(r,
		controllers.NewBookingController(bookingSvc),
		controllers.NewOrderController(orderSvc),
		controllers.NewWebhookController(reconciler, logger.Log),
		controllers.NewPassController(passSvc),
	)

	log.Println("[BookingService] ✅ Running on port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("[BookingService] ❌ Server failed:", err)
	}
}
