package main

import (
	"log"
	"strings"
	"time"

	"course-marketplace/config"
	"course-marketplace/controllers"
	"course-marketplace/database"
	"course-marketplace/kafka"
	"course-marketplace/middleware"
	"course-marketplace/models"
	"course-marketplace/repository"
	"course-marketplace/routes"
	"course-marketplace/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("[CourseMarketplace] ❌ Failed to load config:", err)
	}

	if err := database.Connect(cfg); err != nil {
		log.Fatal("[CourseMarketplace] ❌ Failed to connect to DB:", err)
	}
	if err := models.Migrate(database.DB); err != nil {
		log.Fatal("[CourseMarketplace] ❌ Failed to migrate models:", err)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatal("[CourseMarketplace] ❌ Failed to initialize logger:", err)
	}
	defer logger.Sync()

	userRepo := repository.NewGormUserRepo(database.DB)
	courseRepo := repository.NewGormCourseRepo(database.DB)
	cartRepo := repository.NewGormCartRepo(database.DB)
	paymentRepo := repository.NewGormPaymentRepo(database.DB)
	enrollmentRepo := repository.NewGormEnrollmentRepo(database.DB)

	paypalClient := services.NewPayPalClient(services.PayPalConfig{
		BaseURL:       cfg.PayPalBaseURL,
		ClientID:      cfg.PayPalClientID,
		ClientSecret:  cfg.PayPalClientSecret,
		WebhookID:     cfg.PayPalWebhookID,
		WebhookSecret: cfg.PayPalWebhookSecret,
		ReturnURL:     cfg.CheckoutSuccessURL,
		CancelURL:     cfg.CheckoutCancelURL,
	}, logger)
	stripeClient := services.NewStripeClient(cfg.StripeSecretKey, cfg.StripeWebhookSecret, cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL)

	var publisher services.PaymentEventPublisher
	if cfg.KafkaBrokers != "" {
		producer := kafka.NewPaymentEventProducer(strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaTopic)
		defer producer.Close()
		publisher = producer
	}

	jwtService := services.NewJWTService(cfg.JWTSecret, 24*time.Hour)
	authService := services.NewAuthService(userRepo, jwtService, logger)
	enrollmentService := services.NewEnrollmentService(enrollmentRepo, cartRepo, logger)
	reconciler := services.NewReconciler(paymentRepo, cartRepo, enrollmentService, publisher, logger)
	checkoutService := services.NewCheckoutService(cartRepo, paymentRepo, paypalClient, stripeClient, reconciler, logger)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	routes.RegisterRoutes(r, routes.Controllers{
		Auth:       &controllers.AuthController{Auth: authService, Logger: logger},
		Course:     &controllers.CourseController{Courses: courseRepo, Logger: logger},
		Cart:       &controllers.CartController{Carts: cartRepo, Logger: logger},
		Enrollment: &controllers.EnrollmentController{Enrollments: enrollmentRepo, Logger: logger},
		Payment:    &controllers.PaymentController{Checkout: checkoutService, Logger: logger},
		Webhook: &controllers.WebhookController{
			PayPal:     paypalClient,
			Stripe:     stripeClient,
			Reconciler: reconciler,
			Logger:     logger,
		},
	}, jwtService)

	log.Println("[CourseMarketplace] ✅ Running on port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("[CourseMarketplace] ❌ Server failed:", err)
	}
}
