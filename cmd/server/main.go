package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	_ "remedial/docs" // swagger docs

	"remedial/internal/auth"
	"remedial/internal/cache"
	"remedial/internal/config"
	"remedial/internal/db"
	"remedial/internal/gateway"
	"remedial/internal/handler"
	"remedial/internal/imagehost"
	"remedial/internal/model"
	"remedial/internal/repository"
	"remedial/internal/router"
	"remedial/internal/service"
)

// @title Remedial Content API
// @version 1.0
// @description Content and class-order backend with articles, categories, offline classes, and Snap payment intake.
// @host localhost:3030
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logrus.WithError(err).Fatal("database init")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.ArticleCategory{},
		&model.Article{},
		&model.OfflineClass{},
		&model.ClassOrder{},
	); err != nil {
		logrus.WithError(err).Fatal("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	images, err := imagehost.New(
		cfg.StorageEndpoint,
		cfg.StorageRegion,
		cfg.StorageAccessKey,
		cfg.StorageSecretKey,
		cfg.StorageBucket,
		cfg.StoragePublicURL,
		cfg.StorageFolder,
	)
	if err != nil {
		logrus.WithError(err).Fatal("image host init")
	}
	if images == nil {
		logrus.Warn("image host not configured, article writes will fail")
	}

	snapGateway := gateway.NewSnap(cfg.MidtransServerKey, cfg.MidtransProduction)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewArticleCategoryRepository(gormDB)
	articleRepo := repository.NewArticleRepository(gormDB)
	classRepo := repository.NewOfflineClassRepository(gormDB)
	orderRepo := repository.NewClassOrderRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	articleService := service.NewArticleService(articleRepo, categoryRepo, images, cacheClient)
	categoryService := service.NewArticleCategoryService(categoryRepo, cacheClient)
	classService := service.NewOfflineClassService(classRepo)
	orderService := service.NewOrderService(orderRepo, snapGateway)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	articleHandler := handler.NewArticleHandler(articleService)
	categoryHandler := handler.NewArticleCategoryHandler(categoryService)
	classHandler := handler.NewOfflineClassHandler(classService)
	paymentHandler := handler.NewPaymentHandler(orderService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		articleHandler,
		categoryHandler,
		classHandler,
		paymentHandler,
	)

	addr := ":" + cfg.ServerPort
	logrus.WithField("addr", addr).Info("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logrus.WithError(err).Fatal("server start")
	}
}
