package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"remedial/docs"
	"remedial/internal/config"
	"remedial/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	articleHandler *handler.ArticleHandler,
	categoryHandler *handler.ArticleCategoryHandler,
	classHandler *handler.OfflineClassHandler,
	paymentHandler *handler.PaymentHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	api.GET("/articles", articleHandler.ListArticles)
	api.GET("/articles/latest", articleHandler.LatestArticles)
	api.GET("/articles/:id", articleHandler.GetArticleByID)

	api.GET("/article-categories", categoryHandler.ListCategories)
	api.GET("/article-categories/:id", categoryHandler.GetCategoryByID)

	api.GET("/offline-classes", classHandler.ListClasses)
	api.GET("/offline-classes/:id", classHandler.GetClassByID)

	// Order intake keeps the always-200 contract, so it stays public.
	api.GET("/orders", paymentHandler.ListOrders)
	api.POST("/payment", paymentHandler.CreateOrder)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	secured.POST("/articles", articleHandler.CreateArticle)
	secured.PUT("/articles/:id", articleHandler.UpdateArticleByID)
	secured.DELETE("/articles/:id", articleHandler.DeleteArticleByID)

	secured.POST("/article-categories", categoryHandler.CreateCategory)
	secured.PUT("/article-categories/:id", categoryHandler.UpdateCategoryByID)
	secured.DELETE("/article-categories/:id", categoryHandler.DeleteCategoryByID)

	secured.POST("/offline-classes", classHandler.CreateClass)
	secured.PUT("/offline-classes/:id", classHandler.UpdateClassByID)
	secured.DELETE("/offline-classes/:id", classHandler.DeleteClassByID)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
