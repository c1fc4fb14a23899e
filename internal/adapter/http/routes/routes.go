package routes

import (
	"log/slog"
	"net/http"

	_ "learnhub_checkout/docs"
	"learnhub_checkout/internal/adapter/http/handlers"
	"learnhub_checkout/internal/infrastructure/metrics"
	"learnhub_checkout/pkg"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handlers struct {
	Checkout     *handlers.CheckoutHandler
	Notification *handlers.NotificationHandler
	Admin        *handlers.AdminHandler
	Course       *handlers.CourseHandler
}

var errMethodNotAllowed = pkg.NewDomainErrorSimple("METHOD_NOT_ALLOWED", "Method not allowed", http.StatusMethodNotAllowed)

// NewRouter mounts every route under /v1, plus /metrics and /swagger.
func NewRouter(h Handlers, adminToken string, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(errMethodNotAllowed.HTTPStatus, errMethodNotAllowed.ToHTTPError())
	})

	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", func(c *gin.Context) {
		metrics.WritePrometheus(c.Writer)
	})

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCheckoutRoutes(v1, h.Checkout)
	addNotificationRoutes(v1, h.Notification)
	addAdminRoutes(v1, h.Admin, adminToken)
	addCourseRoutes(v1, h.Course, adminToken)

	return router
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares(router *gin.Engine, logger *slog.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.ErrorContext(c.Request.Context(), "[checkout][http] recovered from panic", "panic", recovered, "path", c.FullPath())
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
