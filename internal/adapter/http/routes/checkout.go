package routes

import (
	"learnhub_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout      = "/checkout"
	PathBuyers        = "/buyers"
	PathNotifications = "/notifications"
	PathAdmin         = "/admin"
	PathCourses       = "/courses"
)

func addCheckoutRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler) {
	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("/intents", checkoutHandler.CreateIntent)
		checkout.GET("/intents/:intent_id", checkoutHandler.GetIntent)
	}

	buyers := rg.Group(PathBuyers)
	{
		buyers.GET("/:buyer_id/grants", checkoutHandler.ListBuyerGrants)
	}
}

// Gateways only POST; anything else on these paths is answered with 405.
func addNotificationRoutes(rg *gin.RouterGroup, notificationHandler *handlers.NotificationHandler) {
	notifications := rg.Group(PathNotifications)
	{
		notifications.POST("/redirect", notificationHandler.RedirectNotification)
		notifications.POST("/checkout", notificationHandler.CheckoutNotification)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, adminHandler *handlers.AdminHandler, adminToken string) {
	admin := rg.Group(PathAdmin, handlers.AdminAuth(adminToken))
	{
		admin.POST("/intents/:intent_id/bank-confirmation", adminHandler.ConfirmBankTransfer)
		admin.POST("/intents/:intent_id/bank-rejection", adminHandler.RejectBankTransfer)
		admin.POST("/intents/:intent_id/expire", adminHandler.ExpireIntent)
		admin.GET("/intents", adminHandler.ListIntents)
		admin.GET("/side-effect-failures", adminHandler.ListSideEffectFailures)
		admin.POST("/side-effect-failures/:intent_id/retry", adminHandler.RetrySideEffect)
	}
}

// Reads are public; catalog changes need the admin token.
func addCourseRoutes(rg *gin.RouterGroup, courseHandler *handlers.CourseHandler, adminToken string) {
	courses := rg.Group(PathCourses)
	{
		courses.GET("/:course_id", courseHandler.GetCourse)

		guarded := courses.Group("", handlers.AdminAuth(adminToken))
		guarded.POST("", courseHandler.CreateCourse)
		guarded.PATCH("/:course_id/publish", courseHandler.PublishCourse)
		guarded.PATCH("/:course_id/unpublish", courseHandler.UnpublishCourse)
		guarded.PATCH("/:course_id/price", courseHandler.UpdateCoursePrice)
	}
}
