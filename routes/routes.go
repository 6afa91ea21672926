package routes

import (
	"course-marketplace/controllers"
	"course-marketplace/middleware"
	"course-marketplace/services"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Auth       *controllers.AuthController
	Course     *controllers.CourseController
	Cart       *controllers.CartController
	Enrollment *controllers.EnrollmentController
	Payment    *controllers.PaymentController
	Webhook    *controllers.WebhookController
}

// RegisterRoutes binds all endpoints. Webhooks stay unauthenticated: the
// gateways authenticate themselves through their signatures.
func RegisterRoutes(r *gin.Engine, c Controllers, jwt *services.JWTService) {
	api := r.Group("/api")

	api.POST("/register", c.Auth.Register)
	api.POST("/token", c.Auth.Login)

	api.GET("/categories", c.Course.ListCategories)
	api.GET("/courses", c.Course.ListCourses)
	api.GET("/courses/:id", c.Course.GetCourse)
	api.GET("/courses/:id/lessons", c.Course.ListLessons)

	api.POST("/paypal/webhooks", c.Webhook.PayPalWebhook)
	api.POST("/stripe/webhooks", c.Webhook.StripeWebhook)

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(jwt))

	authed.POST("/categories/create", c.Course.CreateCategory)
	authed.POST("/courses/create", c.Course.CreateCourse)
	authed.PUT("/courses/:id/update", c.Course.UpdateCourse)
	authed.DELETE("/courses/:id/delete", c.Course.DeleteCourse)
	authed.GET("/instructor/courses", c.Course.InstructorCourses)

	authed.GET("/cart", c.Cart.GetCart)
	authed.POST("/cart-items", c.Cart.AddItem)
	authed.DELETE("/cart-items/:id", c.Cart.RemoveItem)

	authed.GET("/my-enrollments", c.Enrollment.MyEnrollments)

	authed.POST("/paypal/create-order", c.Payment.CreatePayPalOrder)
	authed.POST("/paypal/capture-order", c.Payment.CapturePayPalOrder)
	authed.POST("/stripe/create-order", c.Payment.CreateStripeCheckout)
}
