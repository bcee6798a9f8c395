package routers

import (
	"github.com/gin-gonic/gin"

	"threadly/console/internal/app/infra/session"
	"threadly/console/internal/app/pkg/logger"
	"threadly/console/internal/app/server/handlers/admin"
	"threadly/console/internal/app/server/handlers/auth"
	"threadly/console/internal/app/server/handlers/order"
	"threadly/console/internal/app/server/handlers/rider"
	"threadly/console/internal/app/server/handlers/vendor"
	"threadly/console/internal/app/server/middlewares"
)

// SetupRoutes 配置所有路由，使用 Route Group 按角色分类
func SetupRoutes(
	adminHandler *admin.AdminHandler,
	vendorHandler *vendor.VendorHandler,
	riderHandler *rider.RiderHandler,
	orderHandler *order.OrderHandler,
	authHandler *auth.AuthHandler,
	sessions *session.Store,
	log logger.Logger,
) *gin.Engine {
	r := gin.New()

	r.Use(middlewares.CORS())
	r.Use(middlewares.Logger(log))
	r.Use(middlewares.ErrorHandler(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "console",
			"message": "Service is running",
		})
	})

	api := r.Group("/api")
	{
		// 认证入口，无登录态
		api.POST("/register", authHandler.Register)
		api.POST("/send-email-verification-link", authHandler.SendEmailVerificationLink)
		api.POST("/send-otp", authHandler.SendOTP)
		api.POST("/verify-otp", authHandler.VerifyOTP)

		orders := api.Group("/orders")
		{
			orders.POST("", middlewares.Auth(sessions, "customer", "admin"), orderHandler.Submit)
			orders.PUT("/:id/status", middlewares.Auth(sessions, "vendor", "admin"), orderHandler.AdvanceStage)
		}

		adminGroup := api.Group("/admin", middlewares.Auth(sessions, "admin"))
		{
			adminGroup.GET("/vendors", adminHandler.ListVendors)
			adminGroup.GET("/rejected-vendors", adminHandler.ListRejectedVendors)
			adminGroup.POST("/vendors/:id/documents/approve", adminHandler.ApproveVendorDocument)
			adminGroup.POST("/vendors/:id/documents/reject", adminHandler.RejectVendorDocument)

			adminGroup.GET("/riders", adminHandler.ListRiders)
			adminGroup.GET("/verified-riders", adminHandler.ListVerifiedRiders)
			adminGroup.PUT("/riders/:id/verify", adminHandler.VerifyRider)

			adminGroup.GET("/production-orders", adminHandler.ListProductionOrders)
			adminGroup.GET("/board", adminHandler.Board)
			adminGroup.POST("/assign-vendor", adminHandler.AssignVendor)

			adminGroup.GET("/quotation-submissions", adminHandler.ListQuotations)
			adminGroup.POST("/quotation-submissions/:id/approve", adminHandler.ApproveQuotation)
			adminGroup.POST("/quotation-submissions/:id/reject", adminHandler.RejectQuotation)
		}

		vendorGroup := api.Group("/vendor", middlewares.Auth(sessions, "vendor"))
		{
			vendorGroup.GET("/profile", vendorHandler.Profile)
			vendorGroup.PUT("/profile", vendorHandler.UpdateProfile)
			vendorGroup.GET("/orders", vendorHandler.Orders)
			vendorGroup.POST("/verification/upload", vendorHandler.UploadDocument)
			vendorGroup.POST("/verification/submit", vendorHandler.SubmitReview)
			vendorGroup.GET("/verification/status", vendorHandler.VerificationStatus)
		}

		riderGroup := api.Group("/rider", middlewares.Auth(sessions, "rider"))
		{
			riderGroup.GET("/deliveries/assigned", riderHandler.Assigned)
			riderGroup.PUT("/delivery/:id/status", riderHandler.UpdateStatus)
			riderGroup.PUT("/delivery/:id/location", riderHandler.UpdateLocation)
			riderGroup.POST("/delivery/:id/pickup-proof", riderHandler.UploadPickupProof)
			riderGroup.POST("/delivery/:id/delivery-proof", riderHandler.UploadDeliveryProof)
		}
	}

	// HTML 片段视图，管理控制台直插容器
	views := r.Group("/admin/views", middlewares.Auth(sessions, "admin"))
	{
		views.GET("/orders", adminHandler.OrdersView)
		views.GET("/vendors", adminHandler.VendorsView)
		views.GET("/riders", adminHandler.RidersView)
	}

	return r
}
