package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/s-sucharita/Multi-Vendor-Marketplace/controllers"
	"github.com/s-sucharita/Multi-Vendor-Marketplace/middleware"
	"github.com/s-sucharita/Multi-Vendor-Marketplace/models"
)

// Controllers bundles every handler group for registration.
type Controllers struct {
	Auth          *controllers.AuthController
	Products      *controllers.ProductController
	Cart          *controllers.CartController
	Orders        *controllers.OrderController
	Inventory     *controllers.InventoryController
	Notifications *controllers.NotificationController
	Vendor        *controllers.VendorController
	Admin         *controllers.AdminController
}

// Register wires all route groups onto the engine. Role gating happens here;
// resource-level ownership checks stay in the services.
func Register(r *gin.Engine, c *Controllers) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.RateLimitMiddleware())

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", c.Auth.Login)
		auth.POST("/refresh", c.Auth.Refresh)
	}

	users := r.Group("/users", middleware.AuthMiddleware())
	{
		users.GET("/me", c.Auth.GetProfile)
		users.PUT("/me", c.Auth.UpdateProfile)
		users.PUT("/me/password", c.Auth.ChangePassword)
	}

	products := r.Group("/products")
	{
		products.GET("", c.Products.GetProducts)
		products.GET("/:id", c.Products.GetProductByID)
		products.GET("/:id/reviews", c.Products.GetReviews)

		authed := products.Group("", middleware.AuthMiddleware())
		authed.POST("/:id/reviews",
			middleware.RequireRoles(models.RoleCustomer), c.Products.CreateReview)

		vendorOnly := authed.Group("",
			middleware.RequireRoles(models.RoleVendor, models.RoleAdmin))
		vendorOnly.POST("", c.Products.CreateProduct)
		vendorOnly.PUT("/:id", c.Products.UpdateProduct)
		vendorOnly.DELETE("/:id", c.Products.DeleteProduct)
	}

	reviews := r.Group("/reviews", middleware.AuthMiddleware())
	{
		reviews.PUT("/:reviewId", c.Products.UpdateReview)
		reviews.DELETE("/:reviewId", c.Products.DeleteReview)
		reviews.POST("/:reviewId/helpful", c.Products.MarkReviewHelpful)
	}

	cart := r.Group("/cart",
		middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleCustomer))
	{
		cart.GET("", c.Cart.GetCart)
		cart.POST("/items", c.Cart.AddItem)
		cart.PUT("/items/:productId", c.Cart.UpdateItem)
		cart.DELETE("/items/:productId", c.Cart.RemoveItem)
		cart.DELETE("", c.Cart.ClearCart)
	}

	orders := r.Group("/orders", middleware.AuthMiddleware())
	{
		orders.POST("",
			middleware.RequireRoles(models.RoleCustomer), c.Orders.CreateOrder)
		orders.POST("/buy-now",
			middleware.RequireRoles(models.RoleCustomer), c.Orders.BuyNow)
		orders.GET("/my", c.Orders.GetMyOrders)
		orders.GET("/:id", c.Orders.GetOrderByID)
		orders.PUT("/:id/status",
			middleware.RequireRoles(models.RoleVendor, models.RoleAdmin), c.Orders.UpdateOrderStatus)
		orders.PUT("/:id/cancel",
			middleware.RequireRoles(models.RoleCustomer), c.Orders.CancelOrder)
		orders.POST("/:id/messages", c.Orders.AddOrderMessage)
		orders.GET("",
			middleware.RequireRoles(models.RoleAdmin), c.Orders.GetAllOrders)
	}

	notifications := r.Group("/notifications", middleware.AuthMiddleware())
	{
		notifications.GET("", c.Notifications.GetNotifications)
		notifications.GET("/unread-count", c.Notifications.GetUnreadCount)
		notifications.PUT("/:id/read", c.Notifications.MarkRead)
		notifications.DELETE("/:id", c.Notifications.DeleteNotification)
	}

	vendor := r.Group("/vendor",
		middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleVendor, models.RoleAdmin))
	{
		vendor.GET("/inventory", c.Inventory.GetInventory)
		vendor.GET("/inventory/low-stock", c.Inventory.GetLowStock)
		vendor.GET("/inventory/:productId", c.Inventory.GetProductInventory)
		vendor.POST("/inventory/:productId/restock", c.Inventory.Restock)
		vendor.PUT("/inventory/:productId/threshold", c.Inventory.UpdateThreshold)

		vendor.GET("/returns", c.Vendor.GetReturns)
		vendor.PUT("/returns/:id", c.Vendor.ResolveReturn)
		vendor.GET("/disputes", c.Vendor.GetDisputes)
		vendor.PUT("/disputes/:id", c.Vendor.RespondDispute)

		vendor.POST("/leaves", c.Vendor.RequestLeave)
		vendor.GET("/leaves", c.Vendor.GetLeaves)
		vendor.GET("/reports/sales", c.Vendor.GetSalesReport)
		vendor.POST("/compliance", c.Admin.SubmitCompliance)
	}

	// returns and disputes are opened by customers against their own orders
	customerOps := r.Group("",
		middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleCustomer))
	{
		customerOps.POST("/returns", c.Vendor.CreateReturn)
		customerOps.POST("/disputes", c.Vendor.CreateDispute)
	}

	messages := r.Group("/messages", middleware.AuthMiddleware())
	{
		messages.POST("", c.Vendor.SendMessage)
		messages.GET("", c.Vendor.GetMessages)
		messages.POST("/:id/replies", c.Vendor.ReplyMessage)
		messages.PUT("/:id/read", c.Vendor.MarkMessageRead)
	}

	shared := r.Group("",
		middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleVendor, models.RoleAdmin))
	{
		shared.GET("/tasks", c.Admin.GetTasks)
		shared.PUT("/tasks/:id", c.Admin.UpdateTask)
		shared.GET("/goals", c.Admin.GetGoals)
		shared.GET("/compliance", c.Admin.GetCompliance)
	}

	admin := r.Group("/admin",
		middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleAdmin))
	{
		admin.GET("/vendors", c.Admin.GetVendors)
		admin.GET("/vendors/:id", c.Admin.GetVendorDetails)
		admin.PUT("/vendors/:id/status", c.Admin.UpdateVendorStatus)
		admin.POST("/tasks", c.Admin.CreateTask)
		admin.POST("/goals", c.Admin.CreateGoal)
		admin.PUT("/goals/:id", c.Admin.UpdateGoal)
		admin.PUT("/compliance/:id/review", c.Admin.ReviewCompliance)
		admin.GET("/leaves/pending", c.Admin.GetPendingLeaves)
		admin.PUT("/leaves/:id/review", c.Admin.ReviewLeave)
		admin.GET("/activity/:userId", c.Admin.GetActivityLogs)
		admin.POST("/activity", c.Admin.LogActivity)
		admin.GET("/summary/daily/:vendorId", c.Admin.GetDailySummary)
		admin.GET("/summary/overview", c.Admin.GetDailyOverview)
		admin.GET("/reports/marketplace", c.Admin.GetMarketplaceReport)
		admin.GET("/reports/vendor/:vendorId", c.Admin.GetVendorReport)
		admin.GET("/pending-approvals", c.Admin.GetPendingApprovals)
		admin.POST("/notifications/send", c.Admin.SendNotification)
	}
}
