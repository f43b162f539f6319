package routes

import (
	"github.com/jsersan/tatooback/handlers"
	"github.com/jsersan/tatooback/middleware"
	"github.com/jsersan/tatooback/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize handlers
	userHandler := &handlers.UserHandler{DB: db}
	productHandler := &handlers.ProductHandler{DB: db}
	categoryHandler := &handlers.CategoryHandler{Categories: &services.CategoryService{DB: db}}
	orderHandler := &handlers.OrderHandler{Orders: &services.OrderService{DB: db}}

	// Public routes
	api := r.Group("/api")
	{
		// Auth routes
		api.POST("/users/register", userHandler.Register)
		api.POST("/users/login", userHandler.Login)

		// Public category routes
		api.GET("/categories", categoryHandler.GetCategories)
		api.GET("/categories/:id", categoryHandler.GetCategory)

		// Public product routes
		api.GET("/products", productHandler.GetProducts)
		api.GET("/products/search", productHandler.SearchProducts)
		api.GET("/products/:id", productHandler.GetProduct)
		api.GET("/products/:id/colors", productHandler.GetColors)
		api.GET("/products/category/:categoryId", productHandler.GetProductsByCategory)
	}

	// Product images are served outside the /api prefix
	r.GET("/images/:folder/:image", productHandler.GetImage)

	// Protected routes (require authentication)
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		// User profile
		protected.GET("/users/profile", userHandler.GetProfile)
		protected.PUT("/users/:id", userHandler.UpdateUser)

		// Order routes (ownership enforced in the handlers)
		protected.POST("/orders", orderHandler.CreateOrder)
		protected.GET("/orders/:id", orderHandler.GetOrder)
		protected.GET("/orders/user/:userId", orderHandler.GetOrdersByUser)
	}

	// Admin routes (require admin role)
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		// Category management
		admin.POST("/categories", categoryHandler.CreateCategory)
		admin.PUT("/categories/:id", categoryHandler.UpdateCategory)
		admin.DELETE("/categories/:id", categoryHandler.DeleteCategory)

		// Product management
		admin.POST("/products", productHandler.CreateProduct)
		admin.PUT("/products/:id", productHandler.UpdateProduct)
		admin.DELETE("/products/:id", productHandler.DeleteProduct)
		admin.POST("/products/:id/colors", productHandler.AddColor)
		admin.POST("/products/:id/images", productHandler.UploadImages)
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
