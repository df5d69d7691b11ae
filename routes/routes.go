package routes

import (
	"backend/cart"
	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, store cart.Store, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	branchRepo := repository.NewBranchRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	branchSvc := services.NewBranchService(branchRepo)
	catalogSvc := services.NewCatalogService(catalogRepo, branchRepo)
	cartSvc := services.NewCartService(store)
	orderSvc := services.NewOrderService(db, orderRepo, branchRepo, catalogRepo)
	waSvc := services.NewWhatsAppService()
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	branchCtrl := controllers.NewBranchController(branchSvc)
	catalogCtrl := controllers.NewCatalogController(catalogSvc, branchSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, branchSvc, waSvc)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)
	}

	// Public storefront
	b := r.Group("/branches")
	{
		b.GET("", branchCtrl.List)
		b.GET("/:slug", branchCtrl.GetBySlug)
		b.GET("/:slug/categories", catalogCtrl.ListCategories)
		b.GET("/:slug/food-items", catalogCtrl.ListFoodItems)
		b.GET("/:slug/food-items/count", catalogCtrl.CountFoodItems)
		b.POST("/:slug/orders", orderCtrl.Create)
	}

	o := r.Group("/orders")
	{
		o.GET("/:id", orderCtrl.Detail)
		o.GET("/:id/whatsapp", orderCtrl.WhatsApp)
		o.GET("/:id/whatsapp/qr", orderCtrl.WhatsAppQR)
	}

	ct := r.Group("/cart")
	{
		ct.GET("", cartCtrl.Get)
		ct.POST("/items", cartCtrl.Add)
		ct.PATCH("/items/:id", cartCtrl.UpdateQuantity)
		ct.DELETE("/items/:id", cartCtrl.Remove)
		ct.DELETE("", cartCtrl.Clear)
	}

	// Admin back office, one guard for every mutating route
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.POST("/branches", branchCtrl.Create)
		admin.PUT("/branches/:id", branchCtrl.Update)
		admin.DELETE("/branches/:id", branchCtrl.Delete)

		admin.POST("/branches/:id/categories", catalogCtrl.CreateCategory)
		admin.PUT("/categories/:id", catalogCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", catalogCtrl.DeleteCategory)

		admin.POST("/branches/:id/food-items", catalogCtrl.CreateFoodItem)
		admin.PUT("/food-items/:id", catalogCtrl.UpdateFoodItem)
		admin.DELETE("/food-items/:id", catalogCtrl.DeleteFoodItem)

		admin.GET("/orders", orderCtrl.ListForAdmin)
		admin.GET("/orders/:id", orderCtrl.DetailForAdmin)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
	}
}
