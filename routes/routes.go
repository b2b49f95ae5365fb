package routes

import (
	"github.com/somchx/buffet-ordering-system/configs"
	"github.com/somchx/buffet-ordering-system/controllers"
	"github.com/somchx/buffet-ordering-system/middlewares"
	"github.com/somchx/buffet-ordering-system/repository"
	"github.com/somchx/buffet-ordering-system/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Buffet Ordering System API", "version": "1.0"})
	})
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories & Services
	orderRepo := repository.NewOrderRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, cfg.SessionDuration)
	menuSvc := services.NewMenuService(menuRepo)

	// Controllers
	orderCtrl := controllers.NewOrderController(orderSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	seedCtrl := controllers.NewSeedController(menuSvc)

	api := r.Group("/api")
	{
		// Orders (โต๊ะบุฟเฟต์)
		api.POST("/orders/start", orderCtrl.Start)
		api.GET("/orders/:id", orderCtrl.Get)
		api.POST("/orders/:id/items", orderCtrl.AddItem)
		api.POST("/orders/:id/checkout", orderCtrl.Checkout)

		// Menu (จัดการเมนู)
		api.GET("/menu", menuCtrl.List)
		api.POST("/menu", menuCtrl.Create)
		api.PUT("/menu/:id", menuCtrl.Update)
		api.DELETE("/menu/:id", menuCtrl.Delete)

		// Seed
		api.POST("/seed", seedCtrl.Seed)
	}
}
