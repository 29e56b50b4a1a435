package routes

import (
	"github.com/HandyAndyTobes/lunch-club-orders-app/configs"
	"github.com/HandyAndyTobes/lunch-club-orders-app/controllers"
	"github.com/HandyAndyTobes/lunch-club-orders-app/middlewares"
	"github.com/HandyAndyTobes/lunch-club-orders-app/repository"
	"github.com/HandyAndyTobes/lunch-club-orders-app/services"
	"github.com/HandyAndyTobes/lunch-club-orders-app/ws"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	dessertRepo := repository.NewDessertRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	fundRepo := repository.NewFundRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	orderSvc := services.NewOrderService(db, orderRepo, dessertRepo, fundRepo, attendanceRepo)
	inventorySvc := services.NewInventoryService(dessertRepo)
	menuSvc := services.NewMenuService(menuRepo)
	fundSvc := services.NewFundService(fundRepo)
	attendanceSvc := services.NewAttendanceService(orderRepo, attendanceRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Pay-it-forward live feed
	hub := ws.NewFundHub(fundSvc)
	go hub.Run()

	// Controllers
	orderCtrl := controllers.NewOrderController(orderSvc, hub)
	dessertCtrl := controllers.NewDessertController(inventorySvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	fundCtrl := controllers.NewFundController(fundSvc, hub)
	attendanceCtrl := controllers.NewAttendanceController(attendanceSvc)
	adminCtrl := controllers.NewAdminController(orderSvc, inventorySvc, attendanceSvc)
	authCtrl := controllers.NewAuthController(authSvc)

	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, "admin")

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)
	}

	// Public: the order page and what it needs to render
	r.POST("/orders", orderCtrl.Submit)
	r.GET("/meal-options", menuCtrl.ListMeals)
	r.GET("/sub-item-options", menuCtrl.ListSubItems)
	r.GET("/desserts", dessertCtrl.List)
	r.GET("/pay-it-forward/balance", fundCtrl.Balance)
	r.GET("/ws/pay-it-forward", hub.HandleWebSocket)

	// Admin: orders
	o := r.Group("/orders", adminOnly)
	{
		o.GET("", orderCtrl.List)
		o.GET("/print", orderCtrl.Print)
		o.PATCH("/:id", orderCtrl.Update)
		o.DELETE("/:id", orderCtrl.Delete)
	}

	// Admin: dessert inventory
	d := r.Group("/desserts", adminOnly)
	{
		d.POST("", dessertCtrl.Create)
		d.PATCH("/:id", dessertCtrl.Update)
		d.DELETE("/:id", dessertCtrl.Delete)
		d.POST("/reset", dessertCtrl.ResetAll)
	}

	// Admin: menu configuration
	m := r.Group("", adminOnly)
	{
		m.POST("/meal-options", menuCtrl.AddMeal)
		m.DELETE("/meal-options/:id", menuCtrl.DeleteMeal)
		m.POST("/sub-item-options", menuCtrl.AddSubItem)
		m.DELETE("/sub-item-options/:id", menuCtrl.DeleteSubItem)
	}

	// Admin: pay it forward ledger
	p := r.Group("/pay-it-forward", adminOnly)
	{
		p.GET("/donations", fundCtrl.Donations)
		p.POST("/donations", fundCtrl.Donate)
		p.GET("/usage", fundCtrl.Usage)
		p.POST("/usage", fundCtrl.Use)
	}

	// Admin: attendance
	att := r.Group("/attendance", adminOnly)
	{
		att.GET("/summary", attendanceCtrl.Summary)
		att.GET("/weeks", attendanceCtrl.Weeks)
		att.POST("/sheets", attendanceCtrl.GenerateSheet)
		att.GET("/history", attendanceCtrl.History)
	}

	// Admin: housekeeping
	admin := r.Group("/admin", adminOnly)
	{
		admin.GET("/export", adminCtrl.Export)
		admin.DELETE("/orders", adminCtrl.ClearWeek)
		admin.POST("/clear-all", adminCtrl.ClearAll)
	}
}
