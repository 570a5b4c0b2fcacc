package routes

import (
	"github.com/Asif-Uchchas/qalby/controllers"
	"github.com/Asif-Uchchas/qalby/middlewares"
	"github.com/Asif-Uchchas/qalby/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	hub := services.NewRealtimeHub()
	users := services.NewUserService(db)

	authCtl := controllers.NewAuthController(services.NewAuthService(db))
	userCtl := controllers.NewUserController(users)
	dailyLogCtl := controllers.NewDailyLogController(services.NewDailyLogService(db), users, hub)
	prayerCtl := controllers.NewPrayerController(services.NewPrayerService(db), users, hub)
	quranCtl := controllers.NewQuranController(services.NewQuranService(db), users, hub)
	dhikrCtl := controllers.NewDhikrController(services.NewDhikrService(db), users, hub)
	goalCtl := controllers.NewGoalController(services.NewGoalService(db), users)
	duaCtl := controllers.NewDuaController(services.NewDuaService(db))
	plannerCtl := controllers.NewPlannerController(services.NewPlannerService(db), users, hub)
	reflectionCtl := controllers.NewReflectionController(services.NewReflectionService(db), users)
	dashboardCtl := controllers.NewDashboardController(services.NewDashboardService(db), users)
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.POST("/forgot-password", authCtl.ForgotPassword)
		auth.POST("/reset-password", authCtl.ResetPassword)
	}

	// Everything else requires a session
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", userCtl.GetProfile)
		api.PUT("/user/profile", userCtl.UpdateProfile)
		api.PUT("/user/password", userCtl.UpdatePassword)

		api.GET("/daily-logs", dailyLogCtl.Get)
		api.POST("/daily-logs", dailyLogCtl.Upsert)

		api.GET("/prayers", prayerCtl.Get)
		api.POST("/prayers", prayerCtl.SetStatus)

		api.GET("/quran", quranCtl.Get)
		api.POST("/quran", quranCtl.MarkJuz)
		api.PATCH("/quran", quranCtl.SetPages)

		api.GET("/dhikr", dhikrCtl.Get)
		api.POST("/dhikr", dhikrCtl.Record)

		api.GET("/planner", plannerCtl.List)
		api.POST("/planner", plannerCtl.Create)
		api.PATCH("/planner", plannerCtl.Update)
		api.DELETE("/planner", plannerCtl.Delete)

		api.GET("/goals", goalCtl.List)
		api.POST("/goals", goalCtl.Create)
		api.PATCH("/goals", goalCtl.UpsertEntry)

		api.GET("/duas/favorites", duaCtl.ListFavorites)
		api.POST("/duas/favorites", duaCtl.ToggleFavorite)

		api.GET("/reflections", reflectionCtl.List)
		api.POST("/reflections", reflectionCtl.Create)

		api.GET("/dashboard", dashboardCtl.Summary)

		api.GET("/ws", realtimeCtl.ProgressWS)
	}

	return r
}
