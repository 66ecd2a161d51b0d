package routes

import (
	"lifebalance-backend/config"
	"lifebalance-backend/controllers"
	"lifebalance-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(reminders *controllers.ReminderController, premium *controllers.PremiumController) *gin.Engine {
	r := gin.Default()

	// The Mini App is served from the Telegram webview, so origins vary.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length"},
	}))

	r.Use(config.PerformanceLogger())

	api := r.Group("/api")
	api.POST("/auth", controllers.Authenticate)

	authed := api.Group("")
	authed.Use(utils.AuthMiddleware())
	{
		// Goal routes
		goals := authed.Group("/goals")
		{
			goals.GET("/:userId", controllers.GetGoals)
			goals.POST("", controllers.CreateGoal)
			goals.PUT("/reorder", controllers.ReorderGoals)
			goals.PUT("/:goalId", controllers.UpdateGoal)
			goals.DELETE("/:goalId", controllers.DeleteGoal)
		}

		// Daily rating routes
		authed.POST("/goal-values", controllers.SaveGoalValues)
		authed.GET("/goal-values/:userId", controllers.GetLatestGoalValues)

		// Statistics routes
		authed.GET("/statistics/:userId/:period", controllers.GetStatistics)

		// Reminder routes
		authed.GET("/reminder/:userId", reminders.GetReminder)
		authed.POST("/reminder", reminders.SetReminder)

		// Premium routes
		authed.POST("/create-invoice", premium.CreateInvoice)
		authed.POST("/update-premium-status", premium.UpdatePremiumStatus)
		authed.GET("/premium-status/:userId", premium.GetPremiumStatus)
	}

	return r
}
