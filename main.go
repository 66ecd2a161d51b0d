package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"lifebalance-backend/config"
	"lifebalance-backend/controllers"
	"lifebalance-backend/models"
	"lifebalance-backend/routes"
	"lifebalance-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gopkg.in/telebot.v3"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}
	config.InitLogger()
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Goal{},
		&models.GoalValue{},
		&models.Reminder{},
		&models.NotificationLog{},
	)
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	bot, err := telebot.NewBot(telebot.Settings{
		Token: os.Getenv("BOT_TOKEN"),
		// Bounded timeout so one slow send cannot stall a reminder cycle.
		Client: &http.Client{Timeout: 10 * time.Second},
	})
	if err != nil {
		config.Log.WithError(err).Fatal("Could not create Telegram bot")
	}
	adapter := services.NewTelebotAdapter(bot)

	reminderService := services.NewReminderService(config.DB, adapter)
	reminderService.StartScheduler()
	defer reminderService.Stop()

	r := routes.SetupRouter(
		&controllers.ReminderController{Store: services.NewGormReminderStore(config.DB)},
		&controllers.PremiumController{Invoices: adapter},
	)
	printRoutes(r)
	if err := r.Run(":" + port); err != nil {
		config.Log.WithError(err).Fatal("Server stopped")
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
