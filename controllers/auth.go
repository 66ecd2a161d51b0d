// controllers/auth.go
package controllers

import (
	"errors"
	"net/http"
	"os"
	"strconv"

	"lifebalance-backend/config"
	"lifebalance-backend/models"
	"lifebalance-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthInput struct {
	InitData string `json:"initData" binding:"required"`
}

// Authenticate validates Telegram Mini App launch data, creates the user on
// first contact (seeding the starter goals) and issues a session token.
func Authenticate(c *gin.Context) {
	var input AuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Init data is missing")
		return
	}

	botToken := os.Getenv("BOT_TOKEN")
	if botToken == "" {
		config.Log.Error("BOT_TOKEN is not set")
		utils.RespondWithError(c, http.StatusInternalServerError, "Server configuration error")
		return
	}

	userID, username, err := utils.ValidateInitData(input.InitData, botToken)
	if err != nil {
		config.Log.WithError(err).Warn("Init data validation failed")
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid init data")
		return
	}

	var user models.User
	err = config.DB.Where("telegram_id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{TelegramID: userID, Username: username}
		if err := ensureUserExists(&user); err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
	} else if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	token, err := utils.GenerateToken(userID)
	if err != nil {
		config.Log.WithError(err).Error("Failed to issue session token")
		utils.RespondWithError(c, http.StatusInternalServerError, "Server configuration error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userId":    strconv.FormatInt(userID, 10),
		"token":     token,
		"isPremium": user.IsPremium,
	})
}

// ensureUserExists creates the user together with the starter goal set.
func ensureUserExists(user *models.User) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		for i, name := range models.StarterGoals {
			goal := models.Goal{
				UserID:   user.TelegramID,
				Name:     name,
				Position: i + 1,
			}
			if err := tx.Create(&goal).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
