package controllers

import (
	"net/http"
	"time"

	"lifebalance-backend/config"
	"lifebalance-backend/models"
	"lifebalance-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GoalValueInput struct {
	GoalID string `json:"goalId" binding:"required"`
	Value  int    `json:"value" binding:"required"`
}

type SaveGoalValuesInput struct {
	UserID string           `json:"userId" binding:"required"`
	Values []GoalValueInput `json:"values" binding:"required"`
}

// SaveGoalValues stores the submitted ratings under today's date. The day
// boundary follows the user's reminder timezone when one is configured,
// falling back to UTC.
func SaveGoalValues(c *gin.Context) {
	var input SaveGoalValuesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	userID, ok := matchAuthenticatedUser(c, input.UserID)
	if !ok {
		return
	}

	if len(input.Values) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "No values submitted")
		return
	}

	values := make([]models.GoalValue, 0, len(input.Values))
	date := utils.LocalDateString(time.Now().UTC(), userLocation(userID))
	for _, v := range input.Values {
		if v.Value < 1 || v.Value > 5 {
			utils.RespondWithError(c, http.StatusBadRequest, "Goal values must be between 1 and 5")
			return
		}
		goalUUID, err := uuid.Parse(v.GoalID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid goal ID format")
			return
		}
		values = append(values, models.GoalValue{
			UserID: userID,
			GoalID: goalUUID,
			Value:  v.Value,
			Date:   date,
		})
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		for i := range values {
			if err := tx.Create(&values[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save goal values")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Goal values saved successfully"})
}

// GetLatestGoalValues returns the most recent recorded value for each goal
func GetLatestGoalValues(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	var values []models.GoalValue
	err := config.DB.Raw(`
		SELECT gv.*
		FROM goal_values gv
		INNER JOIN (
			SELECT goal_id, MAX(date) AS max_date
			FROM goal_values
			WHERE user_id = ?
			GROUP BY goal_id
		) latest ON gv.goal_id = latest.goal_id AND gv.date = latest.max_date
		WHERE gv.user_id = ?
	`, userID, userID).Scan(&values).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve goal values")
		return
	}

	c.JSON(http.StatusOK, values)
}

// userLocation resolves the user's day boundary from their reminder timezone.
func userLocation(userID int64) *time.Location {
	var reminder models.Reminder
	if err := config.DB.Where("user_id = ?", userID).First(&reminder).Error; err != nil {
		return time.UTC
	}
	loc, err := time.LoadLocation(reminder.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
