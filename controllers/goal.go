package controllers

import (
	"errors"
	"net/http"
	"strings"

	"lifebalance-backend/config"
	"lifebalance-backend/models"
	"lifebalance-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateGoalInput defines the expected JSON structure for creating a goal
type CreateGoalInput struct {
	UserID   string `json:"userId" binding:"required"`
	GoalName string `json:"goalName" binding:"required"`
}

type UpdateGoalInput struct {
	GoalName string `json:"goalName" binding:"required"`
}

type ReorderGoalsInput struct {
	UserID  string   `json:"userId" binding:"required"`
	GoalIDs []string `json:"goalIds" binding:"required"`
}

// GetGoals retrieves all goals of a user in display order
func GetGoals(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	var goals []models.Goal
	if err := config.DB.Where("user_id = ?", userID).Order("position").Find(&goals).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve goals")
		return
	}

	c.JSON(http.StatusOK, goals)
}

// CreateGoal creates a new goal, enforcing the tier's slot limit
func CreateGoal(c *gin.Context) {
	var input CreateGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	userID, ok := matchAuthenticatedUser(c, input.UserID)
	if !ok {
		return
	}

	name := strings.TrimSpace(input.GoalName)
	if name == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Goal name must not be empty")
		return
	}

	var user models.User
	if err := config.DB.Where("telegram_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var count int64
	if err := config.DB.Model(&models.Goal{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if int(count) >= user.GoalLimit() {
		utils.RespondWithError(c, http.StatusConflict, "Goal limit reached for this account tier")
		return
	}

	goal := models.Goal{
		UserID:   userID,
		Name:     name,
		Position: int(count) + 1,
	}
	if err := config.DB.Create(&goal).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create goal")
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// UpdateGoal renames an existing goal
func UpdateGoal(c *gin.Context) {
	authID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	goalUUID, err := uuid.Parse(c.Param("goalId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid goal ID format")
		return
	}

	var input UpdateGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	name := strings.TrimSpace(input.GoalName)
	if name == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Goal name must not be empty")
		return
	}

	var goal models.Goal
	if err := config.DB.Where("user_id = ? AND id = ?", authID, goalUUID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Goal not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	goal.Name = name
	if err := config.DB.Save(&goal).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update goal")
		return
	}

	c.JSON(http.StatusOK, goal)
}

// DeleteGoal removes a goal together with its recorded values
func DeleteGoal(c *gin.Context) {
	authID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	goalUUID, err := uuid.Parse(c.Param("goalId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid goal ID format")
		return
	}

	var deleted int64
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND id = ?", authID, goalUUID).Delete(&models.Goal{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		if deleted == 0 {
			return nil
		}
		return tx.Where("user_id = ? AND goal_id = ?", authID, goalUUID).Delete(&models.GoalValue{}).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete goal")
		return
	}
	if deleted == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Goal not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted successfully"})
}

// ReorderGoals rewrites the display order of a user's goals
func ReorderGoals(c *gin.Context) {
	var input ReorderGoalsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	userID, ok := matchAuthenticatedUser(c, input.UserID)
	if !ok {
		return
	}

	goalUUIDs := make([]uuid.UUID, 0, len(input.GoalIDs))
	for _, raw := range input.GoalIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid goal ID format")
			return
		}
		goalUUIDs = append(goalUUIDs, id)
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		for i, goalID := range goalUUIDs {
			result := tx.Model(&models.Goal{}).
				Where("user_id = ? AND id = ?", userID, goalID).
				Update("position", i+1)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Goal not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to reorder goals")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goals reordered successfully"})
}
