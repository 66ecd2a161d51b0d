// controllers/reminder.go
package controllers

import (
	"errors"
	"net/http"

	"lifebalance-backend/services"
	"lifebalance-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReminderController exposes the reminder configuration endpoints. Dispatch
// itself is internal to the scheduler; only settings are reachable over HTTP.
type ReminderController struct {
	Store services.ReminderStore
}

type SetReminderInput struct {
	UserID    string `json:"userId" binding:"required"`
	Frequency int    `json:"frequency" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Timezone  string `json:"timezone" binding:"required"`
}

// GetReminder returns the user's reminder settings, or null when none exist
func (rc *ReminderController) GetReminder(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	reminder, err := rc.Store.Get(userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reminder")
		return
	}

	c.JSON(http.StatusOK, reminder)
}

// SetReminder upserts the user's reminder settings wholesale
func (rc *ReminderController) SetReminder(c *gin.Context) {
	var input SetReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	userID, ok := matchAuthenticatedUser(c, input.UserID)
	if !ok {
		return
	}

	reminder, err := rc.Store.Upsert(userID, input.Frequency, input.Time, input.Timezone)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save reminder")
		return
	}

	c.JSON(http.StatusCreated, reminder)
}
