package controllers

import (
	"errors"
	"net/http"

	"lifebalance-backend/config"
	"lifebalance-backend/models"
	"lifebalance-backend/services"
	"lifebalance-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PremiumController handles the premium tier: Stars invoices and status flags
type PremiumController struct {
	Invoices services.InvoiceLinker
}

type CreateInvoiceInput struct {
	Title       string                  `json:"title" binding:"required"`
	Description string                  `json:"description" binding:"required"`
	Payload     string                  `json:"payload" binding:"required"`
	Prices      []services.InvoicePrice `json:"prices" binding:"required"`
}

type UpdatePremiumStatusInput struct {
	UserID    string `json:"userId" binding:"required"`
	IsPremium *bool  `json:"isPremium" binding:"required"`
}

// CreateInvoice creates a Telegram Stars invoice link for the premium upgrade
func (pc *PremiumController) CreateInvoice(c *gin.Context) {
	var input CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	link, err := pc.Invoices.CreateInvoiceLink(input.Title, input.Description, input.Payload, input.Prices)
	if err != nil {
		config.Log.WithError(err).Error("Failed to create invoice link")
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "Failed to create invoice link"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "result": link})
}

// UpdatePremiumStatus flips the premium flag after a completed payment
func (pc *PremiumController) UpdatePremiumStatus(c *gin.Context) {
	var input UpdatePremiumStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	userID, ok := matchAuthenticatedUser(c, input.UserID)
	if !ok {
		return
	}

	result := config.DB.Model(&models.User{}).
		Where("telegram_id = ?", userID).
		Update("is_premium", *input.IsPremium)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update premium status")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Premium status updated"})
}

// GetPremiumStatus returns the user's premium flag
func (pc *PremiumController) GetPremiumStatus(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
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

	c.JSON(http.StatusOK, gin.H{"isPremium": user.IsPremium})
}
