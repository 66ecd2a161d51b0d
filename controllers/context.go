package controllers

import (
	"net/http"
	"strconv"

	"lifebalance-backend/utils"

	"github.com/gin-gonic/gin"
)

// pathUserID parses the :userId route parameter and checks it against the
// authenticated user. Responds with the appropriate error on mismatch.
func pathUserID(c *gin.Context) (int64, bool) {
	return matchAuthenticatedUser(c, c.Param("userId"))
}

// matchAuthenticatedUser parses a user ID string (route param or JSON body
// field) and verifies it names the authenticated user.
func matchAuthenticatedUser(c *gin.Context, raw string) (int64, bool) {
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return 0, false
	}

	authID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return 0, false
	}
	if authID != userID {
		utils.RespondWithError(c, http.StatusForbidden, "Access denied")
		return 0, false
	}
	return userID, true
}
