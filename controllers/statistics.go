package controllers

import (
	"math"
	"net/http"
	"time"

	"lifebalance-backend/config"
	"lifebalance-backend/utils"

	"github.com/gin-gonic/gin"
)

// AspectRating is the averaged rating of one life goal over a period
type AspectRating struct {
	Aspect string  `json:"aspect"`
	Rating float64 `json:"rating"`
}

// GetStatistics returns per-goal average ratings over week, month or year
func GetStatistics(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	period := c.Param("period")
	startDate, valid := periodStart(period, time.Now().UTC())
	if !valid {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid period")
		return
	}
	endDate := utils.LocalDateString(time.Now().UTC(), time.UTC)

	rows := make([]AspectRating, 0)
	err := config.DB.Raw(`
		SELECT g.name AS aspect, AVG(gv.value) AS rating
		FROM goals g
		JOIN goal_values gv ON g.id = gv.goal_id
		WHERE g.user_id = ? AND gv.date BETWEEN ? AND ?
		GROUP BY g.id, g.name, g.position
		ORDER BY g.position
	`, userID, startDate, endDate).Scan(&rows).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute statistics")
		return
	}

	for i := range rows {
		rows[i].Rating = math.Round(rows[i].Rating*10) / 10
	}

	c.JSON(http.StatusOK, gin.H{period: rows})
}

// periodStart returns the YYYY-MM-DD lower bound for a statistics period
func periodStart(period string, now time.Time) (string, bool) {
	var start time.Time
	switch period {
	case "week":
		start = now.AddDate(0, 0, -7)
	case "month":
		start = now.AddDate(0, -1, 0)
	case "year":
		start = now.AddDate(-1, 0, 0)
	default:
		return "", false
	}
	return utils.LocalDateString(start, time.UTC), true
}
