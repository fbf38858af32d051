package reseller

import (
	"net/http"

	"undangan-app/database"
	"undangan-app/internal/domain/billing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func GetEarnings(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var earnings []billing.ResellerEarning
	if err := database.DB.
		Where("reseller_id = ?", userID).
		Order("earned_at DESC").
		Find(&earnings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load earnings"})
		return
	}

	total := decimal.Zero
	for _, e := range earnings {
		total = total.Add(e.CommissionAmount)
	}

	c.JSON(http.StatusOK, gin.H{
		"earnings":       earnings,
		"total_earnings": total,
	})
}
