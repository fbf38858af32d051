package billing

import (
	"net/http"

	"undangan-app/database"
	"undangan-app/internal/domain/billing"
	"undangan-app/internal/domain/projects"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CreatePayment opens a pending payment attempt for one of the caller's
// projects. The gateway id arrives later (or in the same call, when the
// client already initiated the gateway checkout).
func CreatePayment(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input struct {
		ProjectID        uint            `json:"project_id" binding:"required"`
		Amount           decimal.Decimal `json:"amount" binding:"required"`
		Currency         string          `json:"currency" binding:"required,len=3"`
		PaymentGateway   string          `json:"payment_gateway" binding:"required"`
		PaymentMethod    *string         `json:"payment_method"`
		GatewayPaymentID *string         `json:"gateway_payment_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !input.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be positive"})
		return
	}

	var project projects.Project
	if err := database.DB.
		Where("id = ? AND user_id = ?", input.ProjectID, userID).
		First(&project).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	payment := billing.Payment{
		ProjectID:        project.ID,
		UserID:           userID,
		Amount:           input.Amount,
		Currency:         input.Currency,
		PaymentMethod:    input.PaymentMethod,
		PaymentGateway:   input.PaymentGateway,
		GatewayPaymentID: input.GatewayPaymentID,
		Status:           billing.StatusPending,
	}

	if err := database.DB.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment"})
		return
	}

	c.JSON(http.StatusCreated, payment)
}

func GetPaymentHistory(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var payments []billing.Payment
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}
