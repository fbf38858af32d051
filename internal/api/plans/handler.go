package plans

import (
	"net/http"

	"undangan-app/database"
	"undangan-app/internal/domain/plans"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

func ListPlans(c *gin.Context) {
	var list []plans.Plan
	if err := database.DB.
		Where("is_active = ?", true).
		Order("price ASC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plans"})
		return
	}

	c.JSON(http.StatusOK, list)
}

func CreatePlan(c *gin.Context) {
	var input struct {
		Name        string          `json:"name" binding:"required"`
		Description *string         `json:"description"`
		Price       decimal.Decimal `json:"price" binding:"required"`
		Currency    string          `json:"currency" binding:"required,len=3"`
		Features    datatypes.JSON  `json:"features" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
		return
	}

	plan := plans.Plan{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Currency:    input.Currency,
		Features:    input.Features,
		IsActive:    true,
	}

	if err := database.DB.Create(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create plan"})
		return
	}

	c.JSON(http.StatusCreated, plan)
}
