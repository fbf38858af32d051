package templates

import (
	"net/http"

	"undangan-app/database"
	"undangan-app/internal/domain/templates"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

func ListTemplates(c *gin.Context) {
	var list []templates.Template
	if err := database.DB.
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load templates"})
		return
	}

	c.JSON(http.StatusOK, list)
}

func GetTemplate(c *gin.Context) {
	var tpl templates.Template
	if err := database.DB.Where("id = ?", c.Param("id")).First(&tpl).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	c.JSON(http.StatusOK, tpl)
}

func CreateTemplate(c *gin.Context) {
	var input struct {
		Name         string         `json:"name" binding:"required"`
		Description  *string        `json:"description"`
		ThumbnailURL string         `json:"thumbnail_url" binding:"required"`
		TemplateData datatypes.JSON `json:"template_data" binding:"required"`
		IsPremium    bool           `json:"is_premium"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tpl := templates.Template{
		Name:         input.Name,
		Description:  input.Description,
		ThumbnailURL: input.ThumbnailURL,
		TemplateData: input.TemplateData,
		IsActive:     true,
		IsPremium:    input.IsPremium,
	}

	if err := database.DB.Create(&tpl).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create template"})
		return
	}

	c.JSON(http.StatusCreated, tpl)
}
