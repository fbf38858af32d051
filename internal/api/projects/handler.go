package projects

import (
	"errors"
	"net/http"
	"time"

	"undangan-app/database"
	"undangan-app/internal/domain/projects"
	"undangan-app/internal/domain/templates"
	"undangan-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func CheckSubdomain(c *gin.Context) {
	subdomain := projects.NormalizeSubdomain(c.Query("subdomain"))
	if err := projects.ValidateSubdomain(subdomain); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	taken, err := projects.IsSubdomainTaken(database.DB, subdomain)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check subdomain"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"subdomain": subdomain, "available": !taken})
}

func CreateProject(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input struct {
		TemplateID     uint           `json:"template_id" binding:"required"`
		ResellerID     *uint          `json:"reseller_id"`
		Subdomain      string         `json:"subdomain" binding:"required"`
		BrideName      string         `json:"bride_name" binding:"required"`
		GroomName      string         `json:"groom_name" binding:"required"`
		EventDate      time.Time      `json:"event_date" binding:"required"`
		EventTime      string         `json:"event_time" binding:"required"`
		VenueName      string         `json:"venue_name" binding:"required"`
		VenueAddress   string         `json:"venue_address" binding:"required"`
		VenueLatitude  *float64       `json:"venue_latitude"`
		VenueLongitude *float64       `json:"venue_longitude"`
		HeroPhotoURL   *string        `json:"hero_photo_url"`
		AdditionalInfo *string        `json:"additional_info"`
		CustomData     datatypes.JSON `json:"custom_data"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var tpl templates.Template
	if err := database.DB.First(&tpl, input.TemplateID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Template not found"})
		return
	}

	if input.ResellerID != nil {
		var reseller users.User
		err := database.DB.
			Where("id = ? AND role = ?", *input.ResellerID, users.RoleReseller).
			First(&reseller).Error
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Reseller not found"})
			return
		}
	}

	subdomain := projects.NormalizeSubdomain(input.Subdomain)
	if err := projects.ValidateSubdomain(subdomain); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project := projects.Project{
		UserID:         userID,
		ResellerID:     input.ResellerID,
		TemplateID:     input.TemplateID,
		Subdomain:      subdomain,
		BrideName:      input.BrideName,
		GroomName:      input.GroomName,
		EventDate:      input.EventDate,
		EventTime:      input.EventTime,
		VenueName:      input.VenueName,
		VenueAddress:   input.VenueAddress,
		VenueLatitude:  input.VenueLatitude,
		VenueLongitude: input.VenueLongitude,
		HeroPhotoURL:   input.HeroPhotoURL,
		AdditionalInfo: input.AdditionalInfo,
		CustomData:     input.CustomData,
		Status:         projects.StatusDraft,
	}

	if err := database.DB.Create(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Subdomain already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, project)
}

func ListMyProjects(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var list []projects.Project
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetProjectBySubdomain is the public microsite read. Only published
// projects are visible to guests.
func GetProjectBySubdomain(c *gin.Context) {
	var project projects.Project
	err := database.DB.
		Where("subdomain = ? AND status = ?", c.Param("subdomain"), projects.StatusPublished).
		First(&project).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, project)
}

func UpdateProject(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var project projects.Project
	if err := database.DB.
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&project).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	var input struct {
		BrideName      *string         `json:"bride_name"`
		GroomName      *string         `json:"groom_name"`
		EventDate      *time.Time      `json:"event_date"`
		EventTime      *string         `json:"event_time"`
		VenueName      *string         `json:"venue_name"`
		VenueAddress   *string         `json:"venue_address"`
		VenueLatitude  *float64        `json:"venue_latitude"`
		VenueLongitude *float64        `json:"venue_longitude"`
		HeroPhotoURL   *string         `json:"hero_photo_url"`
		AdditionalInfo *string         `json:"additional_info"`
		CustomData     *datatypes.JSON `json:"custom_data"`
		Status         *string         `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.BrideName != nil {
		project.BrideName = *input.BrideName
	}
	if input.GroomName != nil {
		project.GroomName = *input.GroomName
	}
	if input.EventDate != nil {
		project.EventDate = *input.EventDate
	}
	if input.EventTime != nil {
		project.EventTime = *input.EventTime
	}
	if input.VenueName != nil {
		project.VenueName = *input.VenueName
	}
	if input.VenueAddress != nil {
		project.VenueAddress = *input.VenueAddress
	}
	if input.VenueLatitude != nil {
		project.VenueLatitude = input.VenueLatitude
	}
	if input.VenueLongitude != nil {
		project.VenueLongitude = input.VenueLongitude
	}
	if input.HeroPhotoURL != nil {
		project.HeroPhotoURL = input.HeroPhotoURL
	}
	if input.AdditionalInfo != nil {
		project.AdditionalInfo = input.AdditionalInfo
	}
	if input.CustomData != nil {
		project.CustomData = *input.CustomData
	}
	if input.Status != nil {
		switch *input.Status {
		case projects.StatusDraft, projects.StatusPublished, projects.StatusArchived:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project status"})
			return
		}
		if *input.Status == projects.StatusPublished && project.Status != projects.StatusPublished {
			now := time.Now()
			project.PublishedAt = &now
		}
		project.Status = *input.Status
	}

	if err := database.DB.Save(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	c.JSON(http.StatusOK, project)
}
