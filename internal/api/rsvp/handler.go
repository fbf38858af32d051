package rsvp

import (
	"net/http"
	"time"

	"undangan-app/database"
	"undangan-app/internal/domain/projects"
	"undangan-app/internal/domain/rsvp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateRsvp lets the project owner create a guest invite; the returned
// unique_link is what goes into the invitation message.
func CreateRsvp(c *gin.Context) {
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
		GuestName  string  `json:"guest_name" binding:"required"`
		GuestEmail *string `json:"guest_email"`
		GuestPhone *string `json:"guest_phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invite := rsvp.Rsvp{
		ProjectID:  project.ID,
		GuestName:  input.GuestName,
		GuestEmail: input.GuestEmail,
		GuestPhone: input.GuestPhone,
		Status:     rsvp.StatusMaybe,
		GuestCount: 1,
		UniqueLink: uuid.NewString(),
	}

	if err := database.DB.Create(&invite).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create RSVP"})
		return
	}

	c.JSON(http.StatusCreated, invite)
}

// RespondRsvp is the public guest response by invite link.
func RespondRsvp(c *gin.Context) {
	var invite rsvp.Rsvp
	if err := database.DB.
		Where("unique_link = ?", c.Param("link")).
		First(&invite).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invite not found"})
		return
	}

	var input struct {
		Status     string  `json:"status" binding:"required"`
		GuestCount *int    `json:"guest_count"`
		Message    *string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !rsvp.ValidStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be 'yes', 'no' or 'maybe'"})
		return
	}

	invite.Status = input.Status
	if input.GuestCount != nil {
		if *input.GuestCount < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Guest count must be at least 1"})
			return
		}
		invite.GuestCount = *input.GuestCount
	}
	if input.Message != nil {
		invite.Message = input.Message
	}
	now := time.Now()
	invite.RespondedAt = &now

	if err := database.DB.Save(&invite).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save response"})
		return
	}

	c.JSON(http.StatusOK, invite)
}

func ListProjectRsvps(c *gin.Context) {
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

	var list []rsvp.Rsvp
	if err := database.DB.
		Where("project_id = ?", project.ID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load RSVPs"})
		return
	}

	c.JSON(http.StatusOK, list)
}
