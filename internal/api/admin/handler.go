package admin

import (
	"net/http"

	"undangan-app/database"
	"undangan-app/internal/domain/billing"
	"undangan-app/internal/domain/projects"
	"undangan-app/internal/domain/rsvp"
	"undangan-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func AdminDashboard(c *gin.Context) {
	var (
		totalUsers     int64
		totalResellers int64
		totalProjects  int64
		paidProjects   int64
		totalRsvps     int64
	)

	db := database.DB
	db.Model(&users.User{}).Count(&totalUsers)
	db.Model(&users.User{}).Where("role = ?", users.RoleReseller).Count(&totalResellers)
	db.Model(&projects.Project{}).Count(&totalProjects)
	db.Model(&projects.Project{}).Where("is_paid = ?", true).Count(&paidProjects)
	db.Model(&rsvp.Rsvp{}).Count(&totalRsvps)

	var revenue struct{ Total decimal.Decimal }
	if err := db.Model(&billing.Payment{}).
		Where("status = ?", billing.StatusPaid).
		Select("COALESCE(SUM(amount), 0) AS total").
		Scan(&revenue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sum revenue"})
		return
	}

	var commissions struct{ Total decimal.Decimal }
	if err := db.Model(&billing.ResellerEarning{}).
		Select("COALESCE(SUM(commission_amount), 0) AS total").
		Scan(&commissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sum commissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_users":       totalUsers,
		"total_resellers":   totalResellers,
		"total_projects":    totalProjects,
		"paid_projects":     paidProjects,
		"total_rsvps":       totalRsvps,
		"total_revenue":     revenue.Total,
		"total_commissions": commissions.Total,
	})
}

func ListAllUsers(c *gin.Context) {
	var list []users.User
	if err := database.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func ListAllPayments(c *gin.Context) {
	var list []billing.Payment
	if err := database.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}
	c.JSON(http.StatusOK, list)
}
