package controllers

import (
	"net/http"

	dbpkg "opsdesk/db"
	"opsdesk/models"
	"opsdesk/tools"

	"github.com/gin-gonic/gin"
)

// GET /owner
func OwnerDashboard(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var totalLeads int
	db.Model(&models.Contact{}).Count(&totalLeads)

	var activeConversations int
	db.Model(&models.Conversation{}).
		Where("status = ?", models.CONVERSATION_STATUS_OPEN).
		Count(&activeConversations)

	var pendingBookings int
	db.Model(&models.Booking{}).
		Where("status = ?", models.BOOKING_STATUS_PENDING).
		Count(&pendingBookings)

	var confirmedBookings int
	db.Model(&models.Booking{}).
		Where("status = ?", models.BOOKING_STATUS_CONFIRMED).
		Count(&confirmedBookings)

	var items []models.Inventory
	db.Find(&items)

	lowStock := 0
	for _, item := range items {
		if item.IsLowStock() {
			lowStock++
		}
	}

	RespondSuccess(c, gin.H{
		"total_leads":          totalLeads,
		"active_conversations": activeConversations,
		"pending_bookings":     pendingBookings,
		"confirmed_bookings":   confirmedBookings,
		"total_inventory":      len(items),
		"low_stock":            lowStock,
		"healthy_stock":        len(items) - lowStock,
	})
}

// GET /owner/staff
func ListStaff(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var staff []models.User
	if err := db.Where("role = ?", models.USER_ROLE_STAFF).Find(&staff).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{"staff": staff})
}

type StaffForm struct {
	Name     string `json:"name" form:"name"`
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// POST /owner/staff/add
func AddStaff(c *gin.Context) {
	var req StaffForm
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Username == "" || req.Password == "" {
		RespondError(c, "name, username e password são obrigatórios", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	hash, err := tools.HashPassword(req.Password)
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	staff := models.User{
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: hash,
		Role:         models.USER_ROLE_STAFF,
		IsActive:     true,
	}
	if err := db.Create(&staff).Error; err != nil {
		if isUniqueViolation(err) {
			RespondError(c, "username já em uso", http.StatusConflict)
			return
		}
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{"user": staff})
}
