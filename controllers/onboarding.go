package controllers

import (
	"net/http"

	dbpkg "opsdesk/db"
	"opsdesk/models"
	"opsdesk/tools"

	"github.com/gin-gonic/gin"
)

type OnboardingForm struct {
	BusinessName                  string `json:"business_name" form:"business_name"`
	AddressLine                   string `json:"address_line" form:"address_line"`
	City                          string `json:"city" form:"city"`
	State                         string `json:"state" form:"state"`
	PostalCode                    string `json:"postal_code" form:"postal_code"`
	Timezone                      string `json:"timezone" form:"timezone"`
	ActiveDays                    string `json:"active_days" form:"active_days"`
	ActiveHoursStart              string `json:"active_hours_start" form:"active_hours_start"`
	ActiveHoursEnd                string `json:"active_hours_end" form:"active_hours_end"`
	DefaultServiceDurationMinutes int    `json:"default_service_duration_minutes" form:"default_service_duration_minutes"`

	// conta do dono
	Name     string `json:"name" form:"name"`
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// POST /onboarding
//
// Cria o workspace singleton, a conta do owner e o item de estoque padrão
// em uma transação. Só roda uma vez: se já existe owner, devolve 409.
func Onboard(c *gin.Context) {
	var req OnboardingForm
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var owner models.User
	if err := db.Where("role = ?", models.USER_ROLE_OWNER).First(&owner).Error; err == nil {
		RespondError(c, "workspace já configurado", http.StatusConflict)
		return
	}

	workspace := models.Workspace{
		BusinessName:                  req.BusinessName,
		AddressLine:                   req.AddressLine,
		City:                          req.City,
		State:                         req.State,
		PostalCode:                    req.PostalCode,
		Timezone:                      req.Timezone,
		ActiveDays:                    req.ActiveDays,
		ActiveHoursStart:              req.ActiveHoursStart,
		ActiveHoursEnd:                req.ActiveHoursEnd,
		DefaultServiceDurationMinutes: req.DefaultServiceDurationMinutes,
		IsActive:                      true,
	}
	if missing := workspace.MissingFields(); missing != "" {
		RespondError(c, "Faltando campo "+missing, http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Username == "" || req.Password == "" {
		RespondError(c, "name, username e password são obrigatórios", http.StatusBadRequest)
		return
	}
	if _, err := RulesFromWorkspace(&workspace); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	hash, err := tools.HashPassword(req.Password)
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	tx := db.Begin()

	if err := tx.Create(&workspace).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	user := models.User{
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: hash,
		Role:         models.USER_ROLE_OWNER,
		IsActive:     true,
	}
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	defaultItem := models.Inventory{Name: "consumable_1", Quantity: 0, Threshold: 5}
	if err := tx.Create(&defaultItem).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	// auto-login do owner
	signed, err := signToken(user)
	if err != nil {
		RespondError(c, "erro ao assinar token", http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, LoginResponse{Token: signed, User: user})
}
