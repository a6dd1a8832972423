package models

import "time"

// Workspace holds the business profile created once at onboarding.
// There is at most one row per deployment and it is never deleted.
type Workspace struct {
	ID                            int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	BusinessName                  string     `gorm:"not null" json:"business_name" form:"business_name"`
	AddressLine                   string     `gorm:"not null" json:"address_line" form:"address_line"`
	City                          string     `gorm:"not null" json:"city" form:"city"`
	State                         string     `gorm:"not null" json:"state" form:"state"`
	PostalCode                    string     `gorm:"not null" json:"postal_code" form:"postal_code"`
	Timezone                      string     `gorm:"not null" json:"timezone" form:"timezone"`
	ActiveDays                    string     `gorm:"not null" json:"active_days" form:"active_days"` // CSV of weekday codes, ex: "Mon,Tue,Wed"
	ActiveHoursStart              string     `gorm:"not null" json:"active_hours_start" form:"active_hours_start"` // "HH:MM"
	ActiveHoursEnd                string     `gorm:"not null" json:"active_hours_end" form:"active_hours_end"`     // "HH:MM"
	DefaultServiceDurationMinutes int        `gorm:"not null" json:"default_service_duration_minutes" form:"default_service_duration_minutes"`
	IsActive                      bool       `gorm:"default:false" json:"is_active"`
	CreatedAt                     *time.Time `json:"created_at"`
}

func (ws Workspace) MissingFields() string {
	if ws.BusinessName == "" {
		return "business_name"
	} else if ws.ActiveDays == "" {
		return "active_days"
	} else if ws.ActiveHoursStart == "" {
		return "active_hours_start"
	} else if ws.ActiveHoursEnd == "" {
		return "active_hours_end"
	} else if ws.DefaultServiceDurationMinutes <= 0 {
		return "default_service_duration_minutes"
	}
	return ""
}
