package models

import "time"

/************************************************
/**** MARK: USER ROLES ****/
/************************************************/
const USER_ROLE_OWNER = "owner"
const USER_ROLE_STAFF = "staff"

// User is a staff or owner account. Clients are Contacts, not Users.
type User struct {
	ID           int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name         string     `gorm:"not null" json:"name" form:"name"`
	Username     string     `gorm:"not null;unique_index" json:"username" form:"username"`
	PasswordHash string     `gorm:"column:password_hash;not null" json:"-"`
	Role         string     `gorm:"not null" json:"role"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	CreatedAt    *time.Time `json:"created_at"`
}
