package models

import "time"

// Contact is a client identified by a normalized phone number.
// Created lazily on the first form submission; never deleted.
// The name is first-write-wins: repeat submissions do not overwrite it.
type Contact struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name      string     `gorm:"not null" json:"name" form:"name"`
	Phone     string     `gorm:"not null;unique_index" json:"phone" form:"phone"`
	CreatedAt *time.Time `json:"created_at"`
}
