package models

import "time"

/************************************************
/**** MARK: BOOKING STATUS ****/
/************************************************/
const BOOKING_STATUS_PENDING = "pending"
const BOOKING_STATUS_CONFIRMED = "confirmed"

// Booking is a scheduled service guarded by a secret confirmation code.
// Only the salted hash of the code is stored; the plaintext is returned
// exactly once at creation for out-of-band delivery.
//
// Lifecycle: pending -> confirmed, one way, exactly once. CodeAttempts
// counts failed confirmation attempts; past the configured limit the
// booking stops accepting codes.
type Booking struct {
	ID             int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	TicketID       int64      `gorm:"not null;index" json:"ticket_id"`
	ContactID      int64      `gorm:"not null;index" json:"contact_id"`
	ServiceType    string     `gorm:"not null" json:"service_type"`
	StartTime      time.Time  `gorm:"not null" json:"start_time"`
	EndTime        time.Time  `gorm:"not null" json:"end_time"`
	Status         string     `gorm:"not null;default:'pending';index" json:"status"`
	SecretCodeHash string     `gorm:"column:secret_code_hash;not null" json:"-"`
	CodeAttempts   int        `gorm:"not null;default:0" json:"-"`
	CreatedAt      *time.Time `json:"created_at"`
}
