package models

import "time"

/************************************************
/**** MARK: CONVERSATION STATUS ****/
/************************************************/
const CONVERSATION_STATUS_OPEN = "open"
const CONVERSATION_STATUS_CLOSED = "closed"

// Conversation is the single message thread of a Contact.
// The unique index on contact_id enforces one conversation per contact.
type Conversation struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	ContactID int64      `gorm:"not null;unique_index" json:"contact_id"`
	Status    string     `gorm:"not null;default:'open';index" json:"status"`
	CreatedAt *time.Time `json:"created_at"`
}
