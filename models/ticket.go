package models

import "time"

/************************************************
/**** MARK: TICKET FORM TYPES ****/
/************************************************/
const TICKET_FORM_QUERY = "query"
const TICKET_FORM_BOOKING = "booking"
const TICKET_FORM_FEEDBACK = "feedback"

/************************************************
/**** MARK: TICKET STATUS ****/
/************************************************/
const TICKET_STATUS_SUBMITTED = "submitted"

// Ticket correlates a submitted form with a contact and its conversation.
// The ticket number is a human-readable handle ("TCK-" + 8 hex chars),
// unique by index; collisions on insert are retried by the issuer.
type Ticket struct {
	ID             int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	TicketNumber   string     `gorm:"column:ticket_number;not null;unique_index" json:"ticket_number"`
	FormType       string     `gorm:"not null" json:"form_type"`
	ContactID      int64      `gorm:"not null;index" json:"contact_id"`
	ConversationID int64      `gorm:"not null;index" json:"conversation_id"`
	Status         string     `gorm:"not null;default:'submitted'" json:"status"`
	CreatedAt      *time.Time `json:"created_at"`
}
