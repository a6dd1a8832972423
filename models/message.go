package models

import "time"

/************************************************
/**** MARK: MESSAGE SENDERS ****/
/************************************************/
const MESSAGE_SENDER_CLIENT = "client"
const MESSAGE_SENDER_STAFF = "staff"

// Message is an immutable entry in a conversation, ordered by timestamp
// (ties broken by insertion order).
type Message struct {
	ID             int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	ConversationID int64      `gorm:"not null;index" json:"conversation_id"`
	Sender         string     `gorm:"not null" json:"sender"`
	Body           string     `gorm:"type:text;not null" json:"body"`
	Timestamp      *time.Time `gorm:"index" json:"timestamp"`
	CreatedAt      *time.Time `json:"created_at"`
}
