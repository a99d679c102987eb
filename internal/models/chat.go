package models

import "time"

// Message is one direct chat message between a student and a coach.
// Either Text or ImageURL (or both) is set.
type Message struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	SenderID   uint   `gorm:"not null;index" json:"sender_id"`
	ReceiverID uint   `gorm:"not null;index" json:"receiver_id"`
	Text       string `json:"text,omitempty"`
	ImageURL   string `json:"image_url,omitempty"`
	Read       bool   `gorm:"default:false" json:"read"`

	CreatedAt time.Time `json:"created_at"`
}

// Conversation is the list-view roll-up of a chat partner.
type Conversation struct {
	PartnerID   uint      `json:"partner_id"`
	PartnerName string    `json:"partner_name"`
	LastMessage string    `json:"last_message"`
	LastAt      time.Time `json:"last_at"`
	UnreadCount int64     `json:"unread_count"`
}
