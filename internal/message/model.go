// File: internal/message/model.go
package message

import (
	"time"

	"adoptaunpana_backend/internal/listing"

	"github.com/google/uuid"
)

// Message is an enquiry sent by an adopter to the contact of a listing.
type Message struct {
	ID          uuid.UUID           `gorm:"type:uuid;primaryKey"`
	ListingID   uuid.UUID           `gorm:"type:uuid;not null;index:idx_messages_listing"`
	Listing     *listing.DogListing `gorm:"foreignKey:ListingID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	SenderName  string              `gorm:"type:text;not null"`
	SenderEmail string              `gorm:"type:text;not null"`
	SenderPhone *string             `gorm:"type:text"`
	Message     string              `gorm:"type:text;not null"`
	IsRead      bool                `gorm:"not null;index:idx_messages_unread"`
	CreatedAt   time.Time           `gorm:"not null;index:idx_messages_created,sort:desc"`
}

// TableName specifies the table name for the Message model.
func (Message) TableName() string {
	return "messages"
}

// ListingRef is the expanded listing shown alongside a message.
type ListingRef struct {
	DogName      string `json:"dogName"`
	ContactEmail string `json:"contactEmail"`
}

// MessageResponse is a message as sent to clients.
type MessageResponse struct {
	ID          uuid.UUID   `json:"id"`
	ListingID   uuid.UUID   `json:"listing_id"`
	SenderName  string      `json:"senderName"`
	SenderEmail string      `json:"senderEmail"`
	SenderPhone *string     `json:"senderPhone"`
	Message     string      `json:"message"`
	IsRead      bool        `json:"isRead"`
	CreatedAt   time.Time   `json:"createdAt"`
	DogListings *ListingRef `json:"dog_listings"`
}

// ToMessageResponse converts a Message to its client representation.
func ToMessageResponse(m *Message) MessageResponse {
	resp := MessageResponse{
		ID:          m.ID,
		ListingID:   m.ListingID,
		SenderName:  m.SenderName,
		SenderEmail: m.SenderEmail,
		SenderPhone: m.SenderPhone,
		Message:     m.Message,
		IsRead:      m.IsRead,
		CreatedAt:   m.CreatedAt,
	}
	if m.Listing != nil {
		resp.DogListings = &ListingRef{DogName: m.Listing.DogName, ContactEmail: m.Listing.ContactEmail}
	}
	return resp
}
