package message

import "adoptaunpana_backend/internal/common"

// CreateMessageRequest is the POST /messages body.
type CreateMessageRequest struct {
	ListingID   common.TrimmedString `json:"listing_id" binding:"required"`
	SenderName  common.TrimmedString `json:"senderName" binding:"required"`
	SenderEmail common.TrimmedString `json:"senderEmail" binding:"required,email"`
	Message     common.TrimmedString `json:"message" binding:"required"`
	SenderPhone common.TrimmedString `json:"senderPhone"`
}
