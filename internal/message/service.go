// File: internal/message/service.go
package message

import (
	"context"
	"fmt"
	"strings"
	"time"

	"adoptaunpana_backend/internal/common"
	"adoptaunpana_backend/internal/listing"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the interface for message business logic.
type Service interface {
	ListMessages(ctx context.Context, listingFilter string) ([]MessageResponse, error)
	CreateMessage(ctx context.Context, req CreateMessageRequest) (*MessageResponse, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) (*MessageResponse, error)
}

// ServiceImplementation implements message.Service.
type ServiceImplementation struct {
	repo     Repository
	listings listing.Repository
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates a new message service.
func NewService(repo Repository, listings listing.Repository, logger *zap.Logger) Service {
	return &ServiceImplementation{
		repo:     repo,
		listings: listings,
		logger:   logger.Named("MessageService"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

var (
	errMessageNotFound = common.ErrNotFound.WithMessage("Message not found")
	errListingNotFound = common.ErrNotFound.WithMessage("Dog not found")
	errListingClosed   = common.ErrConflict.WithMessage("Listing is not accepting messages")
)

// ListMessages returns all messages, or those of one listing when listingFilter is set.
func (s *ServiceImplementation) ListMessages(ctx context.Context, listingFilter string) ([]MessageResponse, error) {
	var listingID *uuid.UUID
	if raw := strings.TrimSpace(listingFilter); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, common.ErrBadRequest.WithMessage(fmt.Sprintf("Invalid listing_id: %s", raw))
		}
		listingID = &id
	}

	messages, err := s.repo.List(ctx, listingID)
	if err != nil {
		s.logger.Error("Failed to fetch messages", zap.Error(err))
		return nil, common.ServiceError("Failed to fetch messages", err)
	}
	out := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		out = append(out, ToMessageResponse(&messages[i]))
	}
	return out, nil
}

// CreateMessage stores an enquiry for an active listing.
func (s *ServiceImplementation) CreateMessage(ctx context.Context, req CreateMessageRequest) (*MessageResponse, error) {
	listingID, err := uuid.Parse(req.ListingID.String())
	if err != nil {
		return nil, errListingNotFound.WithDetails("Invalid listing_id format.")
	}

	target, err := s.listings.FindByID(ctx, listingID)
	if err != nil {
		if common.IsNotFound(err) {
			return nil, errListingNotFound
		}
		s.logger.Error("Failed to load listing for message", zap.String("listingID", listingID.String()), zap.Error(err))
		return nil, common.ServiceError("Failed to send message", err)
	}
	if target.Status != listing.StatusActive {
		return nil, errListingClosed.WithDetails(fmt.Sprintf("Listing status is %s.", target.Status))
	}

	msg := &Message{
		ID:          uuid.New(),
		ListingID:   listingID,
		SenderName:  req.SenderName.String(),
		SenderEmail: req.SenderEmail.String(),
		SenderPhone: req.SenderPhone.OptionalString(),
		Message:     req.Message.String(),
		IsRead:      false,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		s.logger.Error("Failed to send message", zap.String("listingID", listingID.String()), zap.Error(err))
		return nil, common.ServiceError("Failed to send message", err)
	}
	s.logger.Info("Message sent", zap.String("messageID", msg.ID.String()), zap.String("listingID", listingID.String()))

	msg.Listing = target
	resp := ToMessageResponse(msg)
	return &resp, nil
}

func (s *ServiceImplementation) MarkAsRead(ctx context.Context, id uuid.UUID) (*MessageResponse, error) {
	if err := s.repo.MarkAsRead(ctx, id); err != nil {
		if common.IsNotFound(err) {
			return nil, errMessageNotFound
		}
		s.logger.Error("Failed to mark message as read", zap.String("messageID", id.String()), zap.Error(err))
		return nil, common.ServiceError("Failed to mark message as read", err)
	}
	msg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if common.IsNotFound(err) {
			return nil, errMessageNotFound
		}
		return nil, common.ServiceError("Failed to mark message as read", err)
	}
	resp := ToMessageResponse(msg)
	return &resp, nil
}
