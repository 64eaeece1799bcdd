// File: internal/message/repository.go
package message

import (
	"context"
	"errors"
	"fmt"

	"adoptaunpana_backend/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository defines the interface for message data operations.
type Repository interface {
	Create(ctx context.Context, msg *Message) error
	FindByID(ctx context.Context, id uuid.UUID) (*Message, error)
	// List returns messages newest first, optionally restricted to one listing.
	List(ctx context.Context, listingID *uuid.UUID) ([]Message, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM message repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func withListing(query *gorm.DB) *gorm.DB {
	return query.Preload("Listing", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "dog_name", "contact_email")
	})
}

func (r *gormRepository) Create(ctx context.Context, msg *Message) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(msg).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*Message, error) {
	var msg Message
	if err := withListing(r.db.WithContext(ctx)).First(&msg, "messages.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Message not found.")
		}
		return nil, fmt.Errorf("failed to query message %s: %w", id, err)
	}
	return &msg, nil
}

func (r *gormRepository) List(ctx context.Context, listingID *uuid.UUID) ([]Message, error) {
	query := withListing(r.db.WithContext(ctx))
	if listingID != nil {
		query = query.Where("listing_id = ?", *listingID)
	}
	var messages []Message
	if err := query.Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	return messages, nil
}

func (r *gormRepository) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&Message{}).Where("id = ?", id).Update("is_read", true)
	if res.Error != nil {
		return fmt.Errorf("failed to mark message %s as read: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return common.ErrNotFound.WithDetails("Message not found.")
	}
	return nil
}

func (r *gormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Message{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return count, nil
}
