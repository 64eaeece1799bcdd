// File: internal/user/model.go
package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an owner account a listing may optionally point at. The table is
// provisioned by setup; no route reads or writes it yet.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email       string    `gorm:"type:text;not null;uniqueIndex:idx_users_email"`
	DisplayName *string   `gorm:"type:text"`
	IsVerified  bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}
