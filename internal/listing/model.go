// File: internal/listing/model.go
package listing

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"adoptaunpana_backend/internal/location"
	"adoptaunpana_backend/internal/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// StringList is an ordered list of strings persisted as a JSON array
// (JSONB on Postgres, TEXT elsewhere).
type StringList []string

// Value implements the driver.Valuer interface for StringList.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("failed to encode string list: %w", err)
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface for StringList.
func (l *StringList) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("failed to scan StringList: invalid type")
	}
	if len(raw) == 0 {
		*l = StringList{}
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("failed to scan StringList: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*l = out
	return nil
}

// GormDBDataType picks the column type per dialect.
func (StringList) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "JSONB"
	}
	return "TEXT"
}

type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type ListingType string

const (
	TypeAdoption ListingType = "adoption"
	TypeFoster   ListingType = "foster"
	TypeLost     ListingType = "lost"
	TypeFound    ListingType = "found"
)

type ListingStatus string

const (
	StatusActive   ListingStatus = "active"
	StatusAdopted  ListingStatus = "adopted"
	StatusInactive ListingStatus = "inactive"
)

// DogListing is one dog offered for adoption (or fostering, lost/found).
type DogListing struct {
	ID           uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Title        string             `gorm:"type:text;not null"`
	Description  string             `gorm:"type:text;not null"`
	DogName      string             `gorm:"type:text;not null"`
	Age          int                `gorm:"not null;index:idx_dog_listings_age"` // months
	Size         Size               `gorm:"type:text;not null;index:idx_dog_listings_size"`
	Gender       Gender             `gorm:"type:text;not null"`
	Breed        *string            `gorm:"type:text"`
	IsUrgent     bool               `gorm:"not null;index:idx_dog_listings_urgent"`
	IsVaccinated bool               `gorm:"not null"`
	IsNeutered   bool               `gorm:"not null"`
	ContactEmail string             `gorm:"type:text;not null"`
	ContactPhone *string            `gorm:"type:text"`
	ContactName  string             `gorm:"type:text;not null"`
	ProvinceID   string             `gorm:"type:text;not null;index:idx_dog_listings_province"`
	Province     *location.Province `gorm:"foreignKey:ProvinceID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	CityID       string             `gorm:"type:text;not null;index:idx_dog_listings_city"`
	City         *location.City     `gorm:"foreignKey:CityID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	ImageURLs    StringList         `gorm:"column:image_urls;not null"`
	ListingType  ListingType        `gorm:"type:text;not null;index:idx_dog_listings_type"`
	Status       ListingStatus      `gorm:"type:text;not null;default:'active';index:idx_dog_listings_status"`
	UserID       *uuid.UUID         `gorm:"type:uuid"`
	User         *user.User         `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	CreatedAt    time.Time          `gorm:"not null;index:idx_dog_listings_created,sort:desc"`
	UpdatedAt    time.Time          `gorm:"not null"`
}

// TableName specifies the table name for the DogListing model.
func (DogListing) TableName() string {
	return "dog_listings"
}

// ListingFilter narrows a listing query. Zero values impose no constraint.
type ListingFilter struct {
	ProvinceID string
	CityID     string
	Size       Size
	Gender     Gender
	UrgentOnly bool
	Query      string
	Limit      int
}

// --- DTOs ---

// NameRef is the expanded form of a joined reference row.
type NameRef struct {
	Name string `json:"name"`
}

// DogListingResponse is a listing as sent to clients, with province and city names expanded.
type DogListingResponse struct {
	ID           uuid.UUID     `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	DogName      string        `json:"dogName"`
	Age          int           `json:"age"`
	Size         Size          `json:"size"`
	Gender       Gender        `json:"gender"`
	Breed        *string       `json:"breed"`
	IsUrgent     bool          `json:"isUrgent"`
	IsVaccinated bool          `json:"isVaccinated"`
	IsNeutered   bool          `json:"isNeutered"`
	ContactEmail string        `json:"contactEmail"`
	ContactPhone *string       `json:"contactPhone"`
	ContactName  string        `json:"contactName"`
	ProvinceID   string        `json:"province_id"`
	CityID       string        `json:"city_id"`
	ImageURLs    []string      `json:"imageUrls"`
	ListingType  ListingType   `json:"listingType"`
	Status       ListingStatus `json:"status"`
	UserID       *uuid.UUID    `json:"user_id"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
	Provinces    *NameRef      `json:"provinces"`
	Cities       *NameRef      `json:"cities"`
}

// ToDogListingResponse converts a DogListing to its client representation.
func ToDogListingResponse(l *DogListing) DogListingResponse {
	images := []string(l.ImageURLs)
	if images == nil {
		images = []string{}
	}
	resp := DogListingResponse{
		ID:           l.ID,
		Title:        l.Title,
		Description:  l.Description,
		DogName:      l.DogName,
		Age:          l.Age,
		Size:         l.Size,
		Gender:       l.Gender,
		Breed:        l.Breed,
		IsUrgent:     l.IsUrgent,
		IsVaccinated: l.IsVaccinated,
		IsNeutered:   l.IsNeutered,
		ContactEmail: l.ContactEmail,
		ContactPhone: l.ContactPhone,
		ContactName:  l.ContactName,
		ProvinceID:   l.ProvinceID,
		CityID:       l.CityID,
		ImageURLs:    images,
		ListingType:  l.ListingType,
		Status:       l.Status,
		UserID:       l.UserID,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
	if l.Province != nil {
		resp.Provinces = &NameRef{Name: l.Province.Name}
	}
	if l.City != nil {
		resp.Cities = &NameRef{Name: l.City.Name}
	}
	return resp
}
