// File: internal/location/model.go
package location

import (
	"strings"
	"time"

	"github.com/gosimple/slug"
)

// Province is a Spanish province. Ids are slugs ("las-palmas") and the set is
// seeded by setup; rows are never updated or removed.
type Province struct {
	ID        string    `gorm:"type:text;primaryKey"`
	Name      string    `gorm:"type:text;not null"`
	Region    string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for the Province model.
func (Province) TableName() string {
	return "provinces"
}

// City belongs to exactly one Province.
type City struct {
	ID         string    `gorm:"type:text;primaryKey"`
	Name       string    `gorm:"type:text;not null"`
	ProvinceID string    `gorm:"type:text;not null;index:idx_cities_province"`
	Province   *Province `gorm:"foreignKey:ProvinceID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for the City model.
func (City) TableName() string {
	return "cities"
}

// NormalizeID turns user input ("Las Palmas", " MADRID ") into a reference id slug.
func NormalizeID(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	return slug.Make(raw)
}

// --- DTOs ---

type ProvinceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Region    string    `json:"region"`
	CreatedAt time.Time `json:"createdAt"`
}

type CityResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ProvinceID string    `json:"province_id"`
	CreatedAt  time.Time `json:"createdAt"`
}

func ToProvinceResponse(p *Province) ProvinceResponse {
	return ProvinceResponse{ID: p.ID, Name: p.Name, Region: p.Region, CreatedAt: p.CreatedAt}
}

func ToCityResponse(c *City) CityResponse {
	return CityResponse{ID: c.ID, Name: c.Name, ProvinceID: c.ProvinceID, CreatedAt: c.CreatedAt}
}
