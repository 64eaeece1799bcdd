package listing

import (
	"time"

	"adoptaunpana_backend/internal/common"
)

// CreateDogListingRequest is the POST /dogs body. Field order is the order in
// which missing required fields are reported.
type CreateDogListingRequest struct {
	Title        common.TrimmedString `json:"title" binding:"required"`
	DogName      common.TrimmedString `json:"dogName" binding:"required"`
	Description  common.TrimmedString `json:"description" binding:"required"`
	Age          common.FlexibleInt   `json:"age" binding:"required,gt=0"`
	Size         common.TrimmedString `json:"size" binding:"required,oneof=small medium large"`
	Gender       common.TrimmedString `json:"gender" binding:"required,oneof=male female"`
	ContactName  common.TrimmedString `json:"contactName" binding:"required"`
	ContactEmail common.TrimmedString `json:"contactEmail" binding:"required,email"`
	Province     common.TrimmedString `json:"province" binding:"required"`
	City         common.TrimmedString `json:"city" binding:"required"`

	Breed        common.TrimmedString `json:"breed"`
	ContactPhone common.TrimmedString `json:"contactPhone"`
	IsUrgent     bool                 `json:"isUrgent"`
	IsVaccinated bool                 `json:"isVaccinated"`
	IsNeutered   bool                 `json:"isNeutered"`
	ImageURLs    []string             `json:"imageUrls" binding:"omitempty,max=20"`
}

// UpdateDogListingRequest is the PUT /dogs/:id body; only supplied fields change.
// Values are stored as given, without the create-time validation.
type UpdateDogListingRequest struct {
	Title        *common.TrimmedString `json:"title"`
	Description  *common.TrimmedString `json:"description"`
	DogName      *common.TrimmedString `json:"dogName"`
	Age          *common.FlexibleInt   `json:"age"`
	Size         *common.TrimmedString `json:"size"`
	Gender       *common.TrimmedString `json:"gender"`
	Breed        *common.TrimmedString `json:"breed"`
	IsUrgent     *bool                 `json:"isUrgent"`
	IsVaccinated *bool                 `json:"isVaccinated"`
	IsNeutered   *bool                 `json:"isNeutered"`
	ContactEmail *common.TrimmedString `json:"contactEmail"`
	ContactPhone *common.TrimmedString `json:"contactPhone"`
	ContactName  *common.TrimmedString `json:"contactName"`
	ProvinceID   *common.TrimmedString `json:"province_id"`
	CityID       *common.TrimmedString `json:"city_id"`
	ImageURLs    *[]string             `json:"imageUrls"`
	ListingType  *common.TrimmedString `json:"listingType"`
	Status       *common.TrimmedString `json:"status"`
}

// Changes returns the column assignments for the supplied fields plus updated_at.
func (r *UpdateDogListingRequest) Changes(now time.Time) map[string]interface{} {
	changes := map[string]interface{}{"updated_at": now}
	setString := func(column string, v *common.TrimmedString) {
		if v != nil {
			changes[column] = string(*v)
		}
	}
	setOptional := func(column string, v *common.TrimmedString) {
		if v != nil {
			changes[column] = v.OptionalString()
		}
	}
	setBool := func(column string, v *bool) {
		if v != nil {
			changes[column] = *v
		}
	}

	setString("title", r.Title)
	setString("description", r.Description)
	setString("dog_name", r.DogName)
	if r.Age != nil {
		changes["age"] = int(*r.Age)
	}
	setString("size", r.Size)
	setString("gender", r.Gender)
	setOptional("breed", r.Breed)
	setBool("is_urgent", r.IsUrgent)
	setBool("is_vaccinated", r.IsVaccinated)
	setBool("is_neutered", r.IsNeutered)
	setString("contact_email", r.ContactEmail)
	setOptional("contact_phone", r.ContactPhone)
	setString("contact_name", r.ContactName)
	if r.ProvinceID != nil {
		changes["province_id"] = string(*r.ProvinceID)
	}
	if r.CityID != nil {
		changes["city_id"] = string(*r.CityID)
	}
	if r.ImageURLs != nil {
		changes["image_urls"] = StringList(*r.ImageURLs)
	}
	setString("listing_type", r.ListingType)
	setString("status", r.Status)
	return changes
}
