package esutil

import (
	"encoding/json"
	"errors"
	"fmt"

	"adoptaunpana_backend/internal/listing"
)

// DogListingToElasticsearchDoc converts a listing to its index document. Province
// and City are expected to be preloaded; missing associations just drop the names.
func DogListingToElasticsearchDoc(l *listing.DogListing) (string, error) {
	if l == nil {
		return "", errors.New("listing cannot be nil")
	}

	images := []string(l.ImageURLs)
	if images == nil {
		images = []string{}
	}
	doc := map[string]interface{}{
		"title":         l.Title,
		"description":   l.Description,
		"dog_name":      l.DogName,
		"age_months":    l.Age,
		"size":          string(l.Size),
		"gender":        string(l.Gender),
		"is_urgent":     l.IsUrgent,
		"is_vaccinated": l.IsVaccinated,
		"is_neutered":   l.IsNeutered,
		"province_id":   l.ProvinceID,
		"city_id":       l.CityID,
		"listing_type":  string(l.ListingType),
		"status":        string(l.Status),
		"image_urls":    images,
		"created_at":    l.CreatedAt,
		"updated_at":    l.UpdatedAt,
	}
	if l.Breed != nil {
		doc["breed"] = *l.Breed
	}
	if l.Province != nil {
		doc["province_name"] = l.Province.Name
	}
	if l.City != nil {
		doc["city_name"] = l.City.Name
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("error marshalling listing to JSON for ES: %w", err)
	}
	return string(b), nil
}
