package elasticsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"
)

const DogListingsIndexName = "dog_listings"

func dogListingsMapping() (string, error) {
	keyword := map[string]interface{}{"type": "keyword"}
	text := map[string]interface{}{"type": "text"}
	mapping := map[string]interface{}{
		"mappings": map[string]interface{}{
			"properties": map[string]interface{}{
				"title":         text,
				"description":   text,
				"dog_name":      map[string]interface{}{"type": "text", "fields": map[string]interface{}{"keyword": keyword}},
				"breed":         map[string]interface{}{"type": "text", "fields": map[string]interface{}{"keyword": keyword}},
				"age_months":    map[string]interface{}{"type": "integer"},
				"size":          keyword,
				"gender":        keyword,
				"is_urgent":     map[string]interface{}{"type": "boolean"},
				"is_vaccinated": map[string]interface{}{"type": "boolean"},
				"is_neutered":   map[string]interface{}{"type": "boolean"},
				"province_id":   keyword,
				"province_name": keyword,
				"city_id":       keyword,
				"city_name":     keyword,
				"listing_type":  keyword,
				"status":        keyword,
				"image_urls":    map[string]interface{}{"type": "keyword", "index": false},
				"created_at":    map[string]interface{}{"type": "date"},
				"updated_at":    map[string]interface{}{"type": "date"},
			},
		},
	}
	b, err := json.Marshal(mapping)
	if err != nil {
		return "", fmt.Errorf("error marshalling dog listings mapping to JSON: %w", err)
	}
	return string(b), nil
}

// CreateDogListingsIndexIfNotExists creates the dog_listings index with its mapping
// unless it is already there.
func CreateDogListingsIndexIfNotExists(ctx context.Context, client *ESClientWrapper, logger *zap.Logger) error {
	log := logger.Named("elasticsearch_index_setup")

	res, err := esapi.IndicesExistsRequest{Index: []string{DogListingsIndexName}}.Do(ctx, client.Client)
	if err != nil {
		return fmt.Errorf("error checking if %s index exists: %w", DogListingsIndexName, err)
	}
	res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		log.Info("Index already exists", zap.String("index_name", DogListingsIndexName))
		return nil
	case http.StatusNotFound:
	default:
		return fmt.Errorf("error checking if %s index exists: status %s", DogListingsIndexName, res.Status())
	}

	mappingJSON, err := dogListingsMapping()
	if err != nil {
		return err
	}
	createRes, err := esapi.IndicesCreateRequest{
		Index: DogListingsIndexName,
		Body:  strings.NewReader(mappingJSON),
	}.Do(ctx, client.Client)
	if err != nil {
		return fmt.Errorf("error creating %s index: %w", DogListingsIndexName, err)
	}
	defer createRes.Body.Close()

	if createRes.IsError() {
		return fmt.Errorf("failed to create %s index: status %s: %s", DogListingsIndexName, createRes.Status(), readBody(createRes.Body))
	}
	log.Info("Index created", zap.String("index_name", DogListingsIndexName))
	return nil
}

// BulkItemResult is the outcome of one action in a bulk request.
type BulkItemResult struct {
	ID     string
	Status int
	Error  map[string]interface{}
}

// BulkIndex sends an NDJSON bulk body and returns the per-item results.
func BulkIndex(ctx context.Context, client *ESClientWrapper, body string, refresh string) ([]BulkItemResult, error) {
	res, err := esapi.BulkRequest{
		Body:    strings.NewReader(body),
		Refresh: refresh,
	}.Do(ctx, client.Client)
	if err != nil {
		return nil, fmt.Errorf("bulk request failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("bulk request returned %s: %s", res.Status(), readBody(res.Body))
	}

	var parsed struct {
		Errors bool `json:"errors"`
		Items  []map[string]struct {
			ID     string                 `json:"_id"`
			Status int                    `json:"status"`
			Error  map[string]interface{} `json:"error,omitempty"`
		} `json:"items"`
	}
	if err := decodeJSON(res.Body, &parsed); err != nil {
		return nil, err
	}

	results := make([]BulkItemResult, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		for _, action := range item {
			results = append(results, BulkItemResult{ID: action.ID, Status: action.Status, Error: action.Error})
		}
	}
	return results, nil
}
