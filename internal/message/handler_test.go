package message

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"adoptaunpana_backend/internal/listing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	logger := zap.NewNop()
	svc := NewService(NewGORMRepository(db), listing.NewGORMRepository(db), logger)

	router := gin.New()
	NewHandler(svc, logger).RegisterRoutes(router.Group("/api"), func(c *gin.Context) { c.Next() })
	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	msg, _ := body["error"].(string)
	return msg
}

func TestHandler_SendListAndMarkRead(t *testing.T) {
	router, db := setupRouter(t)
	l := insertListing(t, db, "Canela", listing.StatusActive)

	rec := doJSON(t, router, http.MethodPost, "/api/messages", map[string]interface{}{
		"listing_id":  l.ID.String(),
		"senderName":  "  Jorge ",
		"senderEmail": "jorge@example.es",
		"senderPhone": "",
		"message":     "Hola, ¿podemos visitarla?",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Jorge", created["senderName"])
	assert.Equal(t, false, created["isRead"])
	assert.Nil(t, created["senderPhone"])
	assert.Equal(t, map[string]interface{}{"dogName": "Canela", "contactEmail": "contacto@example.es"}, created["dog_listings"])

	rec = doJSON(t, router, http.MethodGet, "/api/messages?listing_id="+l.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	require.NotNil(t, listed[0].DogListings)
	assert.Equal(t, "Canela", listed[0].DogListings.DogName)

	rec = doJSON(t, router, http.MethodPut, "/api/messages/"+listed[0].ID.String()+"/read", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var read MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &read))
	assert.True(t, read.IsRead)
	assert.Equal(t, listed[0].ID, read.ID)
}

func TestHandler_CreateValidation(t *testing.T) {
	router, db := setupRouter(t)
	l := insertListing(t, db, "Pipa", listing.StatusActive)

	rec := doJSON(t, router, http.MethodPost, "/api/messages", map[string]interface{}{
		"listing_id":  l.ID.String(),
		"senderName":  "Eva",
		"senderEmail": "eva@example.es",
		"message":     "   ",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required field: message", errorOf(t, rec))

	rec = doJSON(t, router, http.MethodPost, "/api/messages", map[string]interface{}{
		"senderName": "Eva",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required field: listing_id", errorOf(t, rec))

	var n int64
	require.NoError(t, db.Model(&Message{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestHandler_CreateForUnavailableListing(t *testing.T) {
	router, db := setupRouter(t)
	inactive := insertListing(t, db, "Sombra", listing.StatusInactive)

	body := func(id string) map[string]interface{} {
		return map[string]interface{}{
			"listing_id":  id,
			"senderName":  "Eva",
			"senderEmail": "eva@example.es",
			"message":     "Hola",
		}
	}

	rec := doJSON(t, router, http.MethodPost, "/api/messages", body(uuid.NewString()))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Dog not found", errorOf(t, rec))

	rec = doJSON(t, router, http.MethodPost, "/api/messages", body(inactive.ID.String()))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_MarkReadUnknown(t *testing.T) {
	router, _ := setupRouter(t)

	for _, id := range []string{uuid.NewString(), "not-a-uuid"} {
		rec := doJSON(t, router, http.MethodPut, "/api/messages/"+id+"/read", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Message not found", errorOf(t, rec))
	}
}

func TestHandler_ListRejectsMalformedListingID(t *testing.T) {
	router, _ := setupRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/api/messages?listing_id=xyz", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid listing_id: xyz", errorOf(t, rec))
}
