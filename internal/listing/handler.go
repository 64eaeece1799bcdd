// File: internal/listing/handler.go
package listing

import (
	"adoptaunpana_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for listing handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new listing handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up /dogs and /search. writeMW guards listing creation.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, writeMW gin.HandlerFunc) {
	dogs := router.Group("/dogs")
	{
		dogs.GET("", h.listListings)
		dogs.POST("", writeMW, h.createListing)
		dogs.GET("/:id", h.getListing)
		dogs.PUT("/:id", h.updateListing)
		dogs.DELETE("/:id", h.deleteListing)
	}
	router.GET("/search", h.searchListings)
}

func filterFromQuery(c *gin.Context) ListingFilter {
	return ListingFilter{
		ProvinceID: c.Query("province"),
		CityID:     c.Query("city"),
		Size:       Size(c.Query("size")),
		Gender:     Gender(c.Query("gender")),
		UrgentOnly: c.Query("urgent") == "true",
		Query:      c.Query("q"),
	}
}

func (h *Handler) listListings(c *gin.Context) {
	listings, err := h.service.ListListings(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, listings)
}

func (h *Handler) searchListings(c *gin.Context) {
	listings, err := h.service.SearchListings(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, listings)
}

func (h *Handler) createListing(c *gin.Context) {
	var req CreateDogListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondWithError(c, common.ValidationErrorFrom(err))
		return
	}

	listing, err := h.service.CreateListing(c.Request.Context(), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, listing)
}

// parseListingID treats a malformed id the same as an unknown one.
func parseListingID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, errDogNotFound.WithDetails("Invalid listing ID format."))
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) getListing(c *gin.Context) {
	id, ok := parseListingID(c)
	if !ok {
		return
	}
	listing, err := h.service.GetListing(c.Request.Context(), id)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, listing)
}

func (h *Handler) updateListing(c *gin.Context) {
	id, ok := parseListingID(c)
	if !ok {
		return
	}
	var req UpdateDogListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondWithError(c, common.ValidationErrorFrom(err))
		return
	}
	listing, err := h.service.UpdateListing(c.Request.Context(), id, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, listing)
}

func (h *Handler) deleteListing(c *gin.Context) {
	id, ok := parseListingID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteListing(c.Request.Context(), id); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondMessage(c, "Listing deleted successfully")
}
