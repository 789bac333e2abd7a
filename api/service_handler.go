package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jungle-app/jungle-booking/catalog"
)

type ServiceHandler struct {
	catalog  CatalogService
	bookings BookingService
}

func NewServiceHandler(catalog CatalogService, bookings BookingService) *ServiceHandler {
	return &ServiceHandler{catalog: catalog, bookings: bookings}
}

func (h *ServiceHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/map", h.Map)
	rg.GET("/nearby", h.Nearby)
	rg.GET("/suggestions", h.Suggestions)
	rg.GET("/:id", h.GetByID)
	rg.GET("/:id/slots", h.Slots)
}

func queryInt(c *gin.Context, key string, def int) (int, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, true
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse " + key})
		return 0, false
	}

	return n, true
}

// List returns the catalog filtered and sorted by the query parameters
// category, destination, maxPrice, maxDistanceKm, minRating and sort.
func (h *ServiceHandler) List(c *gin.Context) {
	criteria, err := catalog.ParseCriteria(catalog.CriteriaInput{
		Category:      c.Query("category"),
		Destination:   c.Query("destination"),
		MaxPrice:      c.Query("maxPrice"),
		MaxDistanceKm: c.Query("maxDistanceKm"),
		MinRating:     c.Query("minRating"),
		Sort:          c.Query("sort"),
	})

	if err != nil {
		respondError(c, err, "invalid filters")
		return
	}

	limit, ok := queryInt(c, "limit", 0)
	if !ok {
		return
	}

	services := h.catalog.FetchServices(c.Request.Context(), limit)

	c.IndentedJSON(http.StatusOK, catalog.Apply(services, criteria))
}

func (h *ServiceHandler) Map(c *gin.Context) {
	services := h.catalog.FetchServices(c.Request.Context(), 0)

	c.IndentedJSON(http.StatusOK, catalog.WithCoordinates(services))
}

func (h *ServiceHandler) Nearby(c *gin.Context) {
	n, ok := queryInt(c, "n", catalog.DefaultNearbyCount)
	if !ok {
		return
	}

	var origin *catalog.Coordinates

	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)

	if latErr == nil && lngErr == nil {
		origin = &catalog.Coordinates{Latitude: lat, Longitude: lng}
	}

	services := h.catalog.FetchServices(c.Request.Context(), 0)

	c.IndentedJSON(http.StatusOK, catalog.AroundYou(services, origin, n))
}

func (h *ServiceHandler) Suggestions(c *gin.Context) {
	limit, ok := queryInt(c, "limit", catalog.DefaultSuggestionCount)
	if !ok {
		return
	}

	services := h.catalog.FetchServices(c.Request.Context(), 0)

	c.IndentedJSON(http.StatusOK, catalog.LocationSuggestions(services, c.Query("q"), limit))
}

func (h *ServiceHandler) GetByID(c *gin.Context) {
	id, ok := uuidParam(c, "id", "service not found")
	if !ok {
		return
	}

	service, err := h.catalog.FetchService(c.Request.Context(), id)

	if err != nil {
		respondError(c, err, "failed to fetch service")
		return
	}

	c.IndentedJSON(http.StatusOK, service)
}

// Slots lists the bookable slots of a service for ?day=YYYY-MM-DD, today when
// omitted.
func (h *ServiceHandler) Slots(c *gin.Context) {
	id, ok := uuidParam(c, "id", "service not found")
	if !ok {
		return
	}

	var day time.Time

	if raw := c.Query("day"); raw != "" {
		parsed, err := time.ParseInLocation(time.DateOnly, raw, h.bookings.Location())

		if err != nil {
			c.Error(err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse day"})
			return
		}

		day = parsed
	}

	c.IndentedJSON(http.StatusOK, h.bookings.ListSlots(c.Request.Context(), id, day))
}
