package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FavoriteHandler expects RequireUser on its group.
type FavoriteHandler struct {
	catalog CatalogService
}

func NewFavoriteHandler(catalog CatalogService) *FavoriteHandler {
	return &FavoriteHandler{catalog: catalog}
}

func (h *FavoriteHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/ids", h.ListIDs)
	rg.PUT("/:serviceId", h.Add)
	rg.DELETE("/:serviceId", h.Remove)
	rg.POST("/:serviceId/toggle", h.Toggle)
}

// uuidParam reads a path parameter that must be a uuid. Any other value cannot
// name a row, so it is answered with 404 and notFound.
func uuidParam(c *gin.Context, key, notFound string) (string, bool) {
	id := c.Param(key)

	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
		return "", false
	}

	return id, true
}

func serviceIDParam(c *gin.Context) (string, bool) {
	serviceID := c.Param("serviceId")

	if _, err := uuid.Parse(serviceID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service id"})
		return "", false
	}

	return serviceID, true
}

func (h *FavoriteHandler) List(c *gin.Context) {
	user, _ := currentUser(c)

	c.IndentedJSON(http.StatusOK, h.catalog.FetchFavoriteServices(c.Request.Context(), user.ID))
}

func (h *FavoriteHandler) ListIDs(c *gin.Context) {
	user, _ := currentUser(c)

	c.IndentedJSON(http.StatusOK, h.catalog.FetchFavoriteIDs(c.Request.Context(), user.ID).IDs())
}

func (h *FavoriteHandler) Add(c *gin.Context) {
	user, _ := currentUser(c)
	serviceID, ok := serviceIDParam(c)
	if !ok {
		return
	}

	if err := h.catalog.AddFavorite(c.Request.Context(), user.ID, serviceID); err != nil {
		respondError(c, err, "failed to add favorite")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"favorite": true})
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	user, _ := currentUser(c)
	serviceID, ok := serviceIDParam(c)
	if !ok {
		return
	}

	if err := h.catalog.RemoveFavorite(c.Request.Context(), user.ID, serviceID); err != nil {
		respondError(c, err, "failed to remove favorite")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"favorite": false})
}

func (h *FavoriteHandler) Toggle(c *gin.Context) {
	user, _ := currentUser(c)
	serviceID, ok := serviceIDParam(c)
	if !ok {
		return
	}

	favorite, err := h.catalog.ToggleFavorite(c.Request.Context(), user.ID, serviceID)

	if err != nil {
		respondError(c, err, "failed to update favorite")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"favorite": favorite})
}
