package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jungle-app/jungle-booking/catalog"
)

const deviceIDHeader = "X-Device-ID"

// RecentHandler serves the recently viewed list of the signed-in user, or of
// the device named by X-Device-ID for guests. Expects OptionalUser.
type RecentHandler struct {
	recent  RecentService
	catalog CatalogService
}

func NewRecentHandler(recent RecentService, catalog CatalogService) *RecentHandler {
	return &RecentHandler{recent: recent, catalog: catalog}
}

func (h *RecentHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/ids", h.ListIDs)
	rg.POST("/:serviceId", h.Add)
}

func viewer(c *gin.Context) string {
	if user, ok := currentUser(c); ok {
		return user.ID
	}

	if device := strings.TrimSpace(c.GetHeader(deviceIDHeader)); device != "" {
		return "device:" + device
	}

	return ""
}

// List resolves the viewed ids to services, or suggests a random sample when
// none of them resolve.
func (h *RecentHandler) List(c *gin.Context) {
	n, ok := queryInt(c, "n", catalog.DefaultRecentCount)
	if !ok {
		return
	}

	ids := h.recent.Get(c.Request.Context(), viewer(c))
	services := h.catalog.FetchServices(c.Request.Context(), 0)

	c.IndentedJSON(http.StatusOK, catalog.ResolveRecent(ids, services, n))
}

func (h *RecentHandler) ListIDs(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, h.recent.Get(c.Request.Context(), viewer(c)))
}

func (h *RecentHandler) Add(c *gin.Context) {
	serviceID, ok := serviceIDParam(c)
	if !ok {
		return
	}

	h.recent.Add(c.Request.Context(), serviceID, viewer(c))

	c.Status(http.StatusNoContent)
}
