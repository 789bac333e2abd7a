package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	bk "github.com/jungle-app/jungle-booking/booking"
	"github.com/jungle-app/jungle-booking/supabase"
)

// BookingHandler expects RequireUser on its group.
type BookingHandler struct {
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.ListMine)
	rg.POST("", h.Reserve)
	rg.GET("/:id", h.GetByID)
	rg.GET("/:id/qr", h.GetQR)
	rg.DELETE("/:id", h.Cancel)
}

type reserveBody struct {
	ServiceID string `json:"serviceId" binding:"required"`
	Hour      string `json:"hour" binding:"required"`
	Day       string `json:"day"`
	People    string `json:"people"`
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	user, _ := currentUser(c)

	bookings, err := h.service.FindBookingsForGuest(c.Request.Context(), user.ID)

	if err != nil {
		respondError(c, err, "failed to get bookings")
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	user, _ := currentUser(c)
	id, ok := uuidParam(c, "id", "booking not found")
	if !ok {
		return
	}

	booking, err := h.service.FindBookingByID(c.Request.Context(), id, &user)

	if err != nil {
		respondError(c, err, "failed to fetch booking")
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

func (h *BookingHandler) GetQR(c *gin.Context) {
	user, _ := currentUser(c)
	id, ok := uuidParam(c, "id", "booking not found")
	if !ok {
		return
	}

	size, ok := queryInt(c, "size", bk.DefaultQRSize)
	if !ok {
		return
	}

	png, err := h.service.BookingQR(c.Request.Context(), id, &user, size)

	if err != nil {
		respondError(c, err, "failed to render qr code")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

func (h *BookingHandler) Reserve(c *gin.Context) {
	var body reserveBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	req := bk.ReserveRequest{ServiceID: body.ServiceID, Hour: body.Hour, People: body.People}

	if body.Day != "" {
		day, err := time.ParseInLocation(time.DateOnly, body.Day, h.service.Location())

		if err != nil {
			c.Error(err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse day"})
			return
		}

		req.Day = day
	}

	var user *supabase.User
	if u, ok := currentUser(c); ok {
		user = &u
	}

	booking, err := h.service.Reserve(c.Request.Context(), user, req)

	if err != nil {
		respondError(c, err, "failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := uuidParam(c, "id", "booking not found")
	if !ok {
		return
	}

	session := bk.SessionFunc(func(context.Context) (*supabase.User, error) {
		if user, ok := currentUser(c); ok {
			return &user, nil
		}
		return nil, nil
	})

	err := h.service.CancelBooking(c.Request.Context(), id, session)

	if err != nil {
		respondError(c, err, "failed to cancel booking")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking canceled"})
}
