package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jungle-app/jungle-booking/config"
	"github.com/jungle-app/jungle-booking/supabase"
)

type RouterDeps struct {
	CORS     config.CORSConfig
	Logger   *slog.Logger
	Client   supabase.SupabaseClient
	Catalog  CatalogService
	Bookings BookingService
	Recent   RecentService
	Profile  ProfileService
}

func NewRouter(d RouterDeps) *gin.Engine {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger.With("component", "http")), CORS(d.CORS))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	v1 := r.Group("/api/v1")

	// SERVICES

	NewServiceHandler(d.Catalog, d.Bookings).Register(v1.Group("/services"))

	// FAVORITES

	favoriteRouter := v1.Group("/favorites")
	favoriteRouter.Use(RequireUser(d.Client))
	NewFavoriteHandler(d.Catalog).Register(favoriteRouter)

	// RECENTLY VIEWED

	recentRouter := v1.Group("/recent")
	recentRouter.Use(OptionalUser(d.Client))
	NewRecentHandler(d.Recent, d.Catalog).Register(recentRouter)

	// BOOKINGS

	bookingRouter := v1.Group("/bookings")
	bookingRouter.Use(RequireUser(d.Client))
	NewBookingHandler(d.Bookings).Register(bookingRouter)

	// AUTH

	NewAuthHandler(d.Client).Register(v1.Group("/auth"))

	// PROFILE

	profileRouter := v1.Group("/profile")
	profileRouter.Use(RequireUser(d.Client))
	NewProfileHandler(d.Profile).Register(profileRouter)

	return r
}
