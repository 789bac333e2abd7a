package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jungle-app/jungle-booking/api"
	mock_api "github.com/jungle-app/jungle-booking/api/mocks"
	bk "github.com/jungle-app/jungle-booking/booking"
	"github.com/jungle-app/jungle-booking/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	catalog  *mock_api.MockCatalogService
	bookings *mock_api.MockBookingService
}

func setupServiceRouter(t *testing.T) (*gin.Engine, *gomock.Controller, serviceDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	deps := serviceDeps{
		catalog:  mock_api.NewMockCatalogService(ctrl),
		bookings: mock_api.NewMockBookingService(ctrl),
	}
	api.NewServiceHandler(deps.catalog, deps.bookings).Register(router.Group("/api/v1/services"))

	return router, ctrl, deps
}

const detailServiceID = "5f0c2b7e-9a41-4d3b-8e6f-1c2d3e4f5a6b"

func fptr(v float64) *float64 { return &v }

func catalogFixture() []catalog.Service {
	return []catalog.Service{
		{ID: "a", Title: "Nap pod", Category: catalog.CategoryRest, PriceEUR: 12, Location: "Roma Termini", Rating: fptr(4.1), Latitude: fptr(41.901), Longitude: fptr(12.501)},
		{ID: "b", Title: "Hot shower", Category: catalog.CategoryShower, PriceEUR: 5, Location: "Milano Centrale", Rating: fptr(4.8), Latitude: fptr(45.486), Longitude: fptr(9.204)},
		{ID: "c", Title: "Locker", Category: catalog.CategoryStorage, PriceEUR: 3, Location: "Roma Tiburtina", Rating: fptr(3.9)},
	}
}

func decodeIDs(t *testing.T, body []byte) []string {
	t.Helper()

	var services []catalog.Service
	require.NoError(t, json.Unmarshal(body, &services))

	ids := []string{}
	for _, s := range services {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestListServices(t *testing.T) {
	t.Run("filters and sorts", func(t *testing.T) {
		router, ctrl, deps := setupServiceRouter(t)
		defer ctrl.Finish()

		deps.catalog.EXPECT().FetchServices(gomock.Any(), 0).Return(catalogFixture()).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/services?destination=roma&sort=price_asc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.Equal(t, []string{"c", "a"}, decodeIDs(t, w.Body.Bytes()))
	})

	t.Run("translated category", func(t *testing.T) {
		router, ctrl, deps := setupServiceRouter(t)
		defer ctrl.Finish()

		deps.catalog.EXPECT().FetchServices(gomock.Any(), 0).Return(catalogFixture()).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/services?category=Doccia", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.Equal(t, []string{"b"}, decodeIDs(t, w.Body.Bytes()))
	})

	t.Run("limit", func(t *testing.T) {
		router, ctrl, deps := setupServiceRouter(t)
		defer ctrl.Finish()

		deps.catalog.EXPECT().FetchServices(gomock.Any(), 2).Return(catalogFixture()[:2]).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/services?limit=2", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.Equal(t, []string{"b", "a"}, decodeIDs(t, w.Body.Bytes()))
	})

	t.Run("unknown sort", func(t *testing.T) {
		router, ctrl, deps := setupServiceRouter(t)
		defer ctrl.Finish()

		deps.catalog.EXPECT().FetchServices(gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/services?sort=cheapest", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"unknown sort key: \"cheapest\""}`, w.Body.String())
	})

	t.Run("bad number", func(t *testing.T) {
		router, ctrl, deps := setupServiceRouter(t)
		defer ctrl.Finish()

		deps.catalog.EXPECT().FetchServices(gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/services?maxPrice=ten", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
	})
}

func TestMapServices(t *testing.T) {
	router, ctrl, deps := setupServiceRouter(t)
	defer ctrl.Finish()

	deps.catalog.EXPECT().FetchServices(gomock.Any(), 0).Return(catalogFixture()).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/services/map", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, []string{"a", "b"}, decodeIDs(t, w.Body.Bytes()))
}

func TestNearbyServices(t *testing.T) {
	router, ctrl, deps := setupServiceRouter(t)
	defer ctrl.Finish()

	deps.catalog.EXPECT().FetchServices(gomock.Any(), 0).Return(catalogFixture()).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/services/nearby?lat=45.46&lng=9.19&n=5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, []string{"b", "a"}, decodeIDs(t, w.Body.Bytes()))
}

func TestSuggestions(t *testing.T) {
	router, ctrl, deps := setupServiceRouter(t)
	defer ctrl.Finish()

	deps.catalog.EXPECT().FetchServices(gomock.Any(), 0).Return(catalogFixture()).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/services/suggestions?q=roma", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `["Roma Termini","Roma Tiburtina"]`, w.Body.String())
}

func TestGetService(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, deps := setupServiceRouter(t)
		defer ctrl.Finish()

		service := catalogFixture()[0]
		serviceJson, _ := json.Marshal(service)
		deps.catalog.EXPECT().FetchService(gomock.Any(), detailServiceID).Return(service, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/services/"+detailServiceID, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(serviceJson), w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		router, ctrl, deps := setupServiceRouter(t)
		defer ctrl.Finish()

		deps.catalog.EXPECT().FetchService(gomock.Any(), favoriteServiceID).Return(catalog.Service{}, catalog.ErrServiceNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/services/"+favoriteServiceID, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"service not found"}`, w.Body.String())
	})

	t.Run("malformed id", func(t *testing.T) {
		router, ctrl, deps := setupServiceRouter(t)
		defer ctrl.Finish()

		deps.catalog.EXPECT().FetchService(gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/services/abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"service not found"}`, w.Body.String())
	})
}

func TestServiceSlots(t *testing.T) {
	t.Run("given day", func(t *testing.T) {
		router, ctrl, deps := setupServiceRouter(t)
		defer ctrl.Finish()

		day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
		slots := bk.DefaultSlots(detailServiceID, day, time.UTC)

		deps.bookings.EXPECT().Location().Return(time.UTC).Times(1)
		deps.bookings.EXPECT().ListSlots(gomock.Any(), detailServiceID, day).Return(slots).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/services/"+detailServiceID+"/slots?day=2026-03-10", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)

		var got []bk.Slot
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 6)
		assert.Equal(t, "09:00", got[0].Time)
	})

	t.Run("today", func(t *testing.T) {
		router, ctrl, deps := setupServiceRouter(t)
		defer ctrl.Finish()

		deps.bookings.EXPECT().ListSlots(gomock.Any(), detailServiceID, time.Time{}).Return([]bk.Slot{}).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/services/"+detailServiceID+"/slots", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("bad day", func(t *testing.T) {
		router, ctrl, deps := setupServiceRouter(t)
		defer ctrl.Finish()

		deps.bookings.EXPECT().Location().Return(time.UTC).Times(1)
		deps.bookings.EXPECT().ListSlots(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/services/"+detailServiceID+"/slots?day=tomorrow", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse day"}`, w.Body.String())
	})
}
