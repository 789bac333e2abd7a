package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jungle-app/jungle-booking/api"
	mock_api "github.com/jungle-app/jungle-booking/api/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type recentDeps struct {
	recent  *mock_api.MockRecentService
	catalog *mock_api.MockCatalogService
}

func setupRecentRouter(t *testing.T, middleware ...gin.HandlerFunc) (*gin.Engine, *gomock.Controller, recentDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	deps := recentDeps{
		recent:  mock_api.NewMockRecentService(ctrl),
		catalog: mock_api.NewMockCatalogService(ctrl),
	}
	rg := router.Group("/api/v1/recent")
	rg.Use(middleware...)
	api.NewRecentHandler(deps.recent, deps.catalog).Register(rg)

	return router, ctrl, deps
}

func TestListRecent(t *testing.T) {
	t.Run("signed in", func(t *testing.T) {
		router, ctrl, deps := setupRecentRouter(t, setUserInContext(testUser))
		defer ctrl.Finish()

		deps.recent.EXPECT().Get(gomock.Any(), "user1").Return([]string{"c", "missing", "a"}).Times(1)
		deps.catalog.EXPECT().FetchServices(gomock.Any(), 0).Return(catalogFixture()).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/recent", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.Equal(t, []string{"c", "a"}, decodeIDs(t, w.Body.Bytes()))
	})

	t.Run("device", func(t *testing.T) {
		router, ctrl, deps := setupRecentRouter(t)
		defer ctrl.Finish()

		deps.recent.EXPECT().Get(gomock.Any(), "device:phone-1").Return([]string{"b"}).Times(1)
		deps.catalog.EXPECT().FetchServices(gomock.Any(), 0).Return(catalogFixture()).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/recent", nil)
		req.Header.Set("X-Device-ID", "phone-1")
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.Equal(t, []string{"b"}, decodeIDs(t, w.Body.Bytes()))
	})

	t.Run("nothing viewed yet", func(t *testing.T) {
		router, ctrl, deps := setupRecentRouter(t)
		defer ctrl.Finish()

		deps.recent.EXPECT().Get(gomock.Any(), "").Return([]string{}).Times(1)
		deps.catalog.EXPECT().FetchServices(gomock.Any(), 0).Return(catalogFixture()).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/recent?n=2", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.Len(t, decodeIDs(t, w.Body.Bytes()), 2)
	})
}

func TestListRecentIDs(t *testing.T) {
	router, ctrl, deps := setupRecentRouter(t, setUserInContext(testUser))
	defer ctrl.Finish()

	deps.recent.EXPECT().Get(gomock.Any(), "user1").Return([]string{"c", "a"}).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/recent/ids", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `["c","a"]`, w.Body.String())
}

func TestAddRecent(t *testing.T) {
	router, ctrl, deps := setupRecentRouter(t)
	defer ctrl.Finish()

	deps.recent.EXPECT().Add(gomock.Any(), favoriteServiceID, "device:phone-1").Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/recent/"+favoriteServiceID, nil)
	req.Header.Set("X-Device-ID", "phone-1")
	router.ServeHTTP(w, req)

	assert.Equal(t, 204, w.Code)
}
