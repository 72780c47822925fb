package test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"millage/internal/common"
	"millage/internal/config"
	handlers "millage/internal/handler"
	"millage/internal/models"
	"millage/internal/service"
	"millage/internal/session"
)

type testHandlers struct {
	boards *MockBoardService
	posts  *MockPostService
	tables *MockTablesService
	router http.Handler
}

func newTestHandlers() *testHandlers {
	th := &testHandlers{
		boards: new(MockBoardService),
		posts:  new(MockPostService),
		tables: new(MockTablesService),
	}

	h := &handlers.Handlers{
		BoardService:  th.boards,
		PostService:   th.posts,
		TablesService: th.tables,
		Cfg:           &config.Config{MaxUploadSize: 1 << 20},
		Validate:      validator.New(),
	}
	th.router = handlers.NewRouter(h)

	return th
}

// serve runs req through the router as viewer (nil for anonymous).
func (th *testHandlers) serve(req *http.Request, viewer *models.CurrentUser) *httptest.ResponseRecorder {
	if viewer != nil {
		req = req.WithContext(session.WithUser(req.Context(), viewer))
	}
	rr := httptest.NewRecorder()
	th.router.ServeHTTP(rr, req)
	return rr
}

func TestNewHandlers(t *testing.T) {
	svc := &service.Service{
		Board:  new(MockBoardService),
		Post:   new(MockPostService),
		Tables: new(MockTablesService),
	}

	h := handlers.NewHandlers(svc, &config.Config{})

	assert.NotNil(t, h.BoardService)
	assert.NotNil(t, h.PostService)
	assert.NotNil(t, h.TablesService)
	assert.NotNil(t, h.Cfg)
	assert.NotNil(t, h.Validate)
}

func TestHealthAndTables(t *testing.T) {
	th := newTestHandlers()
	th.tables.On("GetCountTablesBD", mock.Anything).Return(9, nil)

	rr := th.serve(httptest.NewRequest(http.MethodGet, "/health", nil), nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = th.serve(httptest.NewRequest(http.MethodGet, "/tables", nil), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp handlers.TablesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 9, resp.CountTables)
}

func TestGetSession(t *testing.T) {
	th := newTestHandlers()
	viewer := &models.CurrentUser{UserID: 3, Username: "kim", UnitID: 1, Role: models.RoleMember}

	tests := []struct {
		name           string
		viewer         *models.CurrentUser
		expectedResult string
	}{
		{"anonymous", nil, "fail"},
		{"signed in", viewer, "success"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := th.serve(httptest.NewRequest(http.MethodGet, "/api/user/session", nil), tt.viewer)
			require.Equal(t, http.StatusOK, rr.Code)

			var resp handlers.SessionResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedResult, resp.Result)
			if tt.viewer != nil {
				require.NotNil(t, resp.Session)
				assert.Equal(t, tt.viewer.UserID, resp.Session.UserID)
			}
		})
	}
}

func TestServiceErrorStatuses(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{"not found", fmt.Errorf("post 5: %w", common.ErrNotFound), http.StatusNotFound, "post 5: resource not found"},
		{"unauthorized", common.ErrUnauthorized, http.StatusUnauthorized, "authentication required"},
		{"forbidden", fmt.Errorf("post 5: %w", common.ErrForbidden), http.StatusForbidden, "access denied"},
		{"invalid input", fmt.Errorf("bad: %w", common.ErrInvalidInput), http.StatusBadRequest, "bad: invalid input"},
		{"storage", fmt.Errorf("get post: %w: %w", common.ErrStorage, errors.New("dial tcp")), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandlers()
			th.posts.On("GetPost", mock.Anything, anonymous, int64(5)).Return(nil, tt.err)

			rr := th.serve(httptest.NewRequest(http.MethodGet, "/api/posts/5", nil), nil)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedBody, resp.Error)
		})
	}
}
