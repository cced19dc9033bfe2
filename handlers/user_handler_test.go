package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SebasDosman/vortex-bird-test/models"
	"github.com/SebasDosman/vortex-bird-test/services"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func userRouter(svc UserService) http.Handler {
	h := NewUserHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/user", h.HandleList)
	r.Get("/user/enabled", h.HandleListEnabled)
	r.Get("/user/{id}", h.HandleGet)
	r.Get("/user/email/{email}", h.HandleGetByEmail)
	r.Post("/user", h.HandleCreate)
	r.Put("/user", h.HandleUpdate)
	r.Put("/user/admin/{id}", h.HandleToggleStatus)
	r.Delete("/user/admin/{id}", h.HandleDelete)
	return r
}

func TestUserHandler_ListPaging(t *testing.T) {
	svc := new(MockUserService)
	page := models.Page[models.UserProfile]{Content: []models.UserProfile{{ID: 1}}, Page: 2, Size: 5, HasNext: true}
	svc.On("List", mock.Anything, models.PageRequest{Page: 2, Size: 5}).Return(page, nil)

	w := httptest.NewRecorder()
	userRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user?page=2&size=5", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"content":[{"id":1,"name":"","lastName":"","phone":"","email":"","role":"","enabled":false}],"page":2,"size":5,"hasNext":true}`,
		w.Body.String())
}

func TestUserHandler_ListRejectsBadPaging(t *testing.T) {
	svc := new(MockUserService)

	for _, query := range []string{"?page=-1", "?size=0", "?size=101", "?page=x"} {
		w := httptest.NewRecorder()
		userRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/enabled"+query, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
	svc.AssertNotCalled(t, "ListEnabled", mock.Anything, mock.Anything)
}

func TestUserHandler_Get(t *testing.T) {
	svc := new(MockUserService)
	svc.On("GetByID", mock.Anything, int64(7)).Return(&models.UserProfile{ID: 7, Email: "x@films.co"}, nil)
	svc.On("GetByID", mock.Anything, int64(8)).Return(nil, services.NotFoundf("The user with ID: %d was not found", 8))

	w := httptest.NewRecorder()
	userRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/7", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	userRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/8", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "The user with ID: 8 was not found")

	w = httptest.NewRecorder()
	userRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_GetByEmail(t *testing.T) {
	svc := new(MockUserService)
	svc.On("GetByEmail", mock.Anything, "x@films.co").Return(&models.UserProfile{ID: 7}, nil)

	w := httptest.NewRecorder()
	userRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/email/x@films.co", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserHandler_Create(t *testing.T) {
	svc := new(MockUserService)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(req services.CreateUserRequest) bool {
		return req.Role == models.RoleAdmin && req.Email == "new@films.co"
	})).Return(&models.UserProfile{ID: 3, Role: models.RoleAdmin}, nil)

	body := `{"name":"New","lastName":"Admin","phone":"3001234567","email":"new@films.co","password":"Abcdef1!","role":"ADMIN"}`
	w := httptest.NewRecorder()
	userRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/user", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestUserHandler_Create_RejectsUnknownRole(t *testing.T) {
	svc := new(MockUserService)

	body := `{"name":"New","lastName":"Admin","phone":"3001234567","email":"new@films.co","password":"Abcdef1!","role":"ROOT"}`
	w := httptest.NewRecorder()
	userRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/user", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Contains(t, resp["details"], "role")
}

func TestUserHandler_UpdateToggleDelete(t *testing.T) {
	svc := new(MockUserService)
	svc.On("Update", mock.Anything, mock.AnythingOfType("services.UpdateUserRequest")).Return(&models.UserProfile{ID: 3}, nil)
	svc.On("ToggleStatus", mock.Anything, int64(3)).Return(&models.UserProfile{ID: 3, Enabled: false}, nil)
	svc.On("Delete", mock.Anything, int64(3)).Return(nil)

	body := `{"id":3,"name":"Ana","lastName":"Lopez","phone":"3001234567","email":"ana@films.co","password":"Abcdef1!"}`
	w := httptest.NewRecorder()
	userRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/user", strings.NewReader(body)))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	userRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/user/admin/3", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	userRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/user/admin/3", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	svc.AssertExpectations(t)
}
