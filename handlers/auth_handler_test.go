package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SebasDosman/vortex-bird-test/models"
	"github.com/SebasDosman/vortex-bird-test/services"
	"github.com/SebasDosman/vortex-bird-test/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func authResponse() *services.AuthenticationResponse {
	return &services.AuthenticationResponse{
		AccessToken: "token",
		TokenType:   "Bearer",
		ExpiresIn:   1700000000000,
		Principal:   models.UserProfile{ID: 1, Email: "a@b.com", Role: models.RoleUser, Enabled: true},
	}
}

func TestAuthHandler_SignIn(t *testing.T) {
	svc := new(MockAuthenticator)
	svc.On("SignIn", mock.Anything, services.SignInRequest{Email: "a@b.com", Password: "Abcdef1!"}).Return(authResponse(), nil)
	h := NewAuthHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/auth/signIn", strings.NewReader(`{"email":"a@b.com","password":"Abcdef1!"}`))
	w := httptest.NewRecorder()
	h.HandleSignIn(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "token", body["accessToken"])
	assert.Equal(t, "Bearer", body["tokenType"])
	assert.Equal(t, float64(1700000000000), body["expiresIn"])
	assert.Equal(t, "a@b.com", body["principal"].(map[string]interface{})["email"])
}

func TestAuthHandler_SignIn_FailuresAreIdentical(t *testing.T) {
	svc := new(MockAuthenticator)
	svc.On("SignIn", mock.Anything, mock.Anything).Return(nil, services.ErrIncorrectCredentials)
	h := NewAuthHandler(svc, zap.NewNop())

	send := func(body string) string {
		w := httptest.NewRecorder()
		h.HandleSignIn(w, httptest.NewRequest(http.MethodPost, "/auth/signIn", strings.NewReader(body)))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		return w.Body.String()
	}

	unknown := send(`{"email":"nobody@b.com","password":"Abcdef1!"}`)
	wrong := send(`{"email":"a@b.com","password":"Wrong123!"}`)
	assert.Equal(t, unknown, wrong)
	assert.JSONEq(t, `{"message":"Incorrect credentials","code":"401","status":"Unauthorized"}`, wrong)
}

func TestAuthHandler_SignIn_Validation(t *testing.T) {
	svc := new(MockAuthenticator)
	h := NewAuthHandler(svc, zap.NewNop())

	w := httptest.NewRecorder()
	h.HandleSignIn(w, httptest.NewRequest(http.MethodPost, "/auth/signIn", strings.NewReader(`{"email":"nope"}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body utils.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, services.MsgValidationFailed, body.Message)
	assert.Contains(t, body.Details, "email")
	assert.Contains(t, body.Details, "password")
	svc.AssertNotCalled(t, "SignIn", mock.Anything, mock.Anything)
}

func TestAuthHandler_SignIn_MalformedBody(t *testing.T) {
	h := NewAuthHandler(new(MockAuthenticator), zap.NewNop())

	w := httptest.NewRecorder()
	h.HandleSignIn(w, httptest.NewRequest(http.MethodPost, "/auth/signIn", strings.NewReader(`{`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_SignUp(t *testing.T) {
	svc := new(MockAuthenticator)
	expected := services.SignUpRequest{Name: "A", LastName: "B", Phone: "3001234567", Email: "a@b.com", Password: "Abcdef1!"}
	svc.On("SignUp", mock.Anything, expected).Return(authResponse(), nil)
	h := NewAuthHandler(svc, zap.NewNop())

	body := `{"name":"A","lastName":"B","phone":"3001234567","email":"a@b.com","password":"Abcdef1!"}`
	w := httptest.NewRecorder()
	h.HandleSignUp(w, httptest.NewRequest(http.MethodPost, "/auth/signUp", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestAuthHandler_SignUp_Conflict(t *testing.T) {
	svc := new(MockAuthenticator)
	svc.On("SignUp", mock.Anything, mock.Anything).
		Return(nil, services.Conflictf("The user with phone: %s already exists", "3001234567"))
	h := NewAuthHandler(svc, zap.NewNop())

	body := `{"name":"A","lastName":"B","phone":"3001234567","email":"a@b.com","password":"Abcdef1!"}`
	w := httptest.NewRecorder()
	h.HandleSignUp(w, httptest.NewRequest(http.MethodPost, "/auth/signUp", strings.NewReader(body)))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "The user with phone: 3001234567 already exists")
}
