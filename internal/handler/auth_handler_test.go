package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"adboard/internal/models"
	"adboard/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterBody() map[string]interface{} {
	return map[string]interface{}{
		"username":  "test@example.com",
		"password":  "password123",
		"firstName": "Ivan",
		"lastName":  "Petrov",
		"phone":     "+7 (999) 123-45-67",
	}
}

func TestRegisterHandler_Success(t *testing.T) {
	th := createTestHandler()

	th.auth.On("Register", mockCtx, service.RegisterRequest{
		Username:  "test@example.com",
		Password:  "password123",
		FirstName: "Ivan",
		LastName:  "Petrov",
		Phone:     "+7 (999) 123-45-67",
	}).Return(&models.User{
		ID:           10,
		Username:     "test@example.com",
		PasswordHash: "$2a$10$hash",
		FirstName:    "Ivan",
		LastName:     "Petrov",
		Phone:        "+7 (999) 123-45-67",
		Role:         models.RoleUser,
	}, nil)

	rr := th.serve(jsonRequest(t, http.MethodPost, "/register", validRegisterBody()), nil)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.NotContains(t, rr.Body.String(), "hash")

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "test@example.com", response["email"])
	assert.Equal(t, "USER", response["role"])
	th.auth.AssertExpectations(t)
}

func TestRegisterHandler_Validation(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(body map[string]interface{})
		field string
	}{
		{"bad email", func(b map[string]interface{}) { b["username"] = "not-an-email" }, "username"},
		{"short password", func(b map[string]interface{}) { b["password"] = "short" }, "password"},
		{"long password", func(b map[string]interface{}) { b["password"] = "a-very-long-password" }, "password"},
		{"bad phone", func(b map[string]interface{}) { b["phone"] = "12345" }, "phone"},
		{"short name", func(b map[string]interface{}) { b["firstName"] = "I" }, "firstName"},
		{"admin self-registration", func(b map[string]interface{}) { b["role"] = "ADMIN" }, "role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := createTestHandler()
			body := validRegisterBody()
			tt.edit(body)

			rr := th.serve(jsonRequest(t, http.MethodPost, "/register", body), nil)

			response := assertJSONError(t, rr, http.StatusBadRequest, "validation failed")
			assert.Contains(t, response.Fields, tt.field)
			th.auth.AssertNotCalled(t, "Register")
		})
	}
}

func TestRegisterHandler_Duplicate(t *testing.T) {
	th := createTestHandler()
	th.auth.On("Register", mockCtx, service.RegisterRequest{
		Username:  "test@example.com",
		Password:  "password123",
		FirstName: "Ivan",
		LastName:  "Petrov",
		Phone:     "+7 (999) 123-45-67",
	}).Return(nil, models.ErrAlreadyRegistered)

	rr := th.serve(jsonRequest(t, http.MethodPost, "/register", validRegisterBody()), nil)

	assertJSONError(t, rr, http.StatusBadRequest, "already exists")
}

func TestRegisterHandler_MalformedJSON(t *testing.T) {
	th := createTestHandler()

	req := jsonRequest(t, http.MethodPost, "/register", nil)
	req.Body = http.NoBody

	rr := th.serve(req, nil)

	assertJSONError(t, rr, http.StatusBadRequest, "invalid request body")
}

func TestLoginHandler_BodyTooLarge(t *testing.T) {
	th := createTestHandler()

	rr := th.serve(jsonRequest(t, http.MethodPost, "/login", map[string]string{
		"username": "test@example.com",
		"password": strings.Repeat("a", maxJSONBodySize),
	}), nil)

	assertJSONError(t, rr, http.StatusBadRequest, "invalid request body")
	th.auth.AssertNotCalled(t, "Login")
}

func TestLoginHandler(t *testing.T) {
	th := createTestHandler()
	th.auth.On("Login", mockCtx, "test@example.com", "password123").
		Return(&service.AccessToken{Token: "jwt-token", ExpiresIn: 2 * time.Hour}, nil)
	th.auth.On("Login", mockCtx, "test@example.com", "wrong-password").
		Return(nil, models.ErrInvalidCredentials)

	rr := th.serve(jsonRequest(t, http.MethodPost, "/login", map[string]string{
		"username": "test@example.com",
		"password": "password123",
	}), nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"token":"jwt-token","tokenType":"Bearer","expiresIn":7200}`, rr.Body.String())

	rr = th.serve(jsonRequest(t, http.MethodPost, "/login", map[string]string{
		"username": "test@example.com",
		"password": "wrong-password",
	}), nil)

	assertJSONError(t, rr, http.StatusUnauthorized, "invalid username or password")
}

func TestSetPasswordHandler(t *testing.T) {
	th := createTestHandler()
	th.auth.On("ChangePassword", mockCtx, owner, "password123", "newpass123").Return(nil)
	th.auth.On("ChangePassword", mockCtx, owner, "wrong-pass", "newpass123").Return(models.ErrIncorrectCurrentPassword)

	rr := th.serve(jsonRequest(t, http.MethodPost, "/users/set_password", map[string]string{
		"currentPassword": "password123",
		"newPassword":     "newpass123",
	}), owner)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = th.serve(jsonRequest(t, http.MethodPost, "/users/set_password", map[string]string{
		"currentPassword": "wrong-pass",
		"newPassword":     "newpass123",
	}), owner)
	assertJSONError(t, rr, http.StatusForbidden, "current password is incorrect")

	th.auth.AssertExpectations(t)
}
