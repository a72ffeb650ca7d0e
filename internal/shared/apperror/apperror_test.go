package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", NewValidation("MISSING_FIELDS", "Nume, Prenume and CNP are required"), http.StatusBadRequest, "MISSING_FIELDS"},
		{"not found", NewNotFound("PERSON_NOT_FOUND", "Person not found"), http.StatusNotFound, "PERSON_NOT_FOUND"},
		{"conflict", NewConflict("DUPLICATE_CNP", "CNP already registered"), http.StatusConflict, "DUPLICATE_CNP"},
		{"auth", NewAuth(), http.StatusUnauthorized, "AUTH_FAILED"},
		{"store", NewStore("query failed", errors.New("boom")), http.StatusInternalServerError, "STORE_ERROR"},
		{"unknown", errors.New("plain"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code, msg := MapToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestMapToHTTPWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NewConflict("DUPLICATE_LICENSE", "Person already holds a license"))

	status, code, _ := MapToHTTP(wrapped)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "DUPLICATE_LICENSE", code)
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsValidation(NewValidation("X", "x")))
	assert.True(t, IsNotFound(NewNotFound("X", "x")))
	assert.True(t, IsConflict(NewConflict("X", "x")))
	assert.True(t, IsAuth(NewAuth()))
	assert.True(t, IsStore(NewStore("x", nil)))
	assert.False(t, IsConflict(NewValidation("X", "x")))
	assert.False(t, IsValidation(errors.New("plain")))
}

func TestAuthErrorNeverCarriesCause(t *testing.T) {
	err := NewAuth()
	assert.Equal(t, "Invalid username or password", err.Message)
	assert.Nil(t, err.Err)
}
