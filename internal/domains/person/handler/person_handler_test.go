package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"police-records-backend/internal/domains/person"
	"police-records-backend/internal/shared/apperror"
)

type stubService struct {
	searchResult []person.PersonWithPartner
	registerErr  error
	deleteErr    error
}

func (s *stubService) Search(_ context.Context, _ person.SearchFilter) ([]person.PersonWithPartner, error) {
	return s.searchResult, nil
}

func (s *stubService) Register(_ context.Context, _ *person.CreateRequest) error {
	return s.registerErr
}

func (s *stubService) Update(_ context.Context, _ int, _ *person.UpdateRequest) error {
	return nil
}

func (s *stubService) Delete(_ context.Context, _ int) error {
	return s.deleteErr
}

func newRouter(svc person.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewPersonHandler(svc)
	router := gin.New()
	router.GET("/persons", h.Search)
	router.POST("/persons", h.Register)
	router.DELETE("/persons/:id", h.Delete)
	return router
}

func TestSearchEnvelope(t *testing.T) {
	router := newRouter(&stubService{searchResult: []person.PersonWithPartner{
		{IDPersoana: 1, Nume: "Pop", Prenume: "Ion", CNP: "1234567890123", NumePartener: "-", PrenumePartener: "-"},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/persons?cnp=1234567890123", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool                       `json:"success"`
		Data    []person.PersonWithPartner `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "-", body.Data[0].NumePartener)
}

func TestRegisterMapsConflictTo409(t *testing.T) {
	router := newRouter(&stubService{
		registerErr: apperror.NewConflict("DUPLICATE_CNP", "A person with this CNP is already registered"),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/persons",
		strings.NewReader(`{"Nume":"Pop","Prenume":"Ion","CNP":"1234567890123"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "DUPLICATE_CNP", body.Error.Code)
}

func TestRegisterRejectsMalformedJSON(t *testing.T) {
	router := newRouter(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/persons", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteMapsNotFoundTo404(t *testing.T) {
	router := newRouter(&stubService{
		deleteErr: apperror.NewNotFound("PERSON_NOT_FOUND", "Person not found"),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/persons/42", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
