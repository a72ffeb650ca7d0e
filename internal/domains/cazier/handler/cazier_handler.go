package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"police-records-backend/internal/domains/cazier"
	"police-records-backend/internal/shared/apperror"
	"police-records-backend/internal/shared/response"
)

type CazierHandler struct {
	service cazier.Service
}

func NewCazierHandler(service cazier.Service) *CazierHandler {
	return &CazierHandler{
		service: service,
	}
}

// AddEntry handles POST /criminal-records
func (h *CazierHandler) AddEntry(c *gin.Context) {
	var req cazier.AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if err := h.service.AddEntry(c.Request.Context(), req); err != nil {
		status, code, message := apperror.MapToHTTP(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": "Record entry added successfully"})
}

// Stats handles GET /criminal-record-stats
func (h *CazierHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		status, code, message := apperror.MapToHTTP(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// ListPersons handles GET /criminal-record-persons
func (h *CazierHandler) ListPersons(c *gin.Context) {
	persons, err := h.service.ListPersonsWithRecord(c.Request.Context())
	if err != nil {
		status, code, message := apperror.MapToHTTP(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, persons)
}

// ListActive handles GET /criminal-record-active
func (h *CazierHandler) ListActive(c *gin.Context) {
	persons, err := h.service.ListPersonsWithActiveRecord(c.Request.Context())
	if err != nil {
		status, code, message := apperror.MapToHTTP(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, persons)
}

// Detail handles GET /criminal-record-detail?cnp=
func (h *CazierHandler) Detail(c *gin.Context) {
	details, err := h.service.LookupByCNP(c.Request.Context(), c.Query("cnp"))
	if err != nil {
		status, code, message := apperror.MapToHTTP(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, details)
}

// Offenses handles GET /offense-catalog
func (h *CazierHandler) Offenses(c *gin.Context) {
	offenses, err := h.service.Offenses(c.Request.Context())
	if err != nil {
		status, code, message := apperror.MapToHTTP(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, offenses)
}
