package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"police-records-backend/internal/domains/person"
	"police-records-backend/internal/shared/apperror"
	"police-records-backend/internal/shared/response"
)

type PersonHandler struct {
	service person.Service
}

func NewPersonHandler(service person.Service) *PersonHandler {
	return &PersonHandler{
		service: service,
	}
}

// Search handles GET /persons?name=&surname=&cnp=
func (h *PersonHandler) Search(c *gin.Context) {
	filter := person.SearchFilter{
		Nume:    c.Query("name"),
		Prenume: c.Query("surname"),
		CNP:     c.Query("cnp"),
	}

	results, err := h.service.Search(c.Request.Context(), filter)
	if err != nil {
		status, code, message := apperror.MapToHTTP(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, results)
}

// Register handles POST /persons
func (h *PersonHandler) Register(c *gin.Context) {
	var req person.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if err := h.service.Register(c.Request.Context(), &req); err != nil {
		status, code, message := apperror.MapToHTTP(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": "Person registered successfully"})
}

// Update handles PUT /persons/:id
func (h *PersonHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid person id")
		return
	}

	var req person.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		status, code, message := apperror.MapToHTTP(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Person updated successfully"})
}

// Delete handles DELETE /persons/:id
func (h *PersonHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid person id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		status, code, message := apperror.MapToHTTP(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Person deleted successfully"})
}
