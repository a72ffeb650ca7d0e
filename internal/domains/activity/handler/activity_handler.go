package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"police-records-backend/internal/domains/activity"
	"police-records-backend/internal/shared/apperror"
	"police-records-backend/internal/shared/response"
)

type ActivityHandler struct {
	service activity.Service
}

func NewActivityHandler(service activity.Service) *ActivityHandler {
	return &ActivityHandler{
		service: service,
	}
}

// ListByCNP handles GET /activities?cnp=
func (h *ActivityHandler) ListByCNP(c *gin.Context) {
	activities, err := h.service.ListByCNP(c.Request.Context(), c.Query("cnp"))
	if err != nil {
		status, code, message := apperror.MapToHTTP(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, activities)
}

// SearchInstitutions handles GET /institutions?institutia=
func (h *ActivityHandler) SearchInstitutions(c *gin.Context) {
	institutions, err := h.service.SearchInstitutions(c.Request.Context(), c.Query("institutia"))
	if err != nil {
		status, code, message := apperror.MapToHTTP(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, institutions)
}
