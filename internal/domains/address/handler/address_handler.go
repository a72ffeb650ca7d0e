package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"police-records-backend/internal/domains/address"
	"police-records-backend/internal/shared/apperror"
	"police-records-backend/internal/shared/response"
)

type AddressHandler struct {
	service address.Service
}

func NewAddressHandler(service address.Service) *AddressHandler {
	return &AddressHandler{
		service: service,
	}
}

// Lookup handles GET /addresses?cnp=
func (h *AddressHandler) Lookup(c *gin.Context) {
	results, err := h.service.LookupByCNP(c.Request.Context(), c.Query("cnp"))
	if err != nil {
		status, code, message := apperror.MapToHTTP(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, results)
}
