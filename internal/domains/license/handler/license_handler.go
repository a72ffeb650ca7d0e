package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"police-records-backend/internal/domains/license"
	"police-records-backend/internal/shared/apperror"
	"police-records-backend/internal/shared/response"
)

type LicenseHandler struct {
	service license.Service
}

func NewLicenseHandler(service license.Service) *LicenseHandler {
	return &LicenseHandler{
		service: service,
	}
}

// Issue handles POST /licenses
func (h *LicenseHandler) Issue(c *gin.Context) {
	var req license.IssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	id, err := h.service.Issue(c.Request.Context(), req)
	if err != nil {
		status, code, message := apperror.MapToHTTP(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":  "License issued successfully",
		"IDPermis": id,
	})
}

// AttachCategory handles POST /license-categories
func (h *LicenseHandler) AttachCategory(c *gin.Context) {
	var req license.AttachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if err := h.service.AttachCategory(c.Request.Context(), req); err != nil {
		status, code, message := apperror.MapToHTTP(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": "License category attached successfully"})
}

// UpdateCategory handles PUT /license-categories
func (h *LicenseHandler) UpdateCategory(c *gin.Context) {
	var req license.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if err := h.service.UpdateCategoryDate(c.Request.Context(), req); err != nil {
		status, code, message := apperror.MapToHTTP(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Acquisition date updated successfully"})
}

// DetachCategory handles DELETE /license-categories
func (h *LicenseHandler) DetachCategory(c *gin.Context) {
	var req license.DetachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if err := h.service.DetachCategory(c.Request.Context(), req); err != nil {
		status, code, message := apperror.MapToHTTP(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "License category detached successfully"})
}

// GetByCNP handles GET /licenses/:cnp
func (h *LicenseHandler) GetByCNP(c *gin.Context) {
	result, err := h.service.GetByCNP(c.Request.Context(), c.Param("cnp"))
	if err != nil {
		status, code, message := apperror.MapToHTTP(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Catalog handles GET /category-catalog
func (h *LicenseHandler) Catalog(c *gin.Context) {
	categories, err := h.service.Catalog(c.Request.Context())
	if err != nil {
		status, code, message := apperror.MapToHTTP(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, categories)
}

// CountByCategory handles GET /license-category-counts
func (h *LicenseHandler) CountByCategory(c *gin.Context) {
	counts, err := h.service.CountByCategory(c.Request.Context())
	if err != nil {
		status, code, message := apperror.MapToHTTP(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, counts)
}

// ListHolders handles GET /persons-with-license
func (h *LicenseHandler) ListHolders(c *gin.Context) {
	holders, err := h.service.ListHolders(c.Request.Context())
	if err != nil {
		status, code, message := apperror.MapToHTTP(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, holders)
}

// ListExtended handles GET /licenses-extended
func (h *LicenseHandler) ListExtended(c *gin.Context) {
	licenses, err := h.service.ListExtended(c.Request.Context())
	if err != nil {
		status, code, message := apperror.MapToHTTP(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, licenses)
}
