package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"teahouse-backend/internal/domains/brew"
	"teahouse-backend/internal/shared/pagination"
	"teahouse-backend/internal/shared/response"
	"teahouse-backend/internal/shared/validate"
)

type BrewHandler struct {
	service brew.BrewService
}

func NewBrewHandler(svc brew.BrewService) *BrewHandler {
	return &BrewHandler{
		service: svc,
	}
}

// List handles GET /brews.
func (h *BrewHandler) List(c *gin.Context) {
	var query brew.ListBrewsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ValidationError(c, "Invalid query parameters", nil)
		return
	}
	if err := query.Validate(); err != nil {
		response.ValidationError(c, "Validation failed", validate.Details(err))
		return
	}

	items, meta, err := h.service.List(c.Request.Context(), &query)
	if err != nil {
		response.Internal(c)
		return
	}

	response.List(c, items, meta)
}

// ListByTeapot handles GET /teapots/:id/brews. Unlike brew creation,
// an unknown teapot here is a plain 404.
func (h *BrewHandler) ListByTeapot(c *gin.Context) {
	teapotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "Invalid teapot id", nil)
		return
	}

	var query pagination.Query
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ValidationError(c, "Invalid query parameters", nil)
		return
	}
	if err := query.Validate(); err != nil {
		response.ValidationError(c, "Validation failed", validate.Details(err))
		return
	}

	items, meta, err := h.service.ListByTeapot(c.Request.Context(), teapotID, &query)
	if err != nil {
		if errors.Is(err, brew.ErrTeapotNotFound) {
			response.NotFound(c, brew.ErrTeapotNotFound.Error())
			return
		}
		response.Internal(c)
		return
	}

	response.List(c, items, meta)
}

// Create handles POST /brews. Missing referenced entities surface as
// 400 VALIDATION_ERROR, not 404 — part of the fixed contract.
func (h *BrewHandler) Create(c *gin.Context) {
	var req brew.CreateBrewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, "Validation failed", validate.Details(err))
		return
	}

	entity, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, brew.ErrTeapotNotFound):
			response.ValidationError(c, brew.ErrTeapotNotFound.Error(), nil)
		case errors.Is(err, brew.ErrTeaNotFound):
			response.ValidationError(c, brew.ErrTeaNotFound.Error(), nil)
		default:
			response.Internal(c)
		}
		return
	}

	response.Entity(c, http.StatusCreated, entity)
}

// GetByID handles GET /brews/:id, returning the expansion view.
func (h *BrewHandler) GetByID(c *gin.Context) {
	id, ok := h.brewID(c)
	if !ok {
		return
	}

	detail, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	response.Entity(c, http.StatusOK, detail)
}

// Patch handles PATCH /brews/:id.
func (h *BrewHandler) Patch(c *gin.Context) {
	id, ok := h.brewID(c)
	if !ok {
		return
	}

	var req brew.PatchBrewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, "Validation failed", validate.Details(err))
		return
	}

	entity, err := h.service.Patch(c.Request.Context(), id, &req)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	response.Entity(c, http.StatusOK, entity)
}

// Delete handles DELETE /brews/:id, cascading the brew's steeps.
func (h *BrewHandler) Delete(c *gin.Context) {
	id, ok := h.brewID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.serviceError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *BrewHandler) brewID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "Invalid brew id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *BrewHandler) serviceError(c *gin.Context, err error) {
	if errors.Is(err, brew.ErrBrewNotFound) {
		response.NotFound(c, brew.ErrBrewNotFound.Error())
		return
	}
	response.Internal(c)
}
