package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"teahouse-backend/internal/domains/teapot"
	"teahouse-backend/internal/shared/response"
	"teahouse-backend/internal/shared/validate"
)

type TeapotHandler struct {
	service teapot.TeapotService
}

func NewTeapotHandler(svc teapot.TeapotService) *TeapotHandler {
	return &TeapotHandler{
		service: svc,
	}
}

// List handles GET /teapots.
func (h *TeapotHandler) List(c *gin.Context) {
	var query teapot.ListTeapotsQuery
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

// Create handles POST /teapots.
func (h *TeapotHandler) Create(c *gin.Context) {
	var req teapot.CreateTeapotReq
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
		response.Internal(c)
		return
	}

	response.Entity(c, http.StatusCreated, entity)
}

// GetByID handles GET /teapots/:id.
func (h *TeapotHandler) GetByID(c *gin.Context) {
	id, ok := h.teapotID(c)
	if !ok {
		return
	}

	entity, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	response.Entity(c, http.StatusOK, entity)
}

// Replace handles PUT /teapots/:id.
func (h *TeapotHandler) Replace(c *gin.Context) {
	id, ok := h.teapotID(c)
	if !ok {
		return
	}

	var req teapot.ReplaceTeapotReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, "Validation failed", validate.Details(err))
		return
	}

	entity, err := h.service.Replace(c.Request.Context(), id, &req)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	response.Entity(c, http.StatusOK, entity)
}

// Patch handles PATCH /teapots/:id.
func (h *TeapotHandler) Patch(c *gin.Context) {
	id, ok := h.teapotID(c)
	if !ok {
		return
	}

	var req teapot.PatchTeapotReq
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

// Delete handles DELETE /teapots/:id.
func (h *TeapotHandler) Delete(c *gin.Context) {
	id, ok := h.teapotID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.serviceError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *TeapotHandler) teapotID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "Invalid teapot id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *TeapotHandler) serviceError(c *gin.Context, err error) {
	if errors.Is(err, teapot.ErrTeapotNotFound) {
		response.NotFound(c, teapot.ErrTeapotNotFound.Error())
		return
	}
	response.Internal(c)
}
