package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"teahouse-backend/internal/domains/tea"
	"teahouse-backend/internal/shared/response"
	"teahouse-backend/internal/shared/validate"
)

type TeaHandler struct {
	service tea.TeaService
}

func NewTeaHandler(svc tea.TeaService) *TeaHandler {
	return &TeaHandler{
		service: svc,
	}
}

// List handles GET /teas.
func (h *TeaHandler) List(c *gin.Context) {
	var query tea.ListTeasQuery
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

// Create handles POST /teas.
func (h *TeaHandler) Create(c *gin.Context) {
	var req tea.CreateTeaReq
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

// GetByID handles GET /teas/:id.
func (h *TeaHandler) GetByID(c *gin.Context) {
	id, ok := h.teaID(c)
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

// Replace handles PUT /teas/:id.
func (h *TeaHandler) Replace(c *gin.Context) {
	id, ok := h.teaID(c)
	if !ok {
		return
	}

	var req tea.ReplaceTeaReq
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

// Patch handles PATCH /teas/:id.
func (h *TeaHandler) Patch(c *gin.Context) {
	id, ok := h.teaID(c)
	if !ok {
		return
	}

	var req tea.PatchTeaReq
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

// Delete handles DELETE /teas/:id.
func (h *TeaHandler) Delete(c *gin.Context) {
	id, ok := h.teaID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.serviceError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *TeaHandler) teaID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "Invalid tea id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *TeaHandler) serviceError(c *gin.Context, err error) {
	if errors.Is(err, tea.ErrTeaNotFound) {
		response.NotFound(c, tea.ErrTeaNotFound.Error())
		return
	}
	response.Internal(c)
}
