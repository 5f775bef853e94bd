package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"teahouse-backend/internal/domains/steep"
	"teahouse-backend/internal/shared/pagination"
	"teahouse-backend/internal/shared/response"
	"teahouse-backend/internal/shared/validate"
)

type SteepHandler struct {
	service steep.SteepService
}

func NewSteepHandler(svc steep.SteepService) *SteepHandler {
	return &SteepHandler{
		service: svc,
	}
}

// Create handles POST /brews/:id/steeps. An unknown brew is a 404
// here, unlike the 400 referential errors on brew creation.
func (h *SteepHandler) Create(c *gin.Context) {
	brewID, ok := h.brewID(c)
	if !ok {
		return
	}

	var req steep.CreateSteepReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, "Validation failed", validate.Details(err))
		return
	}

	entity, err := h.service.Create(c.Request.Context(), brewID, &req)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	response.Entity(c, http.StatusCreated, entity)
}

// ListByBrew handles GET /brews/:id/steeps, sorted by steepNumber.
func (h *SteepHandler) ListByBrew(c *gin.Context) {
	brewID, ok := h.brewID(c)
	if !ok {
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

	items, meta, err := h.service.ListByBrew(c.Request.Context(), brewID, &query)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	response.List(c, items, meta)
}

func (h *SteepHandler) brewID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "Invalid brew id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *SteepHandler) serviceError(c *gin.Context, err error) {
	if errors.Is(err, steep.ErrBrewNotFound) {
		response.NotFound(c, steep.ErrBrewNotFound.Error())
		return
	}
	response.Internal(c)
}
