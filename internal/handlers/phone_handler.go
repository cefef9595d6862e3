package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"peopledir/internal/models"
	"peopledir/internal/query"
	"peopledir/internal/responses"
	"peopledir/internal/services"
)

type PhoneHandler struct {
	phoneService *services.PhoneService
	limits       query.Limits
	log          zerolog.Logger
}

func NewPhoneHandler(phoneService *services.PhoneService, limits query.Limits, log zerolog.Logger) *PhoneHandler {
	return &PhoneHandler{phoneService: phoneService, limits: limits, log: log}
}

// ListPhones handles GET /api/phones
func (h *PhoneHandler) ListPhones(c *gin.Context) {
	params, err := query.ParseParams(models.PhoneEntity, c.Request.URL.Query(), h.limits)
	if err != nil {
		responses.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	phones, total, err := h.phoneService.List(c.Request.Context(), params)
	if err != nil {
		serverError(c, h.log, err)
		return
	}

	responses.List(c, http.StatusOK, phones, total, params.Page, params.PerPage)
}

// CreatePhone handles POST /api/phones
func (h *PhoneHandler) CreatePhone(c *gin.Context) {
	var req services.CreatePhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	phone, err := h.phoneService.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, h.log, err, "Phone")
		return
	}

	c.JSON(http.StatusCreated, phone)
}

// GetPhone handles GET /api/phones/:id
func (h *PhoneHandler) GetPhone(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	phone, err := h.phoneService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err, "Phone")
		return
	}

	c.JSON(http.StatusOK, phone)
}

// UpdatePhone handles PUT and PATCH /api/phones/:id
func (h *PhoneHandler) UpdatePhone(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req services.UpdatePhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	phone, err := h.phoneService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, h.log, err, "Phone")
		return
	}

	c.JSON(http.StatusOK, phone)
}

// DeletePhone handles DELETE /api/phones/:id
func (h *PhoneHandler) DeletePhone(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.phoneService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, h.log, err, "Phone")
		return
	}

	c.Status(http.StatusNoContent)
}
