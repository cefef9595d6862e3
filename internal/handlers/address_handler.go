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

type AddressHandler struct {
	addressService *services.AddressService
	limits         query.Limits
	log            zerolog.Logger
}

func NewAddressHandler(addressService *services.AddressService, limits query.Limits, log zerolog.Logger) *AddressHandler {
	return &AddressHandler{addressService: addressService, limits: limits, log: log}
}

// ListAddresses handles GET /api/addresses
func (h *AddressHandler) ListAddresses(c *gin.Context) {
	params, err := query.ParseParams(models.AddressEntity, c.Request.URL.Query(), h.limits)
	if err != nil {
		responses.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	addresses, total, err := h.addressService.List(c.Request.Context(), params)
	if err != nil {
		serverError(c, h.log, err)
		return
	}

	responses.List(c, http.StatusOK, addresses, total, params.Page, params.PerPage)
}

// CreateAddress handles POST /api/addresses
func (h *AddressHandler) CreateAddress(c *gin.Context) {
	var req services.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	address, err := h.addressService.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, h.log, err, "Address")
		return
	}

	c.JSON(http.StatusCreated, address)
}

// GetAddress handles GET /api/addresses/:id
func (h *AddressHandler) GetAddress(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	address, err := h.addressService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err, "Address")
		return
	}

	c.JSON(http.StatusOK, address)
}

// UpdateAddress handles PUT and PATCH /api/addresses/:id
func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req services.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	address, err := h.addressService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, h.log, err, "Address")
		return
	}

	c.JSON(http.StatusOK, address)
}

// DeleteAddress handles DELETE /api/addresses/:id
func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.addressService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, h.log, err, "Address")
		return
	}

	c.Status(http.StatusNoContent)
}
