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

type PersonHandler struct {
	personService *services.PersonService
	limits        query.Limits
	log           zerolog.Logger
}

func NewPersonHandler(personService *services.PersonService, limits query.Limits, log zerolog.Logger) *PersonHandler {
	return &PersonHandler{personService: personService, limits: limits, log: log}
}

// ListPersons handles GET /api/persons
func (h *PersonHandler) ListPersons(c *gin.Context) {
	params, err := query.ParseParams(models.PersonEntity, c.Request.URL.Query(), h.limits)
	if err != nil {
		responses.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	persons, total, err := h.personService.List(c.Request.Context(), params)
	if err != nil {
		serverError(c, h.log, err)
		return
	}

	responses.List(c, http.StatusOK, persons, total, params.Page, params.PerPage)
}

// CreatePerson handles POST /api/persons
func (h *PersonHandler) CreatePerson(c *gin.Context) {
	var req services.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	person, err := h.personService.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, h.log, err, "Person")
		return
	}

	c.JSON(http.StatusCreated, person)
}

// GetPerson handles GET /api/persons/:id
func (h *PersonHandler) GetPerson(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	person, err := h.personService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err, "Person")
		return
	}

	c.JSON(http.StatusOK, person)
}

// UpdatePerson handles PUT and PATCH /api/persons/:id
func (h *PersonHandler) UpdatePerson(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req services.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	person, err := h.personService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, h.log, err, "Person")
		return
	}

	c.JSON(http.StatusOK, person)
}

// DeletePerson handles DELETE /api/persons/:id
func (h *PersonHandler) DeletePerson(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.personService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, h.log, err, "Person")
		return
	}

	c.Status(http.StatusNoContent)
}
