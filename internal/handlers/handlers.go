// Package handlers contains the gin endpoints. Handlers bind and validate
// input, call the matching service, and translate its errors into the API's
// response contract.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"peopledir/internal/middlewares"
	"peopledir/internal/responses"
	"peopledir/internal/services"
)

// pathID parses the :id path parameter. On failure it writes the 400
// response itself and reports false.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "invalid id in path")
		return 0, false
	}
	return id, true
}

// respondServiceError maps service failures onto the error contract:
// ErrNotFound becomes a 404 naming the entity, validation errors become a
// 400 with their message, anything else an opaque 500.
func respondServiceError(c *gin.Context, log zerolog.Logger, err error, entity string) {
	if errors.Is(err, services.ErrNotFound) {
		responses.Error(c, http.StatusNotFound, entity+" not found")
		return
	}

	var ve *services.ValidationError
	if errors.As(err, &ve) {
		responses.Error(c, http.StatusBadRequest, ve.Message)
		return
	}

	serverError(c, log, err)
}

// serverError logs the failure with its request id and answers with an
// opaque 500.
func serverError(c *gin.Context, log zerolog.Logger, err error) {
	log.Error().
		Err(err).
		Str("request_id", middlewares.GetRequestID(c)).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("request failed")

	responses.Error(c, http.StatusInternalServerError, "internal server error")
}
