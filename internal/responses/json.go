package responses

import "github.com/gin-gonic/gin"

// ListResponse is the envelope for every paginated collection.
type ListResponse struct {
	Data    interface{} `json:"data"`
	Total   int64       `json:"total"`
	Page    int         `json:"page"`
	PerPage int         `json:"per_page"`
}

// ErrorResponse carries a single client-facing message. Single records are
// serialized bare, so errors are the only other wrapped shape.
type ErrorResponse struct {
	Error string `json:"error"`
}

func List(c *gin.Context, statusCode int, data interface{}, total int64, page, perPage int) {
	c.JSON(statusCode, ListResponse{
		Data:    data,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	})
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{Error: message})
}
