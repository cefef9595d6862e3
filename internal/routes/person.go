package routes

import (
	"github.com/gin-gonic/gin"

	"peopledir/internal/handlers"
)

type PersonRoutes struct {
	handler *handlers.PersonHandler
}

func NewPersonRoutes(handler *handlers.PersonHandler) *PersonRoutes {
	return &PersonRoutes{handler: handler}
}

func (r *PersonRoutes) RegisterRoutes(router *gin.RouterGroup) {
	persons := router.Group("/persons")
	{
		persons.GET("", r.handler.ListPersons)
		persons.POST("", r.handler.CreatePerson)
		persons.GET("/:id", r.handler.GetPerson)
		persons.PUT("/:id", r.handler.UpdatePerson)
		persons.PATCH("/:id", r.handler.UpdatePerson)
		persons.DELETE("/:id", r.handler.DeletePerson)
	}
}
