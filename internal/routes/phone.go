package routes

import (
	"github.com/gin-gonic/gin"

	"peopledir/internal/handlers"
)

type PhoneRoutes struct {
	handler *handlers.PhoneHandler
}

func NewPhoneRoutes(handler *handlers.PhoneHandler) *PhoneRoutes {
	return &PhoneRoutes{handler: handler}
}

func (r *PhoneRoutes) RegisterRoutes(router *gin.RouterGroup) {
	phones := router.Group("/phones")
	{
		phones.GET("", r.handler.ListPhones)
		phones.POST("", r.handler.CreatePhone)
		phones.GET("/:id", r.handler.GetPhone)
		phones.PUT("/:id", r.handler.UpdatePhone)
		phones.PATCH("/:id", r.handler.UpdatePhone)
		phones.DELETE("/:id", r.handler.DeletePhone)
	}
}
