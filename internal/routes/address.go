package routes

import (
	"github.com/gin-gonic/gin"

	"peopledir/internal/handlers"
)

type AddressRoutes struct {
	handler *handlers.AddressHandler
}

func NewAddressRoutes(handler *handlers.AddressHandler) *AddressRoutes {
	return &AddressRoutes{handler: handler}
}

func (r *AddressRoutes) RegisterRoutes(router *gin.RouterGroup) {
	addresses := router.Group("/addresses")
	{
		addresses.GET("", r.handler.ListAddresses)
		addresses.POST("", r.handler.CreateAddress)
		addresses.GET("/:id", r.handler.GetAddress)
		addresses.PUT("/:id", r.handler.UpdateAddress)
		addresses.PATCH("/:id", r.handler.UpdateAddress)
		addresses.DELETE("/:id", r.handler.DeleteAddress)
	}
}
