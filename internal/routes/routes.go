package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"peopledir/internal/handlers"
)

func RegisterRoutes(router *gin.Engine, personHandler *handlers.PersonHandler, addressHandler *handlers.AddressHandler, phoneHandler *handlers.PhoneHandler) {
	api := router.Group("/api")

	personRoutes := NewPersonRoutes(personHandler)
	personRoutes.RegisterRoutes(api)

	addressRoutes := NewAddressRoutes(addressHandler)
	addressRoutes.RegisterRoutes(api)

	phoneRoutes := NewPhoneRoutes(phoneHandler)
	phoneRoutes.RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
