package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the demo controller on every method. advice, when given, is
// attached to these routes only: exception handlers local to this controller.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, advice ...gin.HandlerFunc) {
	shop := rg.Group("", advice...)
	{
		shop.Any("/orderNotFound", h.OrderNotFound)
		shop.Any("/dataIntegrityViolation", h.DataIntegrityViolation)
		shop.Any("/databaseError1", h.DatabaseError1)
		shop.Any("/databaseError2", h.DatabaseError2)
		shop.Any("/invalidCreditCard", h.InvalidCreditCard)
		shop.Any("/databaseException", h.DatabaseException)
		shop.Any("/customException", h.CustomException)
		shop.Any("/unhandledException", h.UnhandledException)
	}
}
