package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the administrative resolver routes. limit guards the toggle, which
// answers every method.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, limit gin.HandlerFunc) {
	rg.Any("/simpleMappingExceptionResolver/:action", limit, h.Toggle)

	admin := rg.Group("/resolver")
	{
		admin.GET("/mappings", h.Mappings)
	}
}
