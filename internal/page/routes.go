package page

import (
	"github.com/gin-gonic/gin"

	"errorviews/internal/model"
)

// RegisterRoutes maps the static views.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/", h.Home)
	rg.GET("/"+model.ViewUnannotated, h.Unannotated)
	rg.GET("/"+model.ViewNoHandler, h.NoHandler)
	rg.GET("/"+model.ViewDemo5, h.Demo5)
}
