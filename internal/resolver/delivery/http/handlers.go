package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"errorviews/internal/middleware"
	"errorviews/internal/model"
	"errorviews/internal/resolver"
	pkgResponse "errorviews/pkg/response"
)

// Toggle godoc
// @Summary     Switch mapping-table resolution on or off
// @Description "on" (any case) enables the mapping table, anything else disables it.
// @Description Redirects to /unannotated when on and to /no-handler when off.
// @Tags        Resolver
// @Param       action path string true "on or off"
// @Success     303
// @Failure     429 {object} response.Resp
// @Router      /simpleMappingExceptionResolver/{action} [GET]
func (h *handler) Toggle(c *gin.Context) {
	on := resolver.SwitchOn(c.Param("action"))
	h.uc.SetEnabled(c.Request.Context(), on)

	target := "/" + model.ViewNoHandler
	if on {
		target = "/" + model.ViewUnannotated
	}
	c.Redirect(http.StatusSeeOther, target)
}

// Mappings godoc
// @Summary     List the mapping table
// @Description Entries in configuration order, with the current switch state.
// @Tags        Resolver
// @Produce     json
// @Success     200 {object} response.Resp{data=mappingsResp}
// @Router      /resolver/mappings [GET]
func (h *handler) Mappings(c *gin.Context) {
	pkgResponse.OK(c, newMappingsResp(middleware.Attributes(c), model.SwitchState(h.uc.Enabled()), h.uc.Mappings()))
}
