package page

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"errorviews/internal/middleware"
	"errorviews/internal/model"
	"errorviews/pkg/response"
)

// Home renders the home page
// @Summary Home page
// @Description Lists the demo routes
// @Tags Pages
// @Produce json
// @Success 200 {object} response.Resp
// @Router / [get]
func (h *handler) Home(c *gin.Context) {
	attrs := middleware.Attributes(c)
	attrs[attrLinks] = Links
	response.View(c, http.StatusOK, model.ViewIndex, attrs)
}

// Unannotated renders the page shown after the mapping table is switched on
// @Summary Mapping table on
// @Tags Pages
// @Produce json
// @Success 200 {object} response.Resp
// @Router /unannotated [get]
func (h *handler) Unannotated(c *gin.Context) {
	h.switchPage(c, model.ViewUnannotated)
}

// NoHandler renders the page shown after the mapping table is switched off
// @Summary Mapping table off
// @Tags Pages
// @Produce json
// @Success 200 {object} response.Resp
// @Router /no-handler [get]
func (h *handler) NoHandler(c *gin.Context) {
	h.switchPage(c, model.ViewNoHandler)
}

// Demo5 renders the request timestamp and profile
// @Summary Demo5 page
// @Tags Pages
// @Produce json
// @Success 200 {object} response.Resp
// @Router /demo5 [get]
func (h *handler) Demo5(c *gin.Context) {
	response.View(c, http.StatusOK, model.ViewDemo5, middleware.Attributes(c))
}

func (h *handler) switchPage(c *gin.Context, view string) {
	attrs := middleware.WithSwitchState(c, middleware.Attributes(c))
	h.l.Debugf(c.Request.Context(), "internal.page.switchPage: %s, switch %v", view, attrs[model.AttrSwitchState])
	response.View(c, http.StatusOK, view, attrs)
}
