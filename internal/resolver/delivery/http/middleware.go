package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"errorviews/internal/model"
	"errorviews/internal/resolver"
	pkgErrors "errorviews/pkg/errors"
)

func (h *handler) Advice() gin.HandlerFunc {
	return h.resolveWith(true)
}

func (h *handler) Resolve() gin.HandlerFunc {
	return h.resolveWith(false)
}

func (h *handler) resolveWith(advice bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		err, ok := pending(c)
		if !ok {
			return
		}

		rec := resolver.NewErrorRecord(err, c.Request.URL.Path, h.now())
		res := h.uc.Resolve(c.Request.Context(), resolver.ResolveInput{Record: rec, Advice: advice})
		if !res.Handled {
			return
		}

		if res.View == "" {
			response(c).status(res.Status)
			return
		}
		response(c).view(res.Status.Code, res.View, res.Diagnostics)
	}
}

func (h *handler) ErrorPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		err, ok := pending(c)
		if !ok {
			return
		}

		h.l.Errorf(c.Request.Context(), "internal.resolver.delivery.http.ErrorPage: %s on %s", pkgErrors.KindOf(err), c.Request.URL.Path)
		code := http.StatusInternalServerError
		if sc, _, ok := pkgErrors.StatusOf(err); ok {
			code = sc
		}
		h.renderDefault(c, code)
	}
}

func (h *handler) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		h.l.Errorf(c.Request.Context(), "internal.resolver.delivery.http.Recovery: %s on %s: %v", model.KindPanic, c.Request.URL.Path, recovered)
		if c.Writer.Written() {
			c.Abort()
			return
		}
		h.renderDefault(c, http.StatusInternalServerError)
		c.Abort()
	})
}

// NoRoute godoc
// @Summary     Unknown route
// @Description Renders the default error view with 404.
// @Tags        Resolver
// @Produce     json
// @Failure     404 {object} response.Resp
// @Router      /{path} [GET]
func (h *handler) NoRoute(c *gin.Context) {
	h.renderDefault(c, http.StatusNotFound)
}

func (h *handler) renderDefault(c *gin.Context, code int) {
	response(c).view(code, h.defaultView, map[string]any{
		model.AttrStatus: code,
		model.AttrURL:    c.Request.URL.Path,
	})
}

// pending returns the last error recorded on c when no response was written yet.
func pending(c *gin.Context) (error, bool) {
	if c.Writer.Written() {
		return nil, false
	}
	last := c.Errors.Last()
	if last == nil {
		return nil, false
	}
	return last.Err, true
}
