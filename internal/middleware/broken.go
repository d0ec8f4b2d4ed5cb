package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"errorviews/internal/model"
	pkgErrors "errorviews/pkg/errors"
)

const brokenSuffix = "broken"

// BrokenFilter fails every request whose path ends in "broken" before it reaches any
// route, so no exception handler ever sees the error.
func (mw Middleware) BrokenFilter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasSuffix(c.Request.URL.Path, brokenSuffix) {
			mw.l.Error(c.Request.Context(), "BROKEN FILTER FORCES AN EXCEPTION")
			_ = c.Error(pkgErrors.New(string(model.KindFilter), "Failure in BrokenFilter"))
			c.Abort()
			return
		}
		c.Next()
	}
}
