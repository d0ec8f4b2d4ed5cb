// Package page serves the static views of the demo: the home page, the two
// switch-status pages and the demo5 page.
package page

import (
	"github.com/gin-gonic/gin"

	pkgLog "errorviews/pkg/log"
)

// Handler is the interface for the page handler
type Handler interface {
	Home(c *gin.Context)
	Unannotated(c *gin.Context)
	NoHandler(c *gin.Context)
	Demo5(c *gin.Context)
}

type handler struct {
	l pkgLog.Logger
}

// New creates a new page handler
func New(l pkgLog.Logger) Handler {
	return &handler{l: l}
}
