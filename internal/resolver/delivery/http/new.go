package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"errorviews/internal/resolver"
	"errorviews/pkg/log"
)

// Handler is the public interface of the resolver HTTP delivery layer.
type Handler interface {
	// Advice resolves errors with exception handlers in scope.
	Advice() gin.HandlerFunc
	// Resolve resolves errors with status declarations and the mapping table only.
	Resolve() gin.HandlerFunc
	// ErrorPage renders the default error view for any error nobody resolved.
	ErrorPage() gin.HandlerFunc
	Recovery() gin.HandlerFunc
	NoRoute(c *gin.Context)

	Toggle(c *gin.Context)
	Mappings(c *gin.Context)
}

type handler struct {
	l           log.Logger
	uc          resolver.UseCase
	defaultView string
	now         func() time.Time
}

// New creates the resolver HTTP handler. defaultView names the fallback error view.
func New(l log.Logger, uc resolver.UseCase, defaultView string) Handler {
	return &handler{
		l:           l,
		uc:          uc,
		defaultView: defaultView,
		now:         time.Now,
	}
}
