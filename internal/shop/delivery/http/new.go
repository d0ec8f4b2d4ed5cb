package http

import (
	"github.com/gin-gonic/gin"

	"errorviews/pkg/log"
)

// Handler is the demo controller: every route raises one kind of error.
type Handler interface {
	OrderNotFound(c *gin.Context)
	DataIntegrityViolation(c *gin.Context)
	DatabaseError1(c *gin.Context)
	DatabaseError2(c *gin.Context)
	InvalidCreditCard(c *gin.Context)
	DatabaseException(c *gin.Context)
	CustomException(c *gin.Context)
	UnhandledException(c *gin.Context)
}

type handler struct {
	l log.Logger
}

// New creates the demo controller.
func New(l log.Logger) Handler {
	return &handler{l: l}
}
