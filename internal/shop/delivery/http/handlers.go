package http

import (
	"io/fs"

	"github.com/gin-gonic/gin"

	"errorviews/internal/shop"
)

// raise hands err to the resolving middlewares and stops the chain.
func raise(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// OrderNotFound godoc
// @Summary     Raise OrderNotFoundException
// @Description The error is bound to 404 "No such Order".
// @Tags        Shop
// @Produce     json
// @Failure     404 {object} response.Resp
// @Router      /orderNotFound [GET]
func (h *handler) OrderNotFound(c *gin.Context) {
	h.l.Infof(c.Request.Context(), "Throw OrderNotFoundException for unknown order 12345")
	raise(c, shop.NewOrderNotFoundError("12345"))
}

// DataIntegrityViolation godoc
// @Summary     Raise DataIntegrityViolationException
// @Tags        Shop
// @Produce     json
// @Failure     409 {object} response.Resp
// @Router      /dataIntegrityViolation [GET]
func (h *handler) DataIntegrityViolation(c *gin.Context) {
	h.l.Infof(c.Request.Context(), "Throw DataIntegrityViolationException")
	raise(c, shop.NewDataIntegrityViolationError("Duplicate id"))
}

// DatabaseError1 godoc
// @Summary     Raise SQLException
// @Tags        Shop
// @Produce     json
// @Failure     500 {object} response.Resp
// @Router      /databaseError1 [GET]
func (h *handler) DatabaseError1(c *gin.Context) {
	h.l.Infof(c.Request.Context(), "Throw SQLException")
	raise(c, shop.NewSQLError())
}

// DatabaseError2 godoc
// @Summary     Raise DataAccessException
// @Tags        Shop
// @Produce     json
// @Failure     500 {object} response.Resp
// @Router      /databaseError2 [GET]
func (h *handler) DatabaseError2(c *gin.Context) {
	h.l.Infof(c.Request.Context(), "Throw DataAccessException")
	raise(c, shop.NewDataAccessError("Error accessing database"))
}

// InvalidCreditCard godoc
// @Summary     Raise InvalidCreditCardException
// @Description Rendered by the mapping table when it is switched on.
// @Tags        Shop
// @Produce     json
// @Failure     500 {object} response.Resp
// @Router      /invalidCreditCard [GET]
func (h *handler) InvalidCreditCard(c *gin.Context) {
	h.l.Infof(c.Request.Context(), "Throw InvalidCreditCardException")
	raise(c, shop.NewInvalidCreditCardError("1234123412341234"))
}

// DatabaseException godoc
// @Summary     Raise DatabaseException
// @Description Rendered by the mapping table when it is switched on.
// @Tags        Shop
// @Produce     json
// @Failure     500 {object} response.Resp
// @Router      /databaseException [GET]
func (h *handler) DatabaseException(c *gin.Context) {
	h.l.Infof(c.Request.Context(), "Throw DatabaseException")
	raise(c, shop.NewDatabaseError("info.db", fs.ErrNotExist))
}

// CustomException godoc
// @Summary     Raise CustomException
// @Description Rendered as the support view with exception, url and timestamp.
// @Tags        Shop
// @Produce     json
// @Failure     500 {object} response.Resp
// @Router      /customException [GET]
func (h *handler) CustomException(c *gin.Context) {
	h.l.Infof(c.Request.Context(), "Throw CustomException")
	raise(c, shop.NewCustomError("Custom exception occurred"))
}

// UnhandledException godoc
// @Summary     Raise UnhandledException
// @Description Nothing handles it: the default error view is rendered.
// @Tags        Shop
// @Produce     json
// @Failure     500 {object} response.Resp
// @Router      /unhandledException [GET]
func (h *handler) UnhandledException(c *gin.Context) {
	h.l.Infof(c.Request.Context(), "Throw UnhandledException")
	raise(c, shop.NewUnhandledError("Some exception occurred"))
}
