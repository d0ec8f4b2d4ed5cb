package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "errorviews/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error response. Errors bound to a status use it, everything else is a 400.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	if data == nil {
		data = make(map[string]interface{})
	}

	code := http.StatusBadRequest
	errorCode := 1
	if sc, _, ok := pkgErrors.StatusOf(err); ok {
		code = sc
		errorCode = sc
	}

	c.JSON(code, Resp{
		ErrorCode: errorCode,
		Message:   err.Error(),
		Data:      data,
	})
}

// Status sends a status response with no view: the status line and reason carry the failure.
// data holds request attributes only and is omitted when empty.
func Status(c *gin.Context, code int, reason string, data map[string]any) {
	if reason == "" {
		reason = http.StatusText(code)
	}
	resp := Resp{
		ErrorCode: code,
		Message:   reason,
	}
	if len(data) > 0 {
		resp.Data = data
	}
	c.JSON(code, resp)
}

// View renders a named view with its model.
func View(c *gin.Context, code int, view string, model map[string]any) {
	errorCode := 0
	if code >= http.StatusBadRequest {
		errorCode = code
	}
	c.JSON(code, Resp{
		ErrorCode: errorCode,
		Message:   view,
		Data: ViewData{
			View:  view,
			Model: model,
		},
	})
}
