package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"errorviews/internal/model"
	"errorviews/pkg/log"
	"errorviews/pkg/response"
)

const (
	HeaderRequestID = "X-Request-Id"

	keyRequestID = "request_id"
	keyTimestamp = "request_timestamp"
	keyProfile   = "request_profile"
	keySwitch    = "request_switch_state"
)

// RequestID reuses the caller's X-Request-Id or generates one, and puts it on the
// request context so every log line of the request carries it.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(HeaderRequestID, requestID)
		c.Set(keyRequestID, requestID)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), requestID))
		c.Next()
	}
}

// Diagnostics records the attributes every view receives: profile, request time and the
// switch state as seen when the request started.
func (mw Middleware) Diagnostics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(keyTimestamp, mw.now())
		c.Set(keyProfile, mw.profile)
		if mw.state != nil {
			c.Set(keySwitch, mw.state.Enabled())
		}
		c.Next()
	}
}

// Attributes returns a fresh model holding the request-scoped attributes.
func Attributes(c *gin.Context) map[string]any {
	attrs := map[string]any{}
	if p, ok := c.Get(keyProfile); ok {
		profile := p.(model.Profile)
		attrs[model.AttrProfile] = profile.ID()
		attrs[model.AttrProfiles] = profile.String()
	}
	if ts, ok := c.Get(keyTimestamp); ok {
		attrs[model.AttrTimestamp] = response.DateTime(ts.(time.Time))
	}
	if id := c.GetString(keyRequestID); id != "" {
		attrs[model.AttrRequestID] = id
	}
	return attrs
}

// WithSwitchState adds the switch state recorded at request start to attrs.
func WithSwitchState(c *gin.Context, attrs map[string]any) map[string]any {
	attrs[model.AttrSwitchState] = model.SwitchState(c.GetBool(keySwitch))
	return attrs
}
