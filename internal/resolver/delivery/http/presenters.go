package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"errorviews/internal/middleware"
	"errorviews/internal/model"
	"errorviews/internal/resolver"
	pkgErrors "errorviews/pkg/errors"
	pkgResponse "errorviews/pkg/response"
)

// --- Response DTOs ---

type exceptionResp struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func newExceptionResp(err error) exceptionResp {
	return exceptionResp{
		Kind:    pkgErrors.KindOf(err),
		Message: pkgErrors.MessageOf(err),
	}
}

type mappingResp struct {
	Kind string `json:"kind"`
	View string `json:"view"`
}

type mappingsResp struct {
	Profile     any           `json:"profile,omitempty"`
	Profiles    any           `json:"profiles,omitempty"`
	Timestamp   any           `json:"timestamp,omitempty"`
	RequestID   any           `json:"request_id,omitempty"`
	SwitchState string        `json:"switch_state"`
	Mappings    []mappingResp `json:"mappings"`
}

// newMappingsResp lists mappings with the request attributes. switchState is the live
// value, not the one recorded at request start.
func newMappingsResp(attrs map[string]any, switchState string, mappings []resolver.Mapping) mappingsResp {
	out := mappingsResp{
		Profile:     attrs[model.AttrProfile],
		Profiles:    attrs[model.AttrProfiles],
		Timestamp:   attrs[model.AttrTimestamp],
		RequestID:   attrs[model.AttrRequestID],
		SwitchState: switchState,
		Mappings:    make([]mappingResp, 0, len(mappings)),
	}
	for _, m := range mappings {
		out.Mappings = append(out.Mappings, mappingResp{Kind: m.Kind.String(), View: m.View})
	}
	return out
}

// presentDiagnostics makes diagnostics safe to encode: errors become {kind, message}
// and times use the response datetime format.
func presentDiagnostics(diagnostics map[string]any) map[string]any {
	out := make(map[string]any, len(diagnostics))
	for k, v := range diagnostics {
		switch val := v.(type) {
		case error:
			out[k] = newExceptionResp(val)
		case time.Time:
			out[k] = pkgResponse.DateTime(val)
		default:
			out[k] = v
		}
	}
	return out
}

// --- Rendering ---

type renderer struct {
	c *gin.Context
}

func response(c *gin.Context) renderer {
	return renderer{c: c}
}

// model merges the request attributes, the switch state and the diagnostics.
// Diagnostics win on a name clash.
func (r renderer) model(diagnostics map[string]any) map[string]any {
	attrs := middleware.WithSwitchState(r.c, middleware.Attributes(r.c))
	for k, v := range presentDiagnostics(diagnostics) {
		attrs[k] = v
	}
	return attrs
}

func (r renderer) status(st resolver.Status) {
	pkgResponse.Status(r.c, st.Code, st.Reason, r.model(nil))
}

func (r renderer) view(code int, view string, diagnostics map[string]any) {
	pkgResponse.View(r.c, code, view, r.model(diagnostics))
}
