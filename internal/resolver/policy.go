package resolver

import (
	"net/http"
	"strings"

	"errorviews/internal/model"
)

// Policy is the static part of resolution: status declarations, exception handlers and
// the mapping-table presentation settings.
type Policy struct {
	// StatusDeclarations bind kinds to a fixed status, consulted before anything else.
	StatusDeclarations map[model.Kind]Status
	// ViewHandlers render a fixed view for a kind, with no details.
	ViewHandlers map[model.Kind]string
	// SupportKinds render SupportView with the exception, url and timestamp.
	SupportKinds map[model.Kind]struct{}
	SupportView  string
	// ExceptionAttribute is the model attribute exposing the error on table views.
	ExceptionAttribute string
	// StatusCodes sets the status of table views by view name, exact or lower-cased.
	// Others get DefaultStatus.
	StatusCodes   map[string]int
	DefaultStatus int
}

// DefaultPolicy returns the handler declarations of the demo controller.
func DefaultPolicy() Policy {
	return Policy{
		StatusDeclarations: map[model.Kind]Status{
			model.KindDataIntegrityViolation: {Code: http.StatusConflict, Reason: "Data integrity violation"},
		},
		ViewHandlers: map[model.Kind]string{
			model.KindSQL:        model.ViewDatabaseError,
			model.KindDataAccess: model.ViewDatabaseError,
		},
		SupportKinds: map[model.Kind]struct{}{
			model.KindCustom: {},
		},
		SupportView:        model.ViewSupport,
		ExceptionAttribute: model.AttrException,
		StatusCodes:        map[string]int{},
		DefaultStatus:      http.StatusInternalServerError,
	}
}

// StatusOf returns the declared status of kind, if any.
func (p Policy) StatusOf(kind model.Kind) (Status, bool) {
	s, ok := p.StatusDeclarations[kind]
	return s, ok
}

// ViewStatus returns the status used to render a table view.
func (p Policy) ViewStatus(view string) int {
	if code, ok := p.StatusCodes[view]; ok && code > 0 {
		return code
	}
	if code, ok := p.StatusCodes[strings.ToLower(view)]; ok && code > 0 {
		return code
	}
	if p.DefaultStatus > 0 {
		return p.DefaultStatus
	}
	return http.StatusInternalServerError
}
