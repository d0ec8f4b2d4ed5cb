package resolver

import (
	"time"

	"errorviews/internal/model"
)

// Status is an HTTP status code with an optional reason phrase.
type Status struct {
	Code   int
	Reason string
}

// ErrorRecord is one failure raised while handling a request. It lives for that request only.
type ErrorRecord struct {
	Kind      model.Kind
	Message   string
	Status    *Status // set when the kind is bound to a fixed status
	Path      string
	Timestamp time.Time
	Err       error
}

// ResolutionResult is the outcome of resolving one ErrorRecord.
// Handled=false means the caller renders its own default error view.
type ResolutionResult struct {
	Handled     bool
	Status      Status
	View        string
	Diagnostics map[string]any
}

// ResolveInput is the input of UseCase.Resolve.
type ResolveInput struct {
	Record ErrorRecord
	// Advice is true when exception handlers are in scope for the failing route.
	Advice bool
}

// Mapping is one mapping-table entry.
type Mapping struct {
	Kind model.Kind `yaml:"kind" json:"kind"`
	View string     `yaml:"view" json:"view"`
}
