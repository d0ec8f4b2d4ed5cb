package resolver

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Resolve decides status, view and diagnostics for a failure. It never fails.
	Resolve(ctx context.Context, input ResolveInput) ResolutionResult
	// SetEnabled switches mapping-table resolution on or off.
	SetEnabled(ctx context.Context, on bool)
	Enabled() bool
	// Mappings lists the mapping table in configuration order.
	Mappings() []Mapping
}

// State is the process-wide switch for mapping-table resolution.
// Concurrent writers race on a single flag: the last write wins.
type State interface {
	Enabled() bool
	SetEnabled(on bool)
}
