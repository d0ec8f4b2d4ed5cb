package model

import "strings"

// Strategy selects where exception handlers are attached.
type Strategy string

const (
	// StrategyController attaches exception handlers to the demo controller's routes only.
	StrategyController Strategy = "controller"
	// StrategyGlobal attaches exception handlers to every route.
	StrategyGlobal Strategy = "global"
	// StrategyTable registers no exception handlers; only status declarations and the mapping table apply.
	StrategyTable Strategy = "table"
)

// Valid reports whether s is one of the known strategies.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyController, StrategyGlobal, StrategyTable:
		return true
	}
	return false
}

// Advice reports whether the strategy registers exception handlers at all.
func (s Strategy) Advice() bool {
	return s == StrategyController || s == StrategyGlobal
}

// Global reports whether exception handlers apply to every route rather than one controller.
func (s Strategy) Global() bool {
	return s == StrategyGlobal
}

// Source selects where the mapping table comes from.
type Source string

const (
	SourceCode Source = "code"
	SourceFile Source = "file"
)

// Valid reports whether s is one of the known sources.
func (s Source) Valid() bool {
	return s == SourceCode || s == SourceFile
}

// Profile is the active configuration profile.
type Profile struct {
	Strategy Strategy
	Source   Source
}

// ID is the profile identifier shown to views, e.g. "GLOBAL".
func (p Profile) ID() string {
	return strings.ToUpper(string(p.Strategy))
}

// String lists the active profiles, e.g. "controller, code".
func (p Profile) String() string {
	return string(p.Strategy) + ", " + string(p.Source)
}
