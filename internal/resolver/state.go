package resolver

import "sync/atomic"

type state struct {
	enabled atomic.Bool
}

// NewState returns a State starting at enabled.
func NewState(enabled bool) State {
	s := &state{}
	s.enabled.Store(enabled)
	return s
}

func (s *state) Enabled() bool      { return s.enabled.Load() }
func (s *state) SetEnabled(on bool) { s.enabled.Store(on) }
