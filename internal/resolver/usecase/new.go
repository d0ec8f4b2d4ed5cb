package usecase

import (
	"errorviews/internal/model"
	"errorviews/internal/resolver"
	"errorviews/pkg/log"
)

// implUseCase is the private implementation of resolver.UseCase.
type implUseCase struct {
	l      log.Logger
	state  resolver.State
	table  resolver.MappingTable
	policy resolver.Policy
}

// New creates a new resolver UseCase. The table must not change after this call.
func New(l log.Logger, state resolver.State, table resolver.MappingTable, policy resolver.Policy) *implUseCase {
	if policy.ExceptionAttribute == "" {
		policy.ExceptionAttribute = model.AttrException
	}
	if policy.SupportView == "" {
		policy.SupportView = model.ViewSupport
	}
	return &implUseCase{
		l:      l,
		state:  state,
		table:  table,
		policy: policy,
	}
}
