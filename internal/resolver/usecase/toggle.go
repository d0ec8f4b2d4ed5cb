package usecase

import (
	"context"

	"errorviews/internal/model"
	"errorviews/internal/resolver"
)

// SetEnabled switches mapping-table resolution. Setting the current value again is a no-op.
func (uc *implUseCase) SetEnabled(ctx context.Context, on bool) {
	uc.state.SetEnabled(on)
	uc.l.Infof(ctx, "internal.resolver.usecase.SetEnabled: mapping table resolution is %s", model.SwitchState(on))
}

func (uc *implUseCase) Enabled() bool {
	return uc.state.Enabled()
}

func (uc *implUseCase) Mappings() []resolver.Mapping {
	return uc.table.Mappings()
}
