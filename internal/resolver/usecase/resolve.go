package usecase

import (
	"context"
	"net/http"

	"errorviews/internal/model"
	"errorviews/internal/resolver"
)

// Resolve applies, in order: status-bound kinds, exception handlers (when in scope),
// then the mapping table (when switched on). Anything left is unhandled.
func (uc *implUseCase) Resolve(ctx context.Context, input resolver.ResolveInput) resolver.ResolutionResult {
	rec := input.Record

	if st, ok := uc.boundStatus(rec); ok {
		uc.l.Errorf(ctx, "internal.resolver.usecase.Resolve: request %s raised %s, status %d", rec.Path, rec.Kind, st.Code)
		return resolver.ResolutionResult{
			Handled:     true,
			Status:      st,
			Diagnostics: map[string]any{},
		}
	}

	if input.Advice {
		if view, ok := uc.policy.ViewHandlers[rec.Kind]; ok {
			uc.l.Errorf(ctx, "internal.resolver.usecase.Resolve: request %s raised %s, view %s", rec.Path, rec.Kind, view)
			return resolver.ResolutionResult{
				Handled:     true,
				Status:      serverError(),
				View:        view,
				Diagnostics: map[string]any{},
			}
		}

		if _, ok := uc.policy.SupportKinds[rec.Kind]; ok {
			uc.l.Errorf(ctx, "internal.resolver.usecase.Resolve: request %s raised %v", rec.Path, rec.Err)
			return resolver.ResolutionResult{
				Handled: true,
				Status:  serverError(),
				View:    uc.policy.SupportView,
				Diagnostics: map[string]any{
					model.AttrException: rec.Err,
					model.AttrURL:       rec.Path,
					model.AttrTimestamp: rec.Timestamp,
				},
			}
		}
	}

	if !uc.state.Enabled() {
		return unhandled()
	}

	view, ok := uc.table.Lookup(rec.Kind)
	if !ok {
		return unhandled()
	}

	code := uc.policy.ViewStatus(view)
	uc.l.Errorf(ctx, "internal.resolver.usecase.Resolve: request %s raised %s, mapped to view %s", rec.Path, rec.Kind, view)
	return resolver.ResolutionResult{
		Handled: true,
		Status:  resolver.Status{Code: code, Reason: http.StatusText(code)},
		View:    view,
		Diagnostics: map[string]any{
			uc.policy.ExceptionAttribute: rec.Err,
		},
	}
}

// boundStatus prefers the status carried by the error over a handler declaration.
func (uc *implUseCase) boundStatus(rec resolver.ErrorRecord) (resolver.Status, bool) {
	if rec.Status != nil && rec.Status.Code > 0 {
		return *rec.Status, true
	}
	return uc.policy.StatusOf(rec.Kind)
}

func serverError() resolver.Status {
	return resolver.Status{
		Code:   http.StatusInternalServerError,
		Reason: http.StatusText(http.StatusInternalServerError),
	}
}

func unhandled() resolver.ResolutionResult {
	return resolver.ResolutionResult{Diagnostics: map[string]any{}}
}
