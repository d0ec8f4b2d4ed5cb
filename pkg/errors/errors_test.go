package errors_test

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "errorviews/pkg/errors"
)

type plainErr struct{}

func (*plainErr) Error() string { return "plain" }

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"kinded", pkgErrors.New("SQLException", ""), "SQLException"},
		{"wrapped kinded", fmt.Errorf("ledger: %w", pkgErrors.New("DataAccessException", "boom")), "DataAccessException"},
		{"pointer type", &plainErr{}, "plainErr"},
		{"stdlib sentinel", sql.ErrNoRows, "errorString"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pkgErrors.KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusOf(t *testing.T) {
	err := pkgErrors.New("OrderNotFoundException", "Order 12345 not found",
		pkgErrors.WithStatus(http.StatusNotFound, "No such Order"))

	code, reason, ok := pkgErrors.StatusOf(fmt.Errorf("wrapped: %w", err))
	if !ok || code != http.StatusNotFound || reason != "No such Order" {
		t.Errorf("StatusOf() = %d %q %v", code, reason, ok)
	}

	if _, _, ok := pkgErrors.StatusOf(pkgErrors.New("CustomException", "x")); ok {
		t.Errorf("expected no status on an unbound kind")
	}

	code, _, ok = pkgErrors.StatusOf(pkgErrors.ErrTooManyRequests)
	if !ok || code != http.StatusTooManyRequests {
		t.Errorf("HTTPError should carry its own status, got %d %v", code, ok)
	}
}

func TestErrorString(t *testing.T) {
	cause := errors.New("disk full")
	err := pkgErrors.New("DatabaseException", "Database not found: info.db", pkgErrors.WithCause(cause))

	if got := err.Error(); got != "DatabaseException: Database not found: info.db: disk full" {
		t.Errorf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected Unwrap to expose the cause")
	}
	if got := pkgErrors.New("SQLException", "").Error(); got != "SQLException" {
		t.Errorf("unexpected Error() without message: %q", got)
	}
	if got := pkgErrors.MessageOf(err); got != "Database not found: info.db" {
		t.Errorf("unexpected MessageOf(): %q", got)
	}
}
