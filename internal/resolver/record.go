package resolver

import (
	"time"

	"errorviews/internal/model"
	pkgErrors "errorviews/pkg/errors"
)

// NewErrorRecord captures err as raised for the request at path.
func NewErrorRecord(err error, path string, at time.Time) ErrorRecord {
	rec := ErrorRecord{
		Kind:      model.Kind(pkgErrors.KindOf(err)),
		Message:   pkgErrors.MessageOf(err),
		Path:      path,
		Timestamp: at,
		Err:       err,
	}
	if code, reason, ok := pkgErrors.StatusOf(err); ok {
		rec.Status = &Status{Code: code, Reason: reason}
	}
	return rec
}
