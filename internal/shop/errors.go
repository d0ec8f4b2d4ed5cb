package shop

import (
	"net/http"

	"errorviews/internal/model"
	pkgErrors "errorviews/pkg/errors"
)

// NewOrderNotFoundError is bound to 404: an unknown order always means Not Found.
func NewOrderNotFoundError(id string) error {
	return pkgErrors.New(string(model.KindOrderNotFound), "Order "+id+" not found",
		pkgErrors.WithStatus(http.StatusNotFound, "No such Order"))
}

func NewDataIntegrityViolationError(message string) error {
	return pkgErrors.New(string(model.KindDataIntegrityViolation), message)
}

func NewSQLError() error {
	return pkgErrors.New(string(model.KindSQL), "")
}

func NewDataAccessError(message string) error {
	return pkgErrors.New(string(model.KindDataAccess), message)
}

func NewInvalidCreditCardError(card string) error {
	return pkgErrors.New(string(model.KindInvalidCreditCard), "Card "+maskCard(card)+" is invalid")
}

// NewDatabaseError reports a missing database file. cause is kept for logs and errors.Is.
func NewDatabaseError(file string, cause error) error {
	return pkgErrors.New(string(model.KindDatabase), "Database not found: "+file,
		pkgErrors.WithCause(cause))
}

func NewCustomError(message string) error {
	return pkgErrors.New(string(model.KindCustom), message)
}

func NewUnhandledError(message string) error {
	return pkgErrors.New(string(model.KindUnhandled), message)
}

// maskCard keeps the last four digits.
func maskCard(card string) string {
	if len(card) <= 4 {
		return card
	}
	masked := make([]byte, len(card))
	for i := range masked {
		masked[i] = '*'
	}
	copy(masked[len(card)-4:], card[len(card)-4:])
	return string(masked)
}
