package model

// Kind names the cause of a failure. Mapping tables and handler declarations are keyed on it.
type Kind string

// Kinds raised by the demo controller and the request pipeline.
const (
	KindOrderNotFound          Kind = "OrderNotFoundException"
	KindDataIntegrityViolation Kind = "DataIntegrityViolationException"
	KindSQL                    Kind = "SQLException"
	KindDataAccess             Kind = "DataAccessException"
	KindInvalidCreditCard      Kind = "InvalidCreditCardException"
	KindDatabase               Kind = "DatabaseException"
	KindCustom                 Kind = "CustomException"
	KindUnhandled              Kind = "UnhandledException"
	KindFilter                 Kind = "FilterException"
	KindPanic                  Kind = "PanicException"
)

func (k Kind) String() string { return string(k) }
