package model

// Logical view names.
const (
	ViewIndex            = "index"
	ViewError            = "error"
	ViewDefaultErrorPage = "defaultErrorPage"
	ViewDatabaseError    = "databaseError"
	ViewDatabaseExc      = "databaseException"
	ViewCreditCardError  = "creditCardError"
	ViewSupport          = "support"
	ViewUnannotated      = "unannotated"
	ViewNoHandler        = "no-handler"
	ViewDemo5            = "demo5"
)

// Model attribute names exposed to views.
const (
	AttrException   = "exception"
	AttrURL         = "url"
	AttrTimestamp   = "timestamp"
	AttrProfile     = "profile"
	AttrProfiles    = "profiles"
	AttrSwitchState = "switch_state"
	AttrRequestID   = "request_id"
	AttrStatus      = "status"
)

// Switch states shown to views.
const (
	SwitchOn  = "on"
	SwitchOff = "off"
)

// SwitchState renders an enabled flag the way views show it.
func SwitchState(enabled bool) string {
	if enabled {
		return SwitchOn
	}
	return SwitchOff
}
