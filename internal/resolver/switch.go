package resolver

import "strings"

// SwitchOn parses a toggle action. Only "on", in any case, enables; anything else disables.
func SwitchOn(action string) bool {
	return strings.EqualFold(action, "on")
}
