package log

// ZapConfig holds the logger settings read from the logger config section.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

const (
	ModeProduction = "production"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

type ctxKey string

const requestIDKey ctxKey = "request_id"
