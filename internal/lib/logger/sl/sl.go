package sl

import "log/slog"

// Err returns an slog attribute carrying the error message.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
