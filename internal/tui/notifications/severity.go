package notifications

import "github.com/thenoetrevino/admitdesk/internal/tui/state"

// Severity represents the severity level of a notification
type Severity int

const (
	Info Severity = iota
	Warning
	Error
	Success
)

// FromLevel maps a dashboard notification level ("info", "warning", "success")
// to a Severity. Unknown levels render as Info.
func FromLevel(level string) Severity {
	switch level {
	case "warning":
		return Warning
	case "error":
		return Error
	case "success":
		return Success
	}
	return Info
}

// FromToast maps a toast level to a Severity.
func FromToast(level state.NotificationLevel) Severity {
	switch level {
	case state.LevelWarning:
		return Warning
	case state.LevelError:
		return Error
	}
	return Info
}
