package notify

import (
	"context"
	"log/slog"
)

// Severity classifies a notice the way the desk UI colors it.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Notice is a user-visible message. Icon is a presentation hint the core
// passes through untouched.
type Notice struct {
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Icon     string   `json:"icon"`
	Severity Severity `json:"severity"`
}

// Icon hints used by the desk, matching the integration layer's set.
const (
	IconCheck   = "fa fa-check"
	IconWarning = "fa fa-warning"
	IconError   = "fa fa-times"
)

// Notifier is a fire-and-forget sink for user-visible messages.
// Delivery is best-effort; callers never fail a workflow step on it.
type Notifier interface {
	Notify(ctx context.Context, n Notice)
}

// Success builds a success notice.
func Success(title, message string) Notice {
	return Notice{Title: title, Message: message, Icon: IconCheck, Severity: SeveritySuccess}
}

// Warning builds a warning notice.
func Warning(title, message string) Notice {
	return Notice{Title: title, Message: message, Icon: IconWarning, Severity: SeverityWarning}
}

// Danger builds an error notice.
func Danger(title, message string) Notice {
	return Notice{Title: title, Message: message, Icon: IconError, Severity: SeverityDanger}
}

// LogNotifier writes notices to the structured log. It is the default
// sink until a push channel to the desk UI is wired.
type LogNotifier struct {
	Log *slog.Logger
}

func (l *LogNotifier) Notify(ctx context.Context, n Notice) {
	log := l.Log
	if log == nil {
		log = slog.Default()
	}
	switch n.Severity {
	case SeverityDanger:
		log.Error("notice", "title", n.Title, "message", n.Message)
	case SeverityWarning:
		log.Warn("notice", "title", n.Title, "message", n.Message)
	default:
		log.Info("notice", "title", n.Title, "message", n.Message)
	}
}
