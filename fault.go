package arenax

import (
	"fmt"
	"log/slog"
)

// FaultReporter receives the arena's fire-and-forget fault side calls.
// Crashf reports unrecoverable misconfiguration and must not return.
type FaultReporter interface {
	Crashf(format string, args ...any)
	Warnf(format string, args ...any)
}

// slogFault is the default reporter: structured log output, then a panic to
// halt the process. Misconfiguration caught at Init is a deploy-time
// contract violation, not a runtime condition, so there is nothing to
// recover to.
type slogFault struct{}

func (slogFault) Crashf(format string, args ...any) {
	msg := "arenax: " + fmt.Sprintf(format, args...)
	slog.Error(msg)
	panic(msg)
}

func (slogFault) Warnf(format string, args ...any) {
	slog.Warn("arenax: " + fmt.Sprintf(format, args...))
}
