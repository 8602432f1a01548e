package ai

import "sync/atomic"

// debugLoggingEnabled gates per-fish steering logs. Steering runs for every
// fish every frame, so the check has to be cheaper than slog's level lookup.
var debugLoggingEnabled atomic.Bool

// EnableDebugLogging switches steering debug logs on or off. The host calls
// it once after reading the configured log level.
func EnableDebugLogging(enabled bool) {
	debugLoggingEnabled.Store(enabled)
}

// IsDebugEnabled guards expensive steering logs:
//
//	if ai.IsDebugEnabled() {
//	    slog.Debug("retarget", "target", w.target)
//	}
func IsDebugEnabled() bool {
	return debugLoggingEnabled.Load()
}
