package logger

import (
	"github.com/rollbar/rollbar-go"
	"github.com/rs/zerolog"
)

// RollbarConfig identifies the deployment in Rollbar.
type RollbarConfig struct {
	Token   string
	Env     string
	Host    string
	Version string
}

// RollbarHook forwards error level events (and worse) to Rollbar.
type RollbarHook struct {
	report func(level string, msg string)
}

// NewRollbarHook configures the global Rollbar client. It returns nil when no token is set.
func NewRollbarHook(cfg RollbarConfig) *RollbarHook {
	if cfg.Token == "" {
		return nil
	}
	rollbar.SetToken(cfg.Token)
	rollbar.SetEnvironment(cfg.Env)
	rollbar.SetServerHost(cfg.Host)
	rollbar.SetCodeVersion(cfg.Version)
	return &RollbarHook{report: func(level, msg string) { rollbar.Log(level, msg) }}
}

// Run implements zerolog.Hook.
func (h *RollbarHook) Run(_ *zerolog.Event, level zerolog.Level, msg string) {
	if h == nil || level < zerolog.ErrorLevel || level == zerolog.NoLevel || level == zerolog.Disabled {
		return
	}
	switch level {
	case zerolog.FatalLevel, zerolog.PanicLevel:
		h.report(rollbar.CRIT, msg)
	default:
		h.report(rollbar.ERR, msg)
	}
}

// Flush waits for queued reports; call it before exiting.
func Flush() {
	rollbar.Wait()
}
