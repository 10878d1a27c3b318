package floatmenu

import (
	"log/slog"
	"os"
)

// menuLogLevel controls the log level for menu debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var menuLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		menuLogLevel.Set(slog.LevelDebug)
	} else {
		menuLogLevel.Set(slog.LevelInfo)
	}
}

// menuVerbose returns true if debug logging is enabled.
func menuVerbose() bool {
	return menuLogLevel.Level() <= slog.LevelDebug
}

// menuLogger is the package logger.
var menuLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: menuLogLevel}))
