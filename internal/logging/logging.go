// Package logging sets up the shared zap logger. Inside GitHub Actions
// the encoder emits workflow commands so messages surface as CI
// annotations; everywhere else it falls back to a plain console encoder.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the package-global sugared logger. It starts as a no-op so
// code paths that log before Initialize runs cannot panic.
var Logger *zap.SugaredLogger

func init() {
	Logger = zap.NewNop().Sugar()
}

// Initialize builds the global logger. verbose lowers the level to Debug,
// which inside GitHub Actions maps to ::debug:: lines that stay hidden
// unless step debugging is enabled.
func Initialize(verbose bool) {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	var encoder zapcore.Encoder
	if runningInGitHubActions() {
		encoder = newWorkflowEncoder()
	} else {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.TimeKey = "" // build logs carry their own timestamps
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)
	Logger = zap.New(core).Sugar()
}

func runningInGitHubActions() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}
