// Package logging builds the application's zap logger.
package logging

import (
	"go.uber.org/zap"
)

// Setup builds a logger: development config with debug level when debug is
// set, production config otherwise. The returned logger also replaces zap's
// globals.
func Setup(debug bool, appName string) (*zap.Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.InitialFields = map[string]interface{}{
		"appName": appName,
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}
