//go:build gogl

package app

import (
	"dasa.cc/dlwin/internal/config"
	"dasa.cc/dlwin/nui"
	"dasa.cc/dlwin/nui/gogl"
	"go.uber.org/zap"
)

func openWindowing(cfg *config.Config, logger *zap.Logger) (nui.Windowing, func(), error) {
	if cfg.Library != "" {
		logger.Warn("library path ignored; glfw is linked at build time", zap.String("lib", cfg.Library))
	}
	logger.Debug("linked glfw", zap.String("version", gogl.Version()))
	return gogl.New(), func() {}, nil
}
