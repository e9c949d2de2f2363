//go:build !gogl

package app

import (
	"fmt"
	"runtime"

	"dasa.cc/dlwin/dl"
	"dasa.cc/dlwin/glfw"
	"dasa.cc/dlwin/internal/config"
	"dasa.cc/dlwin/nui"
	"go.uber.org/zap"
)

// candidates returns the library paths to try, an explicit one first.
func candidates(goos, explicit string) []string {
	paths := dl.Candidates(goos, dl.Name(goos, glfw.Base))
	if explicit != "" {
		paths = append([]string{explicit}, paths...)
	}
	return paths
}

// findLibrary resolves the GLFW library path. An explicit path that does
// not exist is reported and the default guesses are tried after it.
func findLibrary(goos, explicit string, stat dl.StatFunc, logger *zap.Logger) (string, error) {
	path, err := dl.Find(candidates(goos, explicit), stat)
	if err == nil && explicit != "" && path != explicit {
		logger.Warn("library not found, using default",
			zap.String("lib", explicit), zap.String("path", path))
	}
	return path, err
}

func logGLFWError(logger *zap.Logger) func(code int, desc string) {
	return func(code int, desc string) {
		logger.Warn("glfw error", zap.String("code", fmt.Sprintf("%#x", code)), zap.String("desc", desc))
	}
}

func openWindowing(cfg *config.Config, logger *zap.Logger) (nui.Windowing, func(), error) {
	path, err := findLibrary(runtime.GOOS, cfg.Library, nil, logger)
	if err != nil {
		return nil, nil, err
	}
	so, err := dl.Open(path)
	if err != nil {
		return nil, nil, err
	}
	lib, err := glfw.Load(so)
	if err != nil {
		so.Close()
		return nil, nil, err
	}
	logger.Debug("loaded glfw", zap.String("path", path), zap.String("version", lib.Version()))

	lib.OnError(logGLFWError(logger))

	return nui.GLFW(lib), func() { so.Close() }, nil
}
