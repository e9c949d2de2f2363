// Package dl locates and opens native shared libraries.
package dl

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNotFound is returned by Find when no candidate path exists.
var ErrNotFound = errors.New("dl: library not found")

// Library is an opened shared library.
type Library interface {
	// Sym returns the address of the named symbol or an error naming it.
	Sym(name string) (uintptr, error)
	Close() error
}

// StatFunc reports file info for name; os.Stat is used when nil.
type StatFunc func(name string) (fs.FileInfo, error)

// Name returns the platform file name of library base, such as
// libglfw3.so for base glfw3 on linux.
func Name(goos, base string) string {
	switch goos {
	case "windows":
		return base + ".dll"
	case "darwin":
		return "lib" + base + ".dylib"
	default:
		return "lib" + base + ".so"
	}
}

// Candidates returns the paths guessed for name on goos, in search order.
func Candidates(goos, name string) []string {
	var dirs []string
	switch goos {
	case "windows":
		// resolved by the loader against the executable's directory and PATH
		return []string{name}
	case "darwin":
		dirs = []string{"/usr/local/lib", "/opt/homebrew/lib", "/usr/lib"}
	default:
		dirs = []string{
			"/usr/lib",
			"/usr/lib64",
			"/usr/local/lib",
			"/usr/lib/x86_64-linux-gnu",
			"/usr/lib/aarch64-linux-gnu",
		}
	}
	paths := make([]string, len(dirs))
	for i, dir := range dirs {
		paths[i] = filepath.Join(dir, name)
	}
	return paths
}

// Find returns the first candidate that is a regular file.
func Find(candidates []string, stat StatFunc) (string, error) {
	if stat == nil {
		stat = os.Stat
	}
	if len(candidates) == 0 {
		return "", ErrNotFound
	}
	for _, path := range candidates {
		if fi, err := stat(path); err == nil && fi.Mode().IsRegular() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: could not find library at: %s", ErrNotFound, candidates[len(candidates)-1])
}

type symbolError struct {
	name string
	err  error
}

func (e *symbolError) Error() string { return fmt.Sprintf("dl: symbol %q: %v", e.name, e.err) }
func (e *symbolError) Unwrap() error { return e.err }
