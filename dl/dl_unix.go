//go:build darwin || freebsd || linux

package dl

import (
	"fmt"

	"github.com/ebitengine/purego"
)

type library struct {
	path   string
	handle uintptr
}

// Open loads the shared library at path with all symbols resolved up front.
func Open(path string) (Library, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("dl: open %s: %w", path, err)
	}
	return &library{path: path, handle: handle}, nil
}

func (lib *library) Sym(name string) (uintptr, error) {
	addr, err := purego.Dlsym(lib.handle, name)
	if err != nil {
		return 0, &symbolError{name, err}
	}
	return addr, nil
}

func (lib *library) Close() error { return purego.Dlclose(lib.handle) }

func (lib *library) String() string { return lib.path }
