package dl

import (
	"fmt"

	"golang.org/x/sys/windows"
)

type library struct{ dll *windows.DLL }

// Open loads the DLL at path.
func Open(path string) (Library, error) {
	dll, err := windows.LoadDLL(path)
	if err != nil {
		return nil, fmt.Errorf("dl: open %s: %w", path, err)
	}
	return &library{dll}, nil
}

func (lib *library) Sym(name string) (uintptr, error) {
	proc, err := lib.dll.FindProc(name)
	if err != nil {
		return 0, &symbolError{name, err}
	}
	return proc.Addr(), nil
}

func (lib *library) Close() error { return lib.dll.Release() }

func (lib *library) String() string { return lib.dll.Name }
