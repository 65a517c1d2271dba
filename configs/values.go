package configs

import (
	"errors"
)

// Configurable is a value type read from a fixed config path.
type Configurable interface {
	ConfigPath() string
}

// First decodes the value at path from the first file defining it, or returns
// the zero T when no file does. Other errors panic.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}

// Lookup is First at T's own config path.
func Lookup[T Configurable](loader Loader) T {
	var zero T
	return First[T](loader, zero.ConfigPath())
}
