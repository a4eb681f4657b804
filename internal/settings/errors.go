package settings

import "fmt"

type FileError struct {
	path string
	base error
}

func (e FileError) Error() string {
	return fmt.Sprintf("Unable to load configuration from %s: %v", e.path, e.base)
}

func (e FileError) Unwrap() error {
	return e.base
}

type EnvError struct {
	name  string
	value string
	base  error
}

func (e EnvError) Error() string {
	return fmt.Sprintf("Invalid value %q for %s: %v", e.value, e.name, e.base)
}

func (e EnvError) Unwrap() error {
	return e.base
}
