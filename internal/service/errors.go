package service

import "fmt"

type StorageWriteError struct {
	index int
	id    string
	base  error
}

func (e StorageWriteError) Error() string {
	return fmt.Sprintf("Unable to store entry %s from record %d: %v", e.id, e.index, e.base)
}

func (e StorageWriteError) Unwrap() error {
	return e.base
}

func (e StorageWriteError) ID() string {
	return e.id
}
