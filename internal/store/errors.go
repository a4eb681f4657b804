package store

import (
	"fmt"

	"github.com/ATenderholt/rainbow-filedata/internal/domain"
)

type MarshalError struct {
	entry domain.FileEntry
	base  error
}

func (e MarshalError) Error() string {
	return fmt.Sprintf("Unable to marshal %+v to DynamoDB attributes: %v", e.entry, e.base)
}

func (e MarshalError) Unwrap() error {
	return e.base
}

type PutError struct {
	table string
	id    string
	base  error
}

func (e PutError) Error() string {
	return fmt.Sprintf("Unable to put item %s into table %s: %v", e.id, e.table, e.base)
}

func (e PutError) Unwrap() error {
	return e.base
}
