package domain

import "fmt"

type MalformedRecordError struct {
	Index int
	Field string
}

func (e MalformedRecordError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("Malformed notification: missing %s", e.Field)
	}

	return fmt.Sprintf("Malformed notification record %d: missing %s", e.Index, e.Field)
}
