package core

import (
	"strconv"
	"strings"
)

// SequenceNumber extracts the "i=" component of a journal cursor
// ("s=...;i=1a;b=...") and returns it as decimal text.
// An empty cursor yields NotAvailable.
func SequenceNumber(cursor string) (string, error) {
	if cursor == "" {
		return NotAvailable, nil
	}
	for _, part := range strings.Split(cursor, ";") {
		hex, ok := strings.CutPrefix(part, "i=")
		if !ok {
			continue
		}
		n, err := strconv.ParseUint(hex, 16, 64)
		if err != nil {
			return "", &FieldError{Field: FieldCursor, Value: cursor, Err: err}
		}
		return strconv.FormatUint(n, 10), nil
	}
	return "", &FieldError{Field: FieldCursor, Value: cursor, Err: ErrNoSequence}
}
