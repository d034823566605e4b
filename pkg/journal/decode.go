package journal

import (
	"fmt"

	"github.com/valyala/fastjson"

	"github.com/modoterra/jrnlvw/pkg/core"
)

// DecodeError describes a line that could not be turned into an entry.
// It is recoverable: the line is skipped and reading continues.
type DecodeError struct {
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decoder converts journal export JSON lines into entries. A Decoder reuses
// its parser and must not be shared between goroutines.
type Decoder struct {
	parser fastjson.Parser
}

// Decode parses one line. Schema keys must hold JSON strings or null;
// keys outside the schema are ignored whatever their type.
func (d *Decoder) Decode(line []byte) (core.Entry, error) {
	var e core.Entry

	v, err := d.parser.ParseBytes(line)
	if err != nil {
		return e, err
	}
	obj, err := v.Object()
	if err != nil {
		return e, err
	}

	var typeErr error
	obj.Visit(func(key []byte, val *fastjson.Value) {
		if typeErr != nil {
			return
		}
		field := e.Field(string(key))
		if field == nil {
			return
		}
		switch val.Type() {
		case fastjson.TypeString:
			*field = string(val.GetStringBytes())
		case fastjson.TypeNull:
		default:
			typeErr = fmt.Errorf("field %s: want string, got %s", key, val.Type())
		}
	})
	if typeErr != nil {
		return core.Entry{}, typeErr
	}
	return e, nil
}

// Decode parses a single line with a throwaway Decoder.
func Decode(line []byte) (core.Entry, error) {
	var d Decoder
	return d.Decode(line)
}
