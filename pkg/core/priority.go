package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/coreos/go-systemd/v22/journal"
)

// MaxLevel is the least severe syslog level (debug).
const MaxLevel = uint64(journal.PriDebug)

var levelNames = map[string]journal.Priority{
	"emerg":   journal.PriEmerg,
	"alert":   journal.PriAlert,
	"crit":    journal.PriCrit,
	"err":     journal.PriErr,
	"warning": journal.PriWarning,
	"notice":  journal.PriNotice,
	"info":    journal.PriInfo,
	"debug":   journal.PriDebug,
}

// ParseLevel accepts a decimal level or a syslog level name as understood by
// journalctl -p. Numeric values are returned unclamped.
func ParseLevel(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return n, nil
	}
	if p, ok := levelNames[strings.ToLower(s)]; ok {
		return uint64(p), nil
	}
	return 0, fmt.Errorf("invalid priority %q: want 0-7 or one of emerg, alert, crit, err, warning, notice, info, debug", s)
}

// LevelName returns the syslog name of a level, or its decimal text when
// it is outside 0-7.
func LevelName(level uint64) string {
	for name, p := range levelNames {
		if uint64(p) == level {
			return name
		}
	}
	return strconv.FormatUint(level, 10)
}

// EntryPriority parses the PRIORITY field of an entry. The field must be
// present; a malformed value is a FieldError.
func EntryPriority(e Entry) (uint64, error) {
	n, err := strconv.ParseUint(e.Priority, 10, 32)
	if err != nil {
		return 0, &FieldError{Field: FieldPriority, Value: e.Priority, Err: err}
	}
	return n, nil
}
