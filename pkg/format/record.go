package format

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/modoterra/jrnlvw/pkg/core"
)

// TimestampLayout renders realtime timestamps, always in UTC.
const TimestampLayout = "2006-01-02 15:04:05"

// Record is the display projection of one accepted entry. It holds copies
// only and keeps no reference to the source entry.
type Record struct {
	Boot      string `json:"boot"`
	Seq       string `json:"seq"`
	Timestamp string `json:"datetime"`
	Priority  string `json:"priority"`
	Unit      string `json:"unit"`
	Message   string `json:"message"`
}

// FromEntry formats e. Missing fields become core.NotAvailable; a malformed
// cursor or timestamp is returned as a *core.FieldError.
func FromEntry(e core.Entry, logger *slog.Logger) (Record, error) {
	if e.Cursor == "" {
		logger.Warn("unable to get cursor string for entry", "boot", e.BootID)
	}
	seq, err := core.SequenceNumber(e.Cursor)
	if err != nil {
		return Record{}, err
	}

	ts, err := Realtime(e.RealtimeTS)
	if err != nil {
		return Record{}, err
	}

	return Record{
		Boot:      e.BootID,
		Seq:       seq,
		Timestamp: ts,
		Priority:  orNotAvailable(e.Priority),
		Unit:      core.UnitWithPID(e),
		Message:   orNotAvailable(e.Message),
	}, nil
}

// Realtime converts a __REALTIME_TIMESTAMP value (microseconds since the
// epoch) into TimestampLayout. Sub-second precision is dropped.
func Realtime(us string) (string, error) {
	if us == "" {
		return core.NotAvailable, nil
	}
	n, err := strconv.ParseInt(us, 10, 64)
	if err != nil {
		return "", &core.FieldError{Field: core.FieldRealtime, Value: us, Err: err}
	}
	return time.Unix(n/1000000, 0).UTC().Format(TimestampLayout), nil
}

func orNotAvailable(s string) string {
	if s == "" {
		return core.NotAvailable
	}
	return s
}
