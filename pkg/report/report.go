package report

import (
	"fmt"
	"log/slog"

	"github.com/modoterra/jrnlvw/pkg/core"
	"github.com/modoterra/jrnlvw/pkg/filter"
	"github.com/modoterra/jrnlvw/pkg/format"
)

// Session holds the records of one boot in arrival order.
type Session struct {
	Boot    string
	Records []format.Record
}

// Report groups formatted records by boot. Boots keep the order they were
// seeded in; records keep the order of the input file.
type Report struct {
	File  string
	Total int

	sessions []Session
	index    map[string]int
}

// New creates an empty report with one (possibly empty) session per boot.
// total is the number of entries decoded from file.
func New(file string, total int, boots []string) *Report {
	r := &Report{
		File:     file,
		Total:    total,
		sessions: make([]Session, 0, len(boots)),
		index:    make(map[string]int, len(boots)),
	}
	for _, b := range boots {
		if _, ok := r.index[b]; ok {
			continue
		}
		r.index[b] = len(r.sessions)
		r.sessions = append(r.sessions, Session{Boot: b})
	}
	return r
}

// Add appends rec to its boot. Records for boots the report was not seeded
// with are dropped and false is returned.
func (r *Report) Add(rec format.Record) bool {
	i, ok := r.index[rec.Boot]
	if !ok {
		return false
	}
	r.sessions[i].Records = append(r.sessions[i].Records, rec)
	return true
}

// Sessions returns the sessions in report order.
func (r *Report) Sessions() []Session {
	return r.sessions
}

// Session returns the session for boot.
func (r *Report) Session(boot string) (Session, bool) {
	i, ok := r.index[boot]
	if !ok {
		return Session{}, false
	}
	return r.sessions[i], true
}

// Build filters and formats entries into a report. index is the boot list
// discovered in the file. A malformed field in any accepted entry aborts
// the build and no report is returned.
func Build(file string, entries []core.Entry, spec *filter.Spec, index []string, logger *slog.Logger) (*Report, error) {
	engine := filter.NewEngine(spec, index, logger)
	r := New(file, len(entries), engine.Sessions())

	for _, e := range entries {
		ok, err := engine.Accepts(e)
		if err != nil {
			return nil, fmt.Errorf("format log entries: %w", err)
		}
		if !ok {
			continue
		}
		rec, err := format.FromEntry(e, logger)
		if err != nil {
			return nil, fmt.Errorf("format log entries: %w", err)
		}
		r.Add(rec)
	}
	return r, nil
}
