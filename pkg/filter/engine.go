package filter

import (
	"log/slog"

	"github.com/modoterra/jrnlvw/pkg/core"
)

// Engine decides which entries reach the report.
type Engine struct {
	spec     *Spec
	sessions []string
	accepted map[string]bool
	logger   *slog.Logger
}

// NewEngine seeds the accepted boots from the Spec's boot filter, or from
// index (the boots discovered in the file) when no filter is set.
func NewEngine(spec *Spec, index []string, logger *slog.Logger) *Engine {
	sessions := spec.Boots()
	if len(sessions) == 0 {
		sessions = append([]string(nil), index...)
	}

	accepted := make(map[string]bool, len(sessions))
	for _, id := range sessions {
		accepted[id] = true
	}

	if spec.TimeOfDay().Set || spec.Dates().Set {
		logger.Warn("time and date filters are parsed but not applied")
	}

	return &Engine{spec: spec, sessions: sessions, accepted: accepted, logger: logger}
}

// Sessions returns the accepted boot ids in report order.
func (e *Engine) Sessions() []string {
	return append([]string(nil), e.sessions...)
}

// Accepts reports whether entry passes every filter. The only error is a
// *core.FieldError for a malformed PRIORITY, which aborts the run.
func (e *Engine) Accepts(entry core.Entry) (bool, error) {
	if entry.BootID == "" {
		e.logger.Warn("unable to format log entry without boot id, ignoring", "cursor", entry.Cursor)
		return false, nil
	}
	if !e.accepted[entry.BootID] {
		return false, nil
	}

	unit, ok := core.ResolveUnit(entry)
	if !ok {
		e.logger.Warn("unable to get syslog identifier (unit name) for log entry", "cursor", entry.Cursor)
	}
	if e.spec.KernelOnly() && unit != core.KernelUnit {
		return false, nil
	}
	if !e.spec.MatchesUnit(unit) {
		return false, nil
	}

	if entry.Priority == "" {
		e.logger.Warn("unable to get log level for entry", "cursor", entry.Cursor)
		return true, nil
	}
	level, err := core.EntryPriority(entry)
	if err != nil {
		return false, err
	}
	return level <= e.spec.MaxPriority(), nil
}
