package filter

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/modoterra/jrnlvw/pkg/config"
	"github.com/modoterra/jrnlvw/pkg/core"
)

const serviceSuffix = ".service"

// Spec is the immutable filter configuration of one run.
type Spec struct {
	maxPriority uint64
	boots       []string
	units       map[string]struct{}
	kernelOnly  bool
	clock       ClockWindow
	dates       DateWindow
	limit       int
}

// NewSpec derives a Spec from the invocation options. Priorities above 7 are
// clamped with a warning; malformed priorities, times and dates fail.
func NewSpec(o *config.Options, logger *slog.Logger) (*Spec, error) {
	s := &Spec{
		maxPriority: core.MaxLevel,
		units:       make(map[string]struct{}),
		kernelOnly:  o.Kernel,
		limit:       o.Number,
	}

	if o.Priority != "" {
		level, err := core.ParseLevel(o.Priority)
		if err != nil {
			return nil, err
		}
		if level > core.MaxLevel {
			logger.Warn("invalid log level, using debug", "priority", level, "default", core.MaxLevel)
			level = core.MaxLevel
		}
		s.maxPriority = level
	}

	for _, b := range o.Boots {
		id := NormalizeBoot(b)
		if !slices.Contains(s.boots, id) {
			s.boots = append(s.boots, id)
		}
	}

	for _, u := range o.Units {
		for _, name := range ExpandUnit(u) {
			s.units[name] = struct{}{}
		}
	}

	var err error
	if s.clock, err = newClockWindow(o.SinceTime, o.UntilTime); err != nil {
		return nil, err
	}
	if s.dates, err = newDateWindow(o.SinceDate, o.UntilDate); err != nil {
		return nil, err
	}

	if s.limit < 0 {
		return nil, fmt.Errorf("number must be >= 0, got %d", s.limit)
	}
	logger.Debug("filter spec",
		"priority", core.LevelName(s.maxPriority),
		"boots", len(s.boots),
		"units", len(s.units),
		"kernel", s.kernelOnly,
		"limit", s.limit,
	)
	return s, nil
}

// ExpandUnit returns the names a user-supplied unit matches: the name
// itself and, for a bare name, its .service variant.
func ExpandUnit(name string) []string {
	if strings.HasSuffix(name, serviceSuffix) {
		return []string{name}
	}
	return []string{name, name + serviceSuffix}
}

// NormalizeBoot converts a UUID written in any accepted form (e.g. the
// dashed /proc/sys/kernel/random/boot_id form) into the 32 lowercase hex
// digits used by _BOOT_ID. Other ids are returned unchanged.
func NormalizeBoot(id string) string {
	u, err := uuid.Parse(id)
	if err != nil {
		return id
	}
	return strings.ReplaceAll(u.String(), "-", "")
}

// MaxPriority is the least severe level that is kept.
func (s *Spec) MaxPriority() uint64 { return s.maxPriority }

// Boots returns the explicit boot filter in the order given; empty means all.
func (s *Spec) Boots() []string { return slices.Clone(s.boots) }

// Units returns the expanded unit filter, sorted; empty means all.
func (s *Spec) Units() []string {
	out := make([]string, 0, len(s.units))
	for u := range s.units {
		out = append(out, u)
	}
	slices.Sort(out)
	return out
}

// MatchesUnit reports whether a resolved unit name passes the unit filter.
func (s *Spec) MatchesUnit(unit string) bool {
	if len(s.units) == 0 {
		return true
	}
	_, ok := s.units[unit]
	return ok
}

func (s *Spec) KernelOnly() bool { return s.kernelOnly }

// TimeOfDay is the parsed --since-time/--until-time window.
func (s *Spec) TimeOfDay() ClockWindow { return s.clock }

// Dates is the parsed --since-date/--until-date window.
func (s *Spec) Dates() DateWindow { return s.dates }

// Limit is the number of records rendered per boot; 0 means unlimited.
func (s *Spec) Limit() int { return s.limit }
