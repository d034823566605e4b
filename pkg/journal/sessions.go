package journal

import (
	"log/slog"

	"github.com/modoterra/jrnlvw/pkg/core"
)

// IndexSessions returns the distinct boot ids of entries in first-seen
// order. Entries without a boot id are logged and left out.
func IndexSessions(entries []core.Entry, logger *slog.Logger) []string {
	ids := make([]string, 0)
	seen := make(map[string]bool)

	for i, e := range entries {
		if e.BootID == "" {
			logger.Warn("unable to get boot id from entry", "entry", i, "boot", core.NotAvailable)
			continue
		}
		if seen[e.BootID] {
			continue
		}
		seen[e.BootID] = true
		ids = append(ids, e.BootID)
	}
	return ids
}
