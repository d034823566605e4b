package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/modoterra/jrnlvw/pkg/format"
)

// Format specifies the output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
)

// ParseFormat maps a flag value to a Format; empty means table.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatJSON, FormatCSV:
		return f, nil
	}
	return "", fmt.Errorf("unknown format: %s", s)
}

// Options controls rendering.
type Options struct {
	Format Format
	// Limit caps the records written per session; 0 writes all.
	Limit int
	// Color styles the level column of table output with ANSI colors.
	Color bool
}

const rowFormat = "%-5s  %-20s  %-5s  %-18s  %s\n"

var separator = strings.TrimSpace(strings.Repeat("- ", 48))

// Render writes r to w in the requested format.
func Render(w io.Writer, r *Report, opts Options) error {
	switch opts.Format {
	case FormatTable, "":
		return renderTable(w, r, opts)
	case FormatJSON:
		return renderJSON(w, r, opts)
	case FormatCSV:
		return renderCSV(w, r, opts)
	default:
		return fmt.Errorf("unknown format: %s", opts.Format)
	}
}

// RenderSessions writes one boot id per line.
func RenderSessions(w io.Writer, ids []string) error {
	for _, id := range ids {
		if _, err := fmt.Fprintln(w, id); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(w io.Writer, r *Report, opts Options) error {
	p := newPalette(w, opts.Color)
	for _, s := range r.Sessions() {
		if err := writeSession(w, s, r.Total, opts.Limit, p); err != nil {
			return err
		}
	}
	return nil
}

// WriteSession writes the table block of one session: the boot header with
// the file's total entry count, the column header and up to limit records.
func WriteSession(w io.Writer, s Session, total, limit int, color bool) error {
	return writeSession(w, s, total, limit, newPalette(w, color))
}

func writeSession(w io.Writer, s Session, total, limit int, p *palette) error {
	var b strings.Builder
	fmt.Fprintln(&b, separator)
	fmt.Fprintf(&b, "Boot : ID: %s, Number of parsed entries: %d\n", s.Boot, total)
	fmt.Fprintln(&b, separator)
	fmt.Fprintf(&b, rowFormat, "Seq#", "Datetime", "LVL", "Unit", "Message")

	for _, rec := range limited(s.Records, limit) {
		fmt.Fprintf(&b, rowFormat, rec.Seq, rec.Timestamp, p.level(rec.Priority), rec.Unit, rec.Message)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func limited(records []format.Record, limit int) []format.Record {
	if limit > 0 && len(records) > limit {
		return records[:limit]
	}
	return records
}

type jsonReport struct {
	File     string        `json:"file"`
	Total    int           `json:"total"`
	Sessions []jsonSession `json:"sessions"`
}

type jsonSession struct {
	Boot    string          `json:"boot"`
	Entries []format.Record `json:"entries"`
}

func renderJSON(w io.Writer, r *Report, opts Options) error {
	out := jsonReport{File: r.File, Total: r.Total, Sessions: make([]jsonSession, 0, len(r.Sessions()))}
	for _, s := range r.Sessions() {
		entries := make([]format.Record, 0, len(s.Records))
		entries = append(entries, limited(s.Records, opts.Limit)...)
		out.Sessions = append(out.Sessions, jsonSession{Boot: s.Boot, Entries: entries})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func renderCSV(w io.Writer, r *Report, opts Options) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"boot", "seq", "datetime", "priority", "unit", "message"}); err != nil {
		return err
	}
	for _, s := range r.Sessions() {
		for _, rec := range limited(s.Records, opts.Limit) {
			row := []string{rec.Boot, rec.Seq, rec.Timestamp, rec.Priority, rec.Unit, rec.Message}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// palette colors the LVL column. A nil palette leaves text untouched.
type palette struct {
	severe  lipgloss.Style
	warning lipgloss.Style
	notice  lipgloss.Style
	dim     lipgloss.Style
}

func newPalette(w io.Writer, color bool) *palette {
	if !color {
		return nil
	}
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI)
	return &palette{
		severe:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		warning: r.NewStyle().Foreground(lipgloss.Color("3")),
		notice:  r.NewStyle().Foreground(lipgloss.Color("6")),
		dim:     r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// level pads the priority to the column width before styling so escape
// codes do not disturb alignment.
func (p *palette) level(priority string) string {
	if p == nil {
		return priority
	}
	padded := fmt.Sprintf("%-5s", priority)
	switch priority {
	case "0", "1", "2", "3":
		return p.severe.Render(padded)
	case "4":
		return p.warning.Render(padded)
	case "5":
		return p.notice.Render(padded)
	case "6":
		return padded
	default:
		return p.dim.Render(padded)
	}
}
