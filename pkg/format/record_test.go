package format

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/modoterra/jrnlvw/pkg/core"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestRealtime(t *testing.T) {
	tests := []struct {
		input     string
		want      string
		wantError bool
	}{
		{"1600000000000000", "2020-09-13 12:26:40", false},
		{"1600000000999999", "2020-09-13 12:26:40", false},
		{"0", "1970-01-01 00:00:00", false},
		{"", core.NotAvailable, false},
		{"yesterday", "", true},
		{"1.6e15", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Realtime(tt.input)
			if tt.wantError {
				var fe *core.FieldError
				if !errors.As(err, &fe) || fe.Field != core.FieldRealtime {
					t.Errorf("expected timestamp FieldError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromEntry(t *testing.T) {
	e := core.Entry{
		Cursor:      "s=abc;i=1a;b=def",
		RealtimeTS:  "1600000000000000",
		BootID:      "A",
		Priority:    "6",
		SystemdUnit: "sshd.service",
		PID:         "812",
		Message:     "Accepted publickey for root",
	}
	got, err := FromEntry(e, discard)
	if err != nil {
		t.Fatal(err)
	}
	want := Record{
		Boot:      "A",
		Seq:       "26",
		Timestamp: "2020-09-13 12:26:40",
		Priority:  "6",
		Unit:      "sshd.service(812)",
		Message:   "Accepted publickey for root",
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestFromEntryMissingFields(t *testing.T) {
	got, err := FromEntry(core.Entry{BootID: "A"}, discard)
	if err != nil {
		t.Fatal(err)
	}
	want := Record{
		Boot:      "A",
		Seq:       core.NotAvailable,
		Timestamp: core.NotAvailable,
		Priority:  core.NotAvailable,
		Unit:      "N/A(N/A)",
		Message:   core.NotAvailable,
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestFromEntryFatal(t *testing.T) {
	tests := []struct {
		name  string
		entry core.Entry
		field string
	}{
		{"cursor without sequence", core.Entry{BootID: "A", Cursor: "s=abc;b=def"}, core.FieldCursor},
		{"cursor bad hex", core.Entry{BootID: "A", Cursor: "s=abc;i=xyz"}, core.FieldCursor},
		{"timestamp", core.Entry{BootID: "A", Cursor: "i=1", RealtimeTS: "now"}, core.FieldRealtime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEntry(tt.entry, discard)
			var fe *core.FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("expected FieldError, got %v", err)
			}
			if fe.Field != tt.field {
				t.Errorf("field: got %s, want %s", fe.Field, tt.field)
			}
		})
	}
}
