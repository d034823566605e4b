package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseProfile(t *testing.T) {
	yaml := `
version: 1
kernel: true
priority: warning
boots: [6c7c6013a8ca4a59a3fc1fc0ab8d4fc1]
units:
  - sshd
  - cron.service
number: 20
since_time: "08:00"
until_time: "17:30:00"
since_date: "2024-01-01"
until_date: "2024-01-31"
output: json
color: true
`
	o, err := Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if o.Version != 1 {
		t.Errorf("version: got %d, want 1", o.Version)
	}
	if !o.Kernel {
		t.Error("kernel: want true")
	}
	if o.Priority != "warning" {
		t.Errorf("priority: got %q", o.Priority)
	}
	if len(o.Boots) != 1 || o.Boots[0] != "6c7c6013a8ca4a59a3fc1fc0ab8d4fc1" {
		t.Errorf("boots: got %v", o.Boots)
	}
	if len(o.Units) != 2 || o.Units[1] != "cron.service" {
		t.Errorf("units: got %v", o.Units)
	}
	if o.Number != 20 {
		t.Errorf("number: got %d", o.Number)
	}
	if o.SinceTime != "08:00" || o.UntilTime != "17:30:00" {
		t.Errorf("times: got %q %q", o.SinceTime, o.UntilTime)
	}
	if o.SinceDate != "2024-01-01" || o.UntilDate != "2024-01-31" {
		t.Errorf("dates: got %q %q", o.SinceDate, o.UntilDate)
	}
	if o.Output != "json" || !o.Color {
		t.Errorf("output: got %q color=%v", o.Output, o.Color)
	}
}

func TestParseKeepsDefaults(t *testing.T) {
	o, err := Parse([]byte("version: 1\nkernel: true\n"))
	if err != nil {
		t.Fatal(err)
	}
	if o.Priority != "7" {
		t.Errorf("priority default: got %q", o.Priority)
	}
	if o.Output != "table" {
		t.Errorf("output default: got %q", o.Output)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("units: [unterminated")); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	if err := os.WriteFile(path, []byte("version: 1\nnumber: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	o, err := LoadOrDefault(path)
	if err != nil {
		t.Fatal(err)
	}
	if o.Number != 3 {
		t.Errorf("number: got %d", o.Number)
	}

	if _, err := LoadOrDefault(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("explicit missing profile should fail")
	}
}

func TestLoadOrDefaultImplicitMissing(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	o, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("implicit profile: %v", err)
	}
	if o.Version != 1 || o.Priority != "7" {
		t.Errorf("expected defaults, got %+v", o)
	}
}

func TestValidateVersionMustBe1(t *testing.T) {
	o := Default()
	o.Logfile = "x.json"
	o.Version = 2
	assertHasError(t, Validate(o), "version must be 1")
}

func TestValidateLogfileRequired(t *testing.T) {
	assertHasError(t, Validate(Default()), "logfile is required")
}

func TestValidateNegativeNumber(t *testing.T) {
	o := Default()
	o.Logfile = "x.json"
	o.Number = -1
	assertHasError(t, Validate(o), "number must be")
}

func TestValidateOutput(t *testing.T) {
	for _, out := range []string{"", "table", "json", "csv"} {
		o := Default()
		o.Logfile = "x.json"
		o.Output = out
		if errs := Validate(o); len(errs) != 0 {
			t.Errorf("output=%q: unexpected errors: %v", out, errs)
		}
	}
	o := Default()
	o.Logfile = "x.json"
	o.Output = "xml"
	assertHasError(t, Validate(o), "output must be")
}

func TestValidateEmptyFilterValues(t *testing.T) {
	o := Default()
	o.Logfile = "x.json"
	o.Boots = []string{""}
	o.Units = []string{""}
	errs := Validate(o)
	assertHasError(t, errs, "empty id")
	assertHasError(t, errs, "empty name")
}

func TestValidateListBootsWithOutput(t *testing.T) {
	o := Default()
	o.Logfile = "x.json"
	o.ListBoots = true
	o.Output = "csv"
	assertHasError(t, Validate(o), "list_boots")
}

func assertHasError(t *testing.T, errs []error, substr string) {
	t.Helper()
	for _, e := range errs {
		if strings.Contains(e.Error(), substr) {
			return
		}
	}
	t.Errorf("expected error containing %q, got: %v", substr, errs)
}
