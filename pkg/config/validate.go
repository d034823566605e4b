package config

import "fmt"

// Validate checks the options for structural correctness. Value parsing of
// priority, times and dates happens when the filter spec is built.
func Validate(o *Options) []error {
	var errs []error

	if o.Version != 1 {
		errs = append(errs, fmt.Errorf("version must be 1, got %d", o.Version))
	}

	if o.Logfile == "" {
		errs = append(errs, fmt.Errorf("logfile is required"))
	}

	if o.Number < 0 {
		errs = append(errs, fmt.Errorf("number must be >= 0, got %d", o.Number))
	}

	switch o.Output {
	case "", "table", "json", "csv":
	default:
		errs = append(errs, fmt.Errorf("output must be table, json, or csv; got %q", o.Output))
	}

	for i, b := range o.Boots {
		if b == "" {
			errs = append(errs, fmt.Errorf("boot %d: empty id", i))
		}
	}
	for i, u := range o.Units {
		if u == "" {
			errs = append(errs, fmt.Errorf("unit %d: empty name", i))
		}
	}

	if o.ListBoots && o.Output != "" && o.Output != "table" {
		errs = append(errs, fmt.Errorf("list_boots cannot be combined with output %q", o.Output))
	}

	return errs
}
