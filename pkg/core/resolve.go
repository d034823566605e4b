package core

// KernelUnit is the resolved unit name of entries emitted by the kernel.
const KernelUnit = "kernel"

// UnitFields is the fallback order used to resolve an entry's unit name.
var UnitFields = []string{FieldUnit, FieldSystemdUnit, FieldSyslogIdentifier}

// FirstNonEmpty returns the first non-empty value and true, or "" and false
// when every value is empty.
func FirstNonEmpty(values ...string) (string, bool) {
	for _, v := range values {
		if v != "" {
			return v, true
		}
	}
	return "", false
}

// Resolve walks keys in order and returns the first field present on e.
func Resolve(e Entry, keys ...string) (string, bool) {
	values := make([]string, len(keys))
	for i, k := range keys {
		values[i], _ = e.Get(k)
	}
	return FirstNonEmpty(values...)
}

// ResolveUnit returns the originating unit of e following UnitFields.
// When none is set it returns NotAvailable and false.
func ResolveUnit(e Entry) (string, bool) {
	if u, ok := Resolve(e, UnitFields...); ok {
		return u, true
	}
	return NotAvailable, false
}

// UnitWithPID renders "unit(pid)", with NotAvailable for a missing pid.
func UnitWithPID(e Entry) string {
	unit, _ := ResolveUnit(e)
	pid := e.PID
	if pid == "" {
		pid = NotAvailable
	}
	return unit + "(" + pid + ")"
}
