package core

// SchemaVersion identifies the journal field set understood by Entry.
// Keys outside FieldNames decode to nothing.
const SchemaVersion = 1

// NotAvailable is substituted for any field that is missing from an entry.
const NotAvailable = "N/A"

// Journal export field names.
const (
	FieldCursor           = "__CURSOR"
	FieldRealtime         = "__REALTIME_TIMESTAMP"
	FieldMonotonic        = "__MONOTONIC_TIMESTAMP"
	FieldBootID           = "_BOOT_ID"
	FieldTransport        = "_TRANSPORT"
	FieldSyslogFacility   = "SYSLOG_FACILITY"
	FieldUID              = "_UID"
	FieldGID              = "_GID"
	FieldMachineID        = "_MACHINE_ID"
	FieldSyslogIdentifier = "SYSLOG_IDENTIFIER"
	FieldPID              = "_PID"
	FieldCmdline          = "_CMDLINE"
	FieldSystemdCgroup    = "_SYSTEMD_CGROUP"
	FieldSystemdUnit      = "_SYSTEMD_UNIT"
	FieldMessage          = "MESSAGE"
	FieldHostname         = "_HOSTNAME"
	FieldPriority         = "PRIORITY"
	FieldCodeFile         = "CODE_FILE"
	FieldCodeLine         = "CODE_LINE"
	FieldCodeFunction     = "CODE_FUNCTION"
	FieldErrno            = "ERRNO"
	FieldUnit             = "UNIT"
)

// FieldNames lists every key of schema version 1.
var FieldNames = []string{
	FieldCursor, FieldRealtime, FieldMonotonic, FieldBootID, FieldTransport,
	FieldSyslogFacility, FieldUID, FieldGID, FieldMachineID, FieldSyslogIdentifier,
	FieldPID, FieldCmdline, FieldSystemdCgroup, FieldSystemdUnit, FieldMessage,
	FieldHostname, FieldPriority, FieldCodeFile, FieldCodeLine, FieldCodeFunction,
	FieldErrno, FieldUnit,
}

// Entry is one decoded journal line. Every field is optional; the empty
// string means the source line did not carry it.
type Entry struct {
	Cursor           string `json:"__CURSOR,omitempty"`
	RealtimeTS       string `json:"__REALTIME_TIMESTAMP,omitempty"`
	MonotonicTS      string `json:"__MONOTONIC_TIMESTAMP,omitempty"`
	BootID           string `json:"_BOOT_ID,omitempty"`
	Transport        string `json:"_TRANSPORT,omitempty"`
	SyslogFacility   string `json:"SYSLOG_FACILITY,omitempty"`
	UID              string `json:"_UID,omitempty"`
	GID              string `json:"_GID,omitempty"`
	MachineID        string `json:"_MACHINE_ID,omitempty"`
	SyslogIdentifier string `json:"SYSLOG_IDENTIFIER,omitempty"`
	PID              string `json:"_PID,omitempty"`
	Cmdline          string `json:"_CMDLINE,omitempty"`
	SystemdCgroup    string `json:"_SYSTEMD_CGROUP,omitempty"`
	SystemdUnit      string `json:"_SYSTEMD_UNIT,omitempty"`
	Message          string `json:"MESSAGE,omitempty"`
	Hostname         string `json:"_HOSTNAME,omitempty"`
	Priority         string `json:"PRIORITY,omitempty"`
	CodeFile         string `json:"CODE_FILE,omitempty"`
	CodeLine         string `json:"CODE_LINE,omitempty"`
	CodeFunction     string `json:"CODE_FUNCTION,omitempty"`
	Errno            string `json:"ERRNO,omitempty"`
	Unit             string `json:"UNIT,omitempty"`
}

// Field returns a pointer to the field stored under the given journal key,
// or nil when the key is not part of the schema.
func (e *Entry) Field(key string) *string {
	switch key {
	case FieldCursor:
		return &e.Cursor
	case FieldRealtime:
		return &e.RealtimeTS
	case FieldMonotonic:
		return &e.MonotonicTS
	case FieldBootID:
		return &e.BootID
	case FieldTransport:
		return &e.Transport
	case FieldSyslogFacility:
		return &e.SyslogFacility
	case FieldUID:
		return &e.UID
	case FieldGID:
		return &e.GID
	case FieldMachineID:
		return &e.MachineID
	case FieldSyslogIdentifier:
		return &e.SyslogIdentifier
	case FieldPID:
		return &e.PID
	case FieldCmdline:
		return &e.Cmdline
	case FieldSystemdCgroup:
		return &e.SystemdCgroup
	case FieldSystemdUnit:
		return &e.SystemdUnit
	case FieldMessage:
		return &e.Message
	case FieldHostname:
		return &e.Hostname
	case FieldPriority:
		return &e.Priority
	case FieldCodeFile:
		return &e.CodeFile
	case FieldCodeLine:
		return &e.CodeLine
	case FieldCodeFunction:
		return &e.CodeFunction
	case FieldErrno:
		return &e.Errno
	case FieldUnit:
		return &e.Unit
	}
	return nil
}

// Get returns the value stored under key and whether it is present.
func (e Entry) Get(key string) (string, bool) {
	p := e.Field(key)
	if p == nil || *p == "" {
		return "", false
	}
	return *p, true
}
