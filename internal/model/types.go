package model

// Severity is one of the four log levels a unit log record may carry.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityDebug
	SeverityWarning
	SeverityError
)

var severityNames = [...]string{
	SeverityInfo:    "INFO",
	SeverityDebug:   "DEBUG",
	SeverityWarning: "WARNING",
	SeverityError:   "ERROR",
}

// String returns the canonical upper-case severity name.
func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "UNKNOWN"
	}
	return severityNames[s]
}

// ParseSeverity resolves a severity string by exact name match.
// Resolution is case-sensitive and does not trim whitespace: any text
// other than INFO, DEBUG, WARNING or ERROR reports ok=false.
func ParseSeverity(text string) (Severity, bool) {
	switch text {
	case "INFO":
		return SeverityInfo, true
	case "DEBUG":
		return SeverityDebug, true
	case "WARNING":
		return SeverityWarning, true
	case "ERROR":
		return SeverityError, true
	}
	return 0, false
}

// LogRecord is a single cleaned unit log record. It is produced by the
// cleaner and consumed immediately by the analyzer; it is never stored.
type LogRecord struct {
	Charm        string // logical source, e.g. "mysql" from "unit-mysql-0"
	SeverityText string // raw severity field, unresolved and untrimmed
	Message      string // message text with surrounding whitespace removed
}
