package stepreport

import (
	messages "github.com/cucumber/messages/go/v21"
)

// Status is a reporting-service item status. The runner's six-value
// outcome vocabulary collapses into these three.
type Status string

const (
	StatusPassed  Status = "PASSED"
	StatusFailed  Status = "FAILED"
	StatusSkipped Status = "SKIPPED"
)

// String returns the status name.
func (s Status) String() string { return string(s) }

// LogLevel is the severity attached to a step's log entry in the report.
type LogLevel string

const (
	LevelInfo  LogLevel = "INFO"
	LevelWarn  LogLevel = "WARN"
	LevelError LogLevel = "ERROR"
)

// String returns the level name.
func (l LogLevel) String() string { return string(l) }

// StatusMapping maps every step outcome to its reporting status.
// PENDING, UNDEFINED, and AMBIGUOUS all collapse to SKIPPED.
var StatusMapping = map[messages.TestStepResultStatus]Status{
	messages.TestStepResultStatus_PASSED:    StatusPassed,
	messages.TestStepResultStatus_FAILED:    StatusFailed,
	messages.TestStepResultStatus_SKIPPED:   StatusSkipped,
	messages.TestStepResultStatus_PENDING:   StatusSkipped,
	messages.TestStepResultStatus_UNDEFINED: StatusSkipped,
	messages.TestStepResultStatus_AMBIGUOUS: StatusSkipped,
}

// LogLevelMapping maps every step outcome to the severity of its log
// entry: INFO for a pass, ERROR for a failure, WARN for everything else.
var LogLevelMapping = map[messages.TestStepResultStatus]LogLevel{
	messages.TestStepResultStatus_PASSED:    LevelInfo,
	messages.TestStepResultStatus_FAILED:    LevelError,
	messages.TestStepResultStatus_SKIPPED:   LevelWarn,
	messages.TestStepResultStatus_PENDING:   LevelWarn,
	messages.TestStepResultStatus_UNDEFINED: LevelWarn,
	messages.TestStepResultStatus_AMBIGUOUS: LevelWarn,
}

// ReportStatus looks up the reporting status for an outcome. Outcomes
// outside the six-value vocabulary yield the zero Status.
func ReportStatus(outcome messages.TestStepResultStatus) Status {
	return StatusMapping[outcome]
}

// ReportLogLevel looks up the log severity for an outcome. Outcomes
// outside the six-value vocabulary yield the zero LogLevel.
func ReportLogLevel(outcome messages.TestStepResultStatus) LogLevel {
	return LogLevelMapping[outcome]
}
