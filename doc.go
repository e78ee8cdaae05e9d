// Package stepreport bridges a Cucumber-style test runner's step
// execution model to a test-reporting service.
//
// The package is a set of pure helpers consumed by a reporting
// integration layer: it renders Gherkin data tables for report display,
// composes step display names, collapses the runner's six-value step
// outcome vocabulary into the reporting service's status and log-level
// vocabularies, and resolves the func a step was bound to so its name can
// be reported.
//
// # Data tables
//
// [FormatDataTable] lays a grid of text cells out as a column-aligned
// block with a header separator row. Padding uses U+00A0 rather than
// ordinary spaces so viewers that collapse whitespace keep the columns
// aligned. [FormatTable] accepts the runner's pickle-table type directly:
//
//	s.Step(`^I have the following items:$`, func(items *godog.Table) {
//		log(stepreport.FormatTable(items))
//	})
//
// # Outcome mapping
//
// [StatusMapping] and [LogLevelMapping] cover the closed outcome set
// PASSED, FAILED, SKIPPED, PENDING, UNDEFINED, AMBIGUOUS. PENDING,
// UNDEFINED, and AMBIGUOUS all report as SKIPPED; every non-pass,
// non-fail outcome logs at WARN.
//
// # Method resolution
//
// [RetrieveMethod] chases the runner's internal definitionMatch ->
// stepDefinition -> method field chain through an opaque step value. The
// chain names private internals of the runner and is version-fragile;
// [ErrFieldNotFound] and [ErrFieldAccess] both mean "omit method
// metadata from the report", not "fail the run".
//
// # Configuration
//
// [ReadConfig] and [LoadConfig] decode the YAML document that addresses
// the reporting service (endpoint, project, launch name, launch
// attributes).
package stepreport
