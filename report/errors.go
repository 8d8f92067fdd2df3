package report

import (
	"fmt"
	"os"
)

// ReportICE reports an internal compiler error.  These are errors that result
// from a bug or an unexpected condition inside the compiler itself: an
// unresolved scheme reaching codegen, a malformed closure, a function that
// fails verification.  They are not intended to ever happen and are displayed
// regardless of log level.
func ReportICE(message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	displayICE(fmt.Sprintf(message, args...))

	os.Exit(-1)
}

// ReportFatal reports a fatal error.  These cause all compilation to stop
// immediately but are expected errors resulting from invalid configuration of
// some form: a missing manifest, an unwritable output path, etc.
func ReportFatal(message string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayFatal(fmt.Sprintf(message, args...))
	}

	os.Exit(1)
}

// ReportUnitError reports an error lowering a compilation unit: erroneous
// input IR handed to the back end by an upstream phase.
func ReportUnitError(unitName string, err error) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		rep.isErr = true

		displayUnitMessage("error", unitName, err.Error())
	}
}

// ReportUnitWarning reports a warning produced while lowering a compilation
// unit.
func ReportUnitWarning(unitName, message string, args ...interface{}) {
	if rep.logLevel > LogLevelWarn {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayUnitMessage("warning", unitName, fmt.Sprintf(message, args...))
	}
}

// ReportInfo reports a informational compilation message.  Info messages only
// display at the verbose log level.
func ReportInfo(message string, args ...interface{}) {
	if rep.logLevel == LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayInfo(fmt.Sprintf(message, args...))
	}
}
