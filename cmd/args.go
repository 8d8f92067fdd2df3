package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sable/mods"
	"sable/report"
	"sable/util"
)

const usage = `Usage: sable [flags|options] <path to module directory>

Flags:
------
-h, --help      Displays usage information (ie. this text).
-v, --version   Displays the current compiler version.
-e, --emit-ir   Dumps the generated LLVM IR to standard out.

Options:
--------
-o,  --outpath    Overrides the output path from the module manifest.
-ll, --loglevel   Sets the compiler's log-level.  Valid values are:
                    - "verbose" for outputting all messages (default)
                    - "warn" for outputting errors and warnings
                    - "error" for outputting errors only
                    - "silent" for no output
`

// Prints the usage message and exits the compiler with the given exit code.
func printUsage(exitCode int) {
	fmt.Print(usage, "\n")
	os.Exit(exitCode)
}

// argParser is a command-line argument parser.
type argParser struct {
	// The arguments being parsed.
	args []string

	// The argument parser's position within those arguments.
	ndx int
}

// Set containing all the argument names that correspond to options.
var options = map[string]struct{}{
	"o":         {},
	"ll":        {},
	"-outpath":  {},
	"-loglevel": {},
}

// The valid values of the log level option.
var logLevelNames = []string{"silent", "error", "warn", "verbose"}

// argumentError displays an argument error and exits the program.
func argumentError(message string, args ...interface{}) {
	fmt.Print("argument error: ", fmt.Sprintf(message, args...), "\n\n")
	printUsage(1)
}

// nextArg parses the next command-line argument if one exists.  The first value
// is the name of the argument.  If this argument is positional, this value is
// empty.  The second value is the value of argument. If this value is empty,
// the argument is a flag.  If an argument exists, at least one of the returned
// values will be non-empty.  The final value indicates whether or not there was
// an argument to parse.
func (ap *argParser) nextArg() (string, string, bool) {
	if ap.ndx < len(ap.args) {
		arg := ap.args[ap.ndx]
		ap.ndx++

		if strings.HasPrefix(arg, "-") { // flag or option
			name := arg[1:]

			if _, ok := options[name]; ok { // option
				// Make sure the option value exists.
				if ap.ndx < len(ap.args) && !strings.HasPrefix(ap.args[ap.ndx], "-") {
					value := ap.args[ap.ndx]
					ap.ndx++
					return name, value, true
				} else {
					argumentError("option %s requires an argument", strings.TrimLeft(name, "-"))
				}
			} else { // flag
				return name, "", true
			}

		} else { // positional
			return "", arg, true
		}
	}

	// No arguments to parse.
	return "", "", false
}

// useArg attempts to use a single command-line argument to initialize the
// compiler.  If the argument is invalid, the program will exit.
func useArg(c *Compiler, name, value string) {
	switch name {
	case "h", "-help":
		printUsage(0)
	case "v", "-version":
		fmt.Println("sable v" + mods.SableVersion)
		os.Exit(0)
	case "e", "-emit-ir":
		c.emitIR = true
	case "ll", "-loglevel":
		{
			if !util.Contains(logLevelNames, value) {
				argumentError("invalid log level")
			}

			switch value {
			case "silent":
				c.logLevel = report.LogLevelSilent
			case "error":
				c.logLevel = report.LogLevelError
			case "warn":
				c.logLevel = report.LogLevelWarn
			case "verbose":
				c.logLevel = report.LogLevelVerbose
			}
		}
	case "o", "-outpath":
		{
			absPath, err := filepath.Abs(value)
			if err != nil {
				argumentError("invalid output path: %s", value)
			}

			c.outputPath = absPath
		}
	case "":
		if c.rootPath == "" {
			absPath, err := filepath.Abs(value)
			if err != nil {
				argumentError("invalid module path: %s", value)
			}

			c.rootPath = absPath
		} else {
			argumentError("module path specified multiple times")
		}
	default:
		argumentError("unknown flag: %s", name)
	}
}

// NewCompilerFromArgs creates a new compiler instance based on the given
// command line arguments if the arguments are valid and compilation should
// continue: ie. if the user requests the compiler version, then compilation
// should not continue.
func NewCompilerFromArgs() *Compiler {
	c := &Compiler{logLevel: report.LogLevelVerbose}

	ap := argParser{args: os.Args[1:], ndx: 0}

	// Parse all command line arguments.
	for {
		if name, value, ok := ap.nextArg(); ok {
			useArg(c, name, value)
		} else {
			break
		}
	}

	// Check to make sure a module path was specified.
	if c.rootPath == "" {
		argumentError("a module path must be specified")
	}

	report.InitReporter(c.logLevel)

	return c
}
