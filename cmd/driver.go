// Package cmd is the top-level driver package for the sable back end: it
// parses command-line arguments, loads the module manifest, and runs code
// generation over a closure-converted unit.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"sable/cir"
	"sable/codegen"
	"sable/llvm"
	"sable/mods"
	"sable/report"
)

// Compiler represents the overall state and configuration of compilation.
type Compiler struct {
	// The path to the root directory of the module being compiled.
	rootPath string

	// The path to write output to, if overridden on the command line.
	outputPath string

	// Whether the generated IR is also dumped to standard out.
	emitIR bool

	// The compiler's log level.
	logLevel int

	// The loaded module of the unit being compiled.
	mod *mods.Module
}

// RunCompiler is the main entry point for the sable back end.  This should be
// called directly from main.
func RunCompiler() int {
	c := NewCompilerFromArgs()

	// The front end hands the back end a closure-converted program; until one
	// is linked in, the driver compiles the built-in demonstration unit.
	return c.Compile(demoProgram())
}

// Compile lowers a closure-converted program into optimized LLVM IR and
// writes it according to the module's build configuration.  It returns the
// process exit code.
func (c *Compiler) Compile(prog *cir.Program) int {
	mod, err := mods.LoadModule(c.rootPath)
	if err != nil {
		report.ReportFatal("failed to load module: %s", err.Error())
	}
	c.mod = mod

	report.ReportInfo("compiling module `%s`", mod.Name)
	report.ReportInfo("input unit:\n%s", prog.Repr())

	ctx := llvm.NewContext()
	defer ctx.Dispose()

	llMod, err := codegen.Generate(ctx, prog, mod.Name, mod.Optimize)
	if err != nil {
		report.ReportUnitError(mod.Name, err)
		return 1
	}

	if c.emitIR {
		fmt.Print(llMod.String())
	}

	if mod.OutputFormat == mods.FormatNone {
		return 0
	}

	outputPath := c.outputPath
	if outputPath == "" {
		outputPath = filepath.Join(mod.ModuleRoot, mod.OutputPath)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		report.ReportFatal("failed to create output directory: %s", err.Error())
	}

	if err := llMod.WriteToFile(outputPath); err != nil {
		report.ReportFatal("failed to write output file `%s`: %s", outputPath, err.Error())
	}

	report.ReportInfo("wrote `%s`", outputPath)
	return 0
}
