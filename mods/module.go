package mods

// ModuleFileName is the name of the module manifest file.
const ModuleFileName = "sable-mod.toml"

// SableVersion is the current version of the compiler.
const SableVersion = "0.1.0"

// Enumeration of output formats.
const (
	// FormatLLVM emits the optimized module as textual LLVM IR (`.ll`).
	FormatLLVM = iota

	// FormatNone runs codegen and verification but writes nothing: useful for
	// checking a unit without producing output.
	FormatNone
)

// Module represents a loaded and validated Sable module: one compilation unit
// plus its build configuration.
type Module struct {
	// Name is the module's name.  It is also the name of the emitted LLVM
	// module.
	Name string

	// ModuleRoot is the directory enclosing the module file.
	ModuleRoot string

	// OutputPath is the path the emitted output is written to, relative to the
	// module root.
	OutputPath string

	// OutputFormat is one of the enumerated output formats.
	OutputFormat int

	// Optimize indicates whether the optimization pipeline runs over the
	// generated functions.
	Optimize bool
}

// IsValidIdentifier returns whether name is usable as a module name: a
// nonempty letter-initial run of letters, digits, and underscores.
func IsValidIdentifier(name string) bool {
	if name == "" {
		return false
	}

	for i, r := range name {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', r == '_':
		case '0' <= r && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}

	return true
}
