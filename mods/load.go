package mods

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"sable/report"
)

// tomlModuleFile represents the module manifest as it is encoded in TOML.
type tomlModuleFile struct {
	Module *tomlModule `toml:"module"`
}

// tomlModule represents a Sable module as it is encoded in TOML.
type tomlModule struct {
	Name    string     `toml:"name"`
	Version string     `toml:"sable-version,omitempty"`
	Build   *tomlBuild `toml:"build"`
}

// tomlBuild represents a module's build configuration as it is encoded in
// TOML.
type tomlBuild struct {
	OutputPath string `toml:"output"`
	Format     string `toml:"format,omitempty"`
	Optimize   bool   `toml:"optimize"`
}

// formatNames maps TOML format name strings to enumerated format values.
var formatNames = map[string]int{
	"llvm": FormatLLVM,
	"none": FormatNone,
}

// LoadModule loads and validates the module rooted at the directory path.
func LoadModule(path string) (*Module, error) {
	buff, err := os.ReadFile(filepath.Join(path, ModuleFileName))
	if err != nil {
		return nil, err
	}

	tmf := &tomlModuleFile{}
	if err := toml.Unmarshal(buff, tmf); err != nil {
		return nil, err
	}

	if tmf.Module == nil {
		return nil, errors.New("manifest is missing a [module] table")
	}

	mod := &Module{
		// The module root is the directory enclosing the module file.
		ModuleRoot: path,
	}

	if err := validateModule(mod, tmf.Module); err != nil {
		return nil, err
	}

	return mod, nil
}

// validateModule checks the decoded manifest contents and moves them onto the
// module.
func validateModule(mod *Module, tmod *tomlModule) error {
	if tmod.Name == "" {
		return fmt.Errorf("missing module name for module at %s", mod.ModuleRoot)
	}

	if !IsValidIdentifier(tmod.Name) {
		return errors.New("module name must be a valid identifier")
	}

	if tmod.Version != "" && tmod.Version != SableVersion {
		report.ReportUnitWarning(
			tmod.Name,
			"module targets sable v%s but the compiler is v%s",
			tmod.Version, SableVersion,
		)
	}

	if tmod.Build == nil {
		return fmt.Errorf("module `%s` is missing a [module.build] table", tmod.Name)
	}

	format := FormatLLVM
	if tmod.Build.Format != "" {
		formatVal, ok := formatNames[tmod.Build.Format]
		if !ok {
			return fmt.Errorf("`%s` is not a valid output format", tmod.Build.Format)
		}

		format = formatVal
	}

	if format != FormatNone && tmod.Build.OutputPath == "" {
		return fmt.Errorf("module `%s` must specify an output path", tmod.Name)
	}

	mod.Name = tmod.Name
	mod.OutputPath = tmod.Build.OutputPath
	mod.OutputFormat = format
	mod.Optimize = tmod.Build.Optimize

	return nil
}
