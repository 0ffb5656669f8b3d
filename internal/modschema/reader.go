// Where: internal/modschema/reader.go
// What: Module schema reader for per-application input/output contracts.
// Why: Stack compilation needs each module's declared interface, fresh per entry.
package modschema

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// NoDefault is the sentinel a schema uses for an input without a literal
// default. Such inputs resolve to a deferred interpolation of their value
// expression instead of a literal.
const NoDefault = "None"

// ModuleSchema is the declared contract of one application module.
type ModuleSchema struct {
	Inputs  []InputSpec  `yaml:"inputs"`
	Outputs []OutputSpec `yaml:"outputs"`
}

// InputSpec declares one module input. Only user-facing inputs may be
// overridden by stack parameters.
type InputSpec struct {
	Name       string `yaml:"name"`
	Default    any    `yaml:"default"`
	Value      string `yaml:"value"`
	UserFacing bool   `yaml:"user_facing"`
}

// OutputSpec declares one module output. Exported outputs surface in the
// aggregated top-level output artifact.
type OutputSpec struct {
	Name   string `yaml:"name"`
	Export bool   `yaml:"export"`
}

// Reader loads module schemas from the applications directory.
type Reader struct {
	Dir string
}

// NewReader creates a Reader rooted at the given applications directory.
func NewReader(dir string) Reader {
	return Reader{Dir: dir}
}

// Read loads the schema declared for (stackType, applicationName). Returns
// nil without error when no schema file exists; callers then skip
// input/output resolution for that entry. Schemas are loaded fresh on every
// call, never cached.
func (r Reader) Read(stackType, applicationName string) (*ModuleSchema, error) {
	path := filepath.Join(r.Dir, stackType, applicationName, applicationName+".yaml")
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read module schema %s/%s: %w", stackType, applicationName, err)
	}

	var schema ModuleSchema
	if err := yaml.Unmarshal(content, &schema); err != nil {
		return nil, fmt.Errorf("decode module schema %s/%s: %w", stackType, applicationName, err)
	}
	return &schema, nil
}
