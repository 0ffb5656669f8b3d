// Where: internal/config/validator.go
// What: Schema validator for stack configuration files.
// Why: Reject malformed configuration before compilation starts.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

//go:embed schema/stack.schema.json
var stackSchemaJSON []byte

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// ValidateStackConfig checks a raw stack configuration document against the
// embedded JSON schema. Returns the JSON form of the document on success.
func ValidateStackConfig(content []byte) ([]byte, error) {
	sch, err := loadSchema()
	if err != nil {
		return nil, err
	}

	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return nil, fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return nil, fmt.Errorf("unmarshal json: %w", err)
	}

	if err := sch.Validate(document); err != nil {
		return nil, err
	}
	return jsonData, nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(
			"stack.schema.json",
			strings.NewReader(string(stackSchemaJSON)),
		); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("stack.schema.json")
	})
	return compiledSchema, schemaErr
}
