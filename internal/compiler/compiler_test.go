// Where: internal/compiler/compiler_test.go
// What: Tests for the full compilation pass.
// Why: Exercise ordering, injection, abort-on-error, and artifact determinism together.
package compiler

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stackcraft/stackc/internal/config"
	"github.com/stackcraft/stackc/internal/emitter"
	"github.com/stackcraft/stackc/internal/modschema"
	"github.com/stackcraft/stackc/internal/provider"
)

type stubSchemas struct {
	schemas map[string]*modschema.ModuleSchema
}

func (s stubSchemas) Read(stackType, applicationName string) (*modschema.ModuleSchema, error) {
	return s.schemas[stackType+"/"+applicationName], nil
}

func newTestCompiler(t *testing.T, schemas map[string]*modschema.ModuleSchema) (*Compiler, string) {
	t.Helper()
	dir := t.TempDir()
	return &Compiler{
		Schemas:    stubSchemas{schemas: schemas},
		Emitter:    emitter.New(dir),
		Provider:   provider.AWS,
		Deployment: provider.Kubernetes,
		Region:     "eu-central-1",
		AccountID:  "123456789012",
		StateFile:  "analytics.tfstate",
		ActiveEnv:  "dev",
	}, dir
}

func readArtifact(t *testing.T, dir, name string) map[string]any {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(dir, name+".tf.json"))
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	var doc map[string]any
	if err := json.Unmarshal(content, &doc); err != nil {
		t.Fatalf("decode %s: %v", name, err)
	}
	return doc
}

func TestRunSingleDatabaseStack(t *testing.T) {
	c, dir := newTestCompiler(t, map[string]*modschema.ModuleSchema{
		"database/pg": {
			Inputs: []modschema.InputSpec{
				{Name: "storage_gb", UserFacing: true},
			},
			Outputs: []modschema.OutputSpec{
				{Name: "endpoint", Export: true},
			},
		},
	})

	cfg := config.StackConfig{
		Stacks: []config.StackEntry{
			{Type: "database", Name: "pg", Params: map[string]any{"storage_gb": 50}},
		},
	}
	if err := c.Run(cfg); err != nil {
		t.Fatalf("run: %v", err)
	}

	doc := readArtifact(t, dir, "stack_database")
	block := doc["module"].(map[string]any)["pg"].(map[string]any)
	if block["source"] != "../modules/applications/database/pg/tf_module" {
		t.Errorf("source = %v", block["source"])
	}
	if block["storage_gb"] != float64(50) {
		t.Errorf("storage_gb = %v", block["storage_gb"])
	}

	// storage_gb is not a subnet-triggering key
	vpc := readArtifact(t, dir, "vpc")
	vpcBlock := vpc["module"].(map[string]any)["vpc"].(map[string]any)
	if vpcBlock["create_database_subnets"] != false {
		t.Errorf("create_database_subnets = %v, want false", vpcBlock["create_database_subnets"])
	}

	outputs := readArtifact(t, dir, "output")
	entries := outputs["output"].([]any)
	if len(entries) != 3 {
		t.Fatalf("expected endpoint + 2 fixed entries, got %#v", entries)
	}
	first := entries[0].(map[string]any)
	if first["endpoint"].(map[string]any)["value"] != "${ module.pg.endpoint }" {
		t.Errorf("unexpected first output entry: %#v", first)
	}
}

func TestRunMissingNameAborts(t *testing.T) {
	c, dir := newTestCompiler(t, nil)
	cfg := config.StackConfig{
		Stacks: []config.StackEntry{
			{Type: "database"},
		},
	}
	err := c.Run(cfg)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "stack_database.tf.json")); !os.IsNotExist(statErr) {
		t.Error("no descriptor may be emitted for a nameless entry")
	}
	if _, statErr := os.Stat(filepath.Join(dir, "output.tf.json")); !os.IsNotExist(statErr) {
		t.Error("the run must halt before the output artifact")
	}
}

func TestRunSubnetSignalFoldsAcrossEntries(t *testing.T) {
	schemas := map[string]*modschema.ModuleSchema{
		"eks/cluster": {
			Inputs: []modschema.InputSpec{{Name: "node_count", UserFacing: true}},
		},
		"database/pg": {
			Inputs: []modschema.InputSpec{{Name: "create_vpc_database_subnets", UserFacing: true}},
		},
	}
	c, dir := newTestCompiler(t, schemas)
	cfg := config.StackConfig{
		Stacks: []config.StackEntry{
			{Type: "eks", Name: "cluster", Params: map[string]any{"node_count": 2}},
			{Type: "database", Name: "pg", Params: map[string]any{"create_vpc_database_subnets": true}},
		},
	}
	if err := c.Run(cfg); err != nil {
		t.Fatalf("run: %v", err)
	}
	vpc := readArtifact(t, dir, "vpc")
	block := vpc["module"].(map[string]any)["vpc"].(map[string]any)
	if block["create_database_subnets"] != true {
		t.Errorf("signal from any entry must set the flag, got %v", block["create_database_subnets"])
	}
}

func TestRunNoInjectionForGCP(t *testing.T) {
	c, dir := newTestCompiler(t, nil)
	c.Provider = provider.GCP
	if err := c.Run(config.StackConfig{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "vpc.tf.json")); !os.IsNotExist(err) {
		t.Error("GCP runs must not inject a network descriptor")
	}
}

func TestRunDeferredReferenceNeverLiteralNone(t *testing.T) {
	c, dir := newTestCompiler(t, map[string]*modschema.ModuleSchema{
		"eks/cluster": {
			Inputs: []modschema.InputSpec{
				{Name: "vpc_id", UserFacing: false, Default: "None", Value: "module.vpc.vpc_id"},
			},
		},
	})
	cfg := config.StackConfig{
		Stacks: []config.StackEntry{{Type: "eks", Name: "cluster"}},
	}
	if err := c.Run(cfg); err != nil {
		t.Fatalf("run: %v", err)
	}
	doc := readArtifact(t, dir, "stack_eks")
	block := doc["module"].(map[string]any)["cluster"].(map[string]any)
	if block["vpc_id"] != "${ module.vpc.vpc_id }" {
		t.Errorf("vpc_id = %v, want deferred reference", block["vpc_id"])
	}
}

func TestRunVariableArtifactOnlyWhenDeclared(t *testing.T) {
	c, dir := newTestCompiler(t, nil)
	if err := c.Run(config.StackConfig{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "variable.tf.json")); !os.IsNotExist(err) {
		t.Error("no variable artifact without input_variables")
	}

	declared := []config.InputVariable{{Name: "team", Default: "data"}}
	cfg := config.StackConfig{InputVariables: &declared}
	if err := c.Run(cfg); err != nil {
		t.Fatalf("run: %v", err)
	}
	doc := readArtifact(t, dir, "variable")
	vars := doc["variable"].([]any)
	if len(vars) != 1 {
		t.Fatalf("unexpected variables: %#v", vars)
	}
}

func TestRunDeterministic(t *testing.T) {
	schemas := map[string]*modschema.ModuleSchema{
		"database/pg": {
			Inputs: []modschema.InputSpec{
				{Name: "storage_gb", UserFacing: true},
				{Name: "engine", UserFacing: false, Default: "postgres"},
			},
			Outputs: []modschema.OutputSpec{
				{Name: "endpoint", Export: true},
				{Name: "port", Export: true},
			},
		},
	}
	cfg := config.StackConfig{
		Stacks: []config.StackEntry{
			{Type: "database", Name: "pg", Params: map[string]any{"storage_gb": 50}},
		},
	}

	read := func(dir string) map[string]string {
		t.Helper()
		artifacts := map[string]string{}
		matches, err := filepath.Glob(filepath.Join(dir, "*.tf.json"))
		if err != nil {
			t.Fatalf("glob: %v", err)
		}
		for _, path := range matches {
			content, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read %s: %v", path, err)
			}
			artifacts[filepath.Base(path)] = string(content)
		}
		return artifacts
	}

	first, firstDir := newTestCompiler(t, schemas)
	if err := first.Run(cfg); err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, secondDir := newTestCompiler(t, schemas)
	if err := second.Run(cfg); err != nil {
		t.Fatalf("second run: %v", err)
	}

	a, b := read(firstDir), read(secondDir)
	if len(a) != len(b) {
		t.Fatalf("artifact sets differ: %v vs %v", a, b)
	}
	for name, content := range a {
		if b[name] != content {
			t.Errorf("%s differs between runs:\n%s\nvs\n%s", name, content, b[name])
		}
	}
}
