// Where: internal/emitter/emitter.go
// What: Descriptor artifact writer.
// Why: Serialize compiled documents into Terraform JSON files under one target directory.
package emitter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/stackcraft/stackc/internal/fileops"
)

// Emitter writes descriptor documents as indented, non-HTML-escaped JSON.
// The target directory is explicit so tests and callers can redirect output.
type Emitter struct {
	Dir string
}

// New creates an Emitter writing into dir.
func New(dir string) Emitter {
	return Emitter{Dir: dir}
}

// Path returns the artifact path for a logical artifact name.
func (e Emitter) Path(name string) string {
	return filepath.Join(e.Dir, name+".tf.json")
}

// Emit serializes document and writes it to <dir>/<name>.tf.json,
// replacing any previous content. Failures are fatal to the run and
// propagate unmodified.
func (e Emitter) Emit(name string, document any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return fileops.WriteFile(e.Path(name), buf.String())
}
