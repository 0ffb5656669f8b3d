// Where: internal/backend/renderer.go
// What: Render the terraform backend/provider descriptor.
// Why: The engine reads its state wiring from terraform.tf.json alongside the stack artifacts.
package backend

import (
	"bytes"
	"embed"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/stackcraft/stackc/internal/provider"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

type backendTemplateData struct {
	Bucket    string
	Key       string
	Region    string
	LockTable string
	Provider  string
}

// RenderBackend produces the terraform.tf.json content for an identity.
func RenderBackend(id Identity, p provider.Provider) (string, error) {
	data := backendTemplateData{
		Bucket:    id.Bucket,
		Key:       id.Key,
		Region:    id.Region,
		LockTable: id.LockTable,
		Provider:  p.String(),
	}
	return renderTemplate("backend.tf.json.tmpl", data)
}

func renderTemplate(name string, data any) (string, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		return value.(*template.Template), nil
	}
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, err
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}
