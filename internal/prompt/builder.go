// Package prompt renders plan requests into instructions for a text
// generator.
package prompt

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"text/template"

	"github.com/gps23/ai-task-planner/internal/domain"
)

//go:embed templates/plan.tmpl
var defaultTemplate string

// templateData is the data passed to the prompt template.
type templateData struct {
	Goal  string
	Days  int
	Level string
}

// Builder renders PlanRequests with a parsed template. A Builder holds no
// mutable state and is safe for concurrent use.
type Builder struct {
	tmpl *template.Template
}

// NewBuilder parses templateText. Unknown keys referenced by the template
// are reported at render time.
func NewBuilder(templateText string) (*Builder, error) {
	tmpl, err := template.New("plan").Option("missingkey=error").Parse(templateText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template: %w", err)
	}
	return &Builder{tmpl: tmpl}, nil
}

// Default returns a Builder over the embedded plan template.
func Default() *Builder {
	b, err := NewBuilder(defaultTemplate)
	if err != nil {
		panic(err)
	}
	return b
}

// FromFile returns a Builder over the template at path, or the embedded
// template when path is empty.
func FromFile(path string) (*Builder, error) {
	if path == "" {
		return Default(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt template from %s: %w", path, err)
	}
	return NewBuilder(string(content))
}

// Build renders req. Equal requests always produce equal prompts.
func (b *Builder) Build(req domain.PlanRequest) (string, error) {
	var buf bytes.Buffer
	data := templateData{Goal: req.Goal, Days: req.Days, Level: req.Level}
	if err := b.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}
