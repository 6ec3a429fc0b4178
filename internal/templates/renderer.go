package templates

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/sofa-framework/plugin-maker/internal/plugin"
)

// Template action delimiters. The defaults would clash with GitHub Actions
// expressions in ci.yml; "[[" would clash with bash tests.
const (
	leftDelim  = "<%"
	rightDelim = "%>"
)

// Renderer handles template rendering with data substitution.
type Renderer struct {
	data TemplateData
}

// NewRenderer creates a new renderer with the given template data.
func NewRenderer(data TemplateData) *Renderer {
	return &Renderer{data: data}
}

// RenderFile renders a single template and returns the content.
func (r *Renderer) RenderFile(name string, content []byte) ([]byte, error) {
	tmpl, err := template.New(name).
		Delims(leftDelim, rightDelim).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

// RenderString renders a template string and returns the result.
func (r *Renderer) RenderString(name, content string) (string, error) {
	result, err := r.RenderFile(name, []byte(content))
	if err != nil {
		return "", err
	}
	return string(result), nil
}

// RenderManifest renders every entry of entries, in order, into a plan.
// Nothing is written to disk.
func (r *Renderer) RenderManifest(entries []Entry) (*Plan, error) {
	plan := &Plan{
		Root:    r.data.Name,
		Entries: make([]PlanEntry, 0, len(entries)),
	}

	for _, e := range entries {
		relPath, err := r.RenderString("path", e.Path)
		if err != nil {
			return nil, err
		}
		if err := ValidateRelPath(relPath); err != nil {
			return nil, err
		}

		pe := PlanEntry{Path: relPath, Kind: e.Kind}
		if e.Kind == KindFile {
			src, err := readSource(e.Source + ".tmpl")
			if err != nil {
				return nil, err
			}
			pe.Content, err = r.RenderFile(e.Source, src)
			if err != nil {
				return nil, err
			}
			if err := CheckWellFormed(relPath, pe.Content); err != nil {
				return nil, err
			}
		}

		plan.Entries = append(plan.Entries, pe)
	}

	return plan, nil
}

// Render renders the plugin manifest for a plugin identity.
func Render(id plugin.Identity) (*Plan, error) {
	return NewRenderer(DataFor(id)).RenderManifest(manifest)
}
