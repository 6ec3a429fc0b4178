// Package templates provides the embedded plugin templates and renders them into a scaffold plan.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed plugin/*.tmpl
var pluginFS embed.FS

// templateRoot is the directory holding the template sources inside pluginFS.
const templateRoot = "plugin"

// readSource returns the raw content of a template source file.
func readSource(name string) ([]byte, error) {
	content, err := fs.ReadFile(pluginFS, path.Join(templateRoot, name))
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}
	return content, nil
}

// ListSources returns the names of all embedded template sources, without the .tmpl suffix.
func ListSources() ([]string, error) {
	entries, err := fs.ReadDir(pluginFS, templateRoot)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".tmpl"))
	}
	return names, nil
}
