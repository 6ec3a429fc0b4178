package templates

import "github.com/sofa-framework/plugin-maker/internal/plugin"

// Kind distinguishes directories from files in the manifest.
type Kind int

const (
	// KindDir is a directory entry.
	KindDir Kind = iota

	// KindFile is a rendered file entry.
	KindFile
)

// String returns "folder" or "file".
func (k Kind) String() string {
	if k == KindDir {
		return "folder"
	}
	return "file"
}

// TemplateData holds the data passed to template rendering.
type TemplateData struct {
	// Name is the plugin name, used verbatim.
	Name string

	// Upper is the uppercase plugin name used in macro tokens.
	Upper string
}

// DataFor builds the template data of a plugin identity.
func DataFor(id plugin.Identity) TemplateData {
	return TemplateData{Name: id.Name, Upper: id.Upper}
}

// Entry is one line of the static manifest.
type Entry struct {
	// Path is the slash-separated output path relative to the plugin root.
	// It is itself a template so it may contain the plugin name.
	Path string

	// Kind is KindDir or KindFile.
	Kind Kind

	// Source is the template source name (without .tmpl) for files.
	Source string
}

// PlanEntry is a rendered manifest entry.
type PlanEntry struct {
	// Path is the slash-separated path relative to the plugin root.
	Path string

	// Kind is KindDir or KindFile.
	Kind Kind

	// Content is the rendered file content; nil for directories.
	Content []byte
}

// Plan is the ordered list of everything a scaffold run creates below the plugin root.
type Plan struct {
	// Root is the plugin root folder name.
	Root string

	// Entries are in creation order.
	Entries []PlanEntry
}

// Files returns the relative paths of all file entries in order.
func (p *Plan) Files() []string {
	return p.paths(KindFile)
}

// Dirs returns the relative paths of all directory entries in order.
func (p *Plan) Dirs() []string {
	return p.paths(KindDir)
}

func (p *Plan) paths(kind Kind) []string {
	var out []string
	for _, e := range p.Entries {
		if e.Kind == kind {
			out = append(out, e.Path)
		}
	}
	return out
}
