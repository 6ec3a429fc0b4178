package scaffold

import (
	"fmt"

	"github.com/sofa-framework/plugin-maker/internal/output"
	"github.com/sofa-framework/plugin-maker/internal/templates"
)

// ConsoleReporter prints one "<Verb> file: <path>" or "<Verb> folder: <path>" line per path.
type ConsoleReporter struct {
	// Verb starts every line, e.g. "Created".
	Verb string
}

// NewConsoleReporter returns the reporter used for real runs.
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{Verb: "Created"}
}

// FolderCreated implements Reporter.
func (r *ConsoleReporter) FolderCreated(path string) {
	output.Debug("created folder", "path", path)
	output.Println(fmt.Sprintf("%s folder: %s", r.Verb, path))
}

// FileCreated implements Reporter.
func (r *ConsoleReporter) FileCreated(path string) {
	output.Debug("created file", "path", path)
	output.Println(fmt.Sprintf("%s file: %s", r.Verb, path))
}

// Replay reports every path of res to r in creation order without touching the filesystem.
func Replay(res *Result, r Reporter) {
	r.FolderCreated(res.Root)
	for _, e := range res.Plan.Entries {
		if e.Kind == templates.KindDir {
			r.FolderCreated(res.Path(e))
		} else {
			r.FileCreated(res.Path(e))
		}
	}
}

// Listed is one planned path of a structured listing.
type Listed struct {
	Kind string `json:"kind" yaml:"kind"`
	Path string `json:"path" yaml:"path"`
	Size int    `json:"size,omitempty" yaml:"size,omitempty"`
}

// List returns every path of res in creation order, starting with the root folder.
func List(res *Result) []Listed {
	out := make([]Listed, 0, len(res.Plan.Entries)+1)
	out = append(out, Listed{Kind: templates.KindDir.String(), Path: res.Root})
	for _, e := range res.Plan.Entries {
		out = append(out, Listed{
			Kind: e.Kind.String(),
			Path: res.Path(e),
			Size: len(e.Content),
		})
	}
	return out
}
