// Package scaffold creates the folder and file skeleton of a SOFA plugin.
//
// A run goes through three validation gates (plugin name, destination path,
// collision with an existing folder) and renders every template in memory
// before touching the filesystem. A failing gate therefore leaves the
// filesystem unchanged. Once emission starts, the first filesystem error
// aborts the run and leaves the partially written tree in place.
package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sofa-framework/plugin-maker/internal/config"
	oerrors "github.com/sofa-framework/plugin-maker/internal/errors"
	"github.com/sofa-framework/plugin-maker/internal/output"
	"github.com/sofa-framework/plugin-maker/internal/plugin"
	"github.com/sofa-framework/plugin-maker/internal/templates"
)

const (
	dirPerm  fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

// Reporter receives one call per created path, in creation order.
type Reporter interface {
	FolderCreated(path string)
	FileCreated(path string)
}

// Scaffolder validates inputs and emits the plugin tree.
type Scaffolder struct {
	reporter Reporter

	// Filesystem hooks, replaced in tests to simulate write failures.
	mkdir     func(path string, perm fs.FileMode) error
	writeFile func(path string, content []byte, perm fs.FileMode) error
}

// New creates a Scaffolder reporting to r. A nil r discards reports.
func New(r Reporter) *Scaffolder {
	if r == nil {
		r = discard{}
	}
	return &Scaffolder{
		reporter:  r,
		mkdir:     os.Mkdir,
		writeFile: createFile,
	}
}

// Result describes a validated (and possibly emitted) scaffold.
type Result struct {
	// Identity is the validated plugin identity.
	Identity plugin.Identity

	// DestPath is the destination directory after ~ expansion.
	DestPath string

	// Root is DestPath joined with the plugin name.
	Root string

	// Plan is the rendered content below Root.
	Plan *templates.Plan
}

// Path returns the filesystem path of a plan entry.
func (r *Result) Path(e templates.PlanEntry) string {
	return filepath.Join(r.Root, filepath.FromSlash(e.Path))
}

// Plan runs every validation gate and renders the templates without writing anything.
func (s *Scaffolder) Plan(pluginName, destPath string) (*Result, error) {
	id, err := plugin.NewIdentity(pluginName)
	if err != nil {
		return nil, err
	}

	dest, err := checkDestination(destPath)
	if err != nil {
		return nil, err
	}

	root := filepath.Join(dest, id.Name)
	if err := checkCollision(id.Name, dest, root); err != nil {
		return nil, err
	}

	plan, err := templates.Render(id)
	if err != nil {
		return nil, fmt.Errorf("rendering templates: %w", err)
	}

	return &Result{
		Identity: id,
		DestPath: dest,
		Root:     root,
		Plan:     plan,
	}, nil
}

// Run validates the inputs and creates the plugin tree under destPath/pluginName.
func (s *Scaffolder) Run(pluginName, destPath string) (*Result, error) {
	res, err := s.Plan(pluginName, destPath)
	if err != nil {
		return nil, err
	}
	if err := s.Emit(res); err != nil {
		return res, err
	}
	return res, nil
}

// Emit creates the root folder of a planned result and then every entry in order.
// It stops at the first filesystem error.
func (s *Scaffolder) Emit(res *Result) error {
	output.Debug("scaffolding plugin",
		"name", res.Identity.Name,
		"upper", res.Identity.Upper,
		"root", res.Root,
		"entries", len(res.Plan.Entries))

	if err := s.mkdir(res.Root, dirPerm); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return oerrors.NewNameCollisionError(res.Identity.Name, res.DestPath)
		}
		return oerrors.WrapIO(err, fmt.Sprintf("creating folder %s", res.Root))
	}
	s.reporter.FolderCreated(res.Root)

	for _, e := range res.Plan.Entries {
		target := res.Path(e)

		switch e.Kind {
		case templates.KindDir:
			if err := s.mkdir(target, dirPerm); err != nil {
				return oerrors.WrapIO(err, fmt.Sprintf("creating folder %s", target))
			}
			s.reporter.FolderCreated(target)
		case templates.KindFile:
			if err := s.writeFile(target, e.Content, filePerm); err != nil {
				return oerrors.WrapIO(err, fmt.Sprintf("writing file %s", target))
			}
			s.reporter.FileCreated(target)
		}
	}

	return nil
}

// checkDestination expands destPath and checks that it is an existing directory.
func checkDestination(destPath string) (string, error) {
	dest, err := config.ExpandPath(destPath)
	if err != nil {
		return "", oerrors.NewPathNotFoundError(destPath)
	}
	if dest == "" {
		return "", oerrors.NewPathNotFoundError(destPath)
	}

	info, err := os.Stat(dest)
	if errors.Is(err, fs.ErrNotExist) {
		return "", oerrors.NewPathNotFoundError(destPath)
	}
	if err != nil {
		return "", oerrors.WrapIO(err, fmt.Sprintf("checking path %s", destPath))
	}
	if !info.IsDir() {
		return "", oerrors.NewPathNotFoundError(destPath)
	}

	output.Debug("destination checked", "path", dest)
	return dest, nil
}

// checkCollision fails when root already exists as a file, folder or link.
func checkCollision(name, dest, root string) error {
	_, err := os.Lstat(root)
	if err == nil {
		return oerrors.NewNameCollisionError(name, dest)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return oerrors.WrapIO(err, fmt.Sprintf("checking %s", root))
	}
	return nil
}

// createFile writes content to a new file; existing files are never overwritten.
func createFile(path string, content []byte, perm fs.FileMode) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = f.Write(content)
	return err
}

type discard struct{}

func (discard) FolderCreated(string) {}
func (discard) FileCreated(string)   {}
