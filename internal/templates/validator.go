package templates

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// ValidateRelPath checks that a rendered manifest path stays below the plugin root.
func ValidateRelPath(relPath string) error {
	if relPath == "" {
		return fmt.Errorf("empty manifest path")
	}
	if path.IsAbs(relPath) || strings.HasPrefix(relPath, "\\") {
		return fmt.Errorf("manifest path %q must be relative", relPath)
	}
	if path.Clean(relPath) != relPath {
		return fmt.Errorf("manifest path %q is not clean", relPath)
	}
	if relPath == ".." || strings.HasPrefix(relPath, "../") {
		return fmt.Errorf("manifest path %q escapes the plugin root", relPath)
	}
	return nil
}

// CheckWellFormed parses rendered YAML and XML scene files so a broken
// template fails before anything is written.
func CheckWellFormed(relPath string, content []byte) error {
	switch path.Ext(relPath) {
	case ".yml", ".yaml":
		var doc yaml.Node
		if err := yaml.Unmarshal(content, &doc); err != nil {
			return fmt.Errorf("rendered %s is not valid YAML: %w", relPath, err)
		}
	case ".scn", ".xml":
		if err := checkXML(content); err != nil {
			return fmt.Errorf("rendered %s is not valid XML: %w", relPath, err)
		}
	}
	return nil
}

func checkXML(content []byte) error {
	dec := xml.NewDecoder(strings.NewReader(string(content)))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
