// Package plugin provides the validated identity of the plugin being scaffolded.
package plugin

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	oerrors "github.com/sofa-framework/plugin-maker/internal/errors"
)

// nameRegex is the allowed plugin name character set.
var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Identity is a validated plugin name and its derived tokens.
// The zero value is not valid; use NewIdentity.
type Identity struct {
	// Name is the plugin name exactly as given (e.g. "MyPlugin").
	Name string

	// Upper is the uppercase form used for macro and guard tokens (e.g. "MYPLUGIN").
	// Hyphens are kept: "my-plugin" gives "MY-PLUGIN".
	Upper string
}

// ValidateName checks that name only contains letters, digits, hyphens and underscores.
func ValidateName(name string) error {
	if !nameRegex.MatchString(name) {
		return oerrors.NewInvalidNameError(name)
	}
	return nil
}

// NewIdentity validates name and derives its tokens.
func NewIdentity(name string) (Identity, error) {
	if err := ValidateName(name); err != nil {
		return Identity{}, err
	}
	return Identity{
		Name:  name,
		Upper: cases.Upper(language.Und).String(name), // casers are stateful, one per call
	}, nil
}

// String returns the plugin name.
func (i Identity) String() string {
	return i.Name
}
