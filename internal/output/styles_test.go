package output

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetStyles_PlainWhenRedirected(t *testing.T) {
	SetWriters(&bytes.Buffer{}, nil)
	t.Cleanup(func() { SetWriters(os.Stdout, os.Stderr) })

	styles := GetStyles()

	assert.Equal(t, "name", styles.Noun.Render("name"))
	assert.Equal(t, "dir/", styles.Bold.Render("dir/"))
}

func TestFormatCheckmark(t *testing.T) {
	SetWriters(&bytes.Buffer{}, nil)
	t.Cleanup(func() { SetWriters(os.Stdout, os.Stderr) })

	assert.Equal(t, "✔ Plugin created", FormatCheckmark("Plugin created"))
	assert.Equal(t, "MyPlugin", FormatNoun("MyPlugin"))
}
