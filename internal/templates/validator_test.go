package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRelPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple file", "README.md", false},
		{"nested", "src/Foo/init.h", false},
		{"hidden dir", ".github/workflows", false},
		{"empty", "", true},
		{"absolute", "/etc/passwd", true},
		{"parent", "..", true},
		{"escaping", "../outside", true},
		{"unclean", "src//init.h", true},
		{"trailing slash", "src/", true},
		{"dot segment", "src/./init.h", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRelPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCheckWellFormed(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		wantErr bool
	}{
		{"valid yaml", "ci.yml", "name: CI\non:\n  push:\n", false},
		{"invalid yaml", "ci.yml", "name: [unclosed\n", true},
		{"valid xml", "example.scn", `<?xml version="1.0" encoding="utf-8"?><Node name="root"><Node/></Node>`, false},
		{"mismatched xml", "example.scn", `<Node><Other></Node>`, true},
		{"other extensions are not parsed", "init.cpp", "{{{ not yaml", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckWellFormed(tt.path, []byte(tt.content))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
