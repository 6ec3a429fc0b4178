package version

import (
	"bytes"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinCMakeVersion is the cmake_minimum_required of the generated CMakeLists.txt files.
const MinCMakeVersion = "3.12"

// cmakeVersionRegex matches cmake version output like "cmake version 3.28.3".
var cmakeVersionRegex = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?(?:-[a-zA-Z0-9.]+)?`)

// CMakeBinaryInfo contains cmake binary version information.
type CMakeBinaryInfo struct {
	// Version is the cmake binary version.
	Version string `json:"version"`

	// Path is the path to the cmake binary.
	Path string `json:"path"`

	// Found indicates if cmake was found in PATH.
	Found bool `json:"found"`

	// Compatible indicates the version satisfies MinCMakeVersion.
	Compatible bool `json:"compatible"`

	// Message provides additional information about compatibility.
	Message string `json:"message,omitempty"`
}

// DetectCMakeBinary finds cmake in PATH and checks it against MinCMakeVersion.
func DetectCMakeBinary() CMakeBinaryInfo {
	path, err := exec.LookPath("cmake")
	if err != nil {
		return CMakeBinaryInfo{
			Message: "cmake binary not found in PATH",
		}
	}

	out, err := runVersion(path)
	if err != nil {
		return CMakeBinaryInfo{
			Path:    path,
			Found:   true,
			Message: "failed to get cmake version: " + err.Error(),
		}
	}

	return inspect(path, out)
}

// inspect builds the binary info from `cmake --version` output.
func inspect(path, output string) CMakeBinaryInfo {
	info := CMakeBinaryInfo{Path: path, Found: true}

	v, err := extractVersion(output)
	if err != nil {
		info.Message = err.Error()
		return info
	}
	info.Version = v

	ok, err := Satisfies(v, MinCMakeVersion)
	if err != nil {
		info.Message = err.Error()
		return info
	}
	info.Compatible = ok
	if ok {
		info.Message = "compatible"
	} else {
		info.Message = fmt.Sprintf("incompatible - older than %s", MinCMakeVersion)
	}
	return info
}

// runVersion executes 'cmake --version' and returns its output.
func runVersion(cmakePath string) (string, error) {
	cmd := exec.Command(cmakePath, "--version")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return "", err
	}
	return out.String(), nil
}

// extractVersion extracts the version number from the first line of cmake output.
func extractVersion(output string) (string, error) {
	first, _, _ := strings.Cut(output, "\n")
	match := cmakeVersionRegex.FindString(first)
	if match == "" {
		return "", &versionParseError{output: output}
	}
	return match, nil
}

// Satisfies reports whether version is at least minimum.
// A leading "v" is accepted on either side. Prereleases order before their
// release, so 3.31.0-rc1 satisfies 3.12 but 3.12.0-rc1 does not.
func Satisfies(version, minimum string) (bool, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	// Constraints would skip prereleases entirely, so compare versions directly.
	minV, err := semver.NewVersion(strings.TrimPrefix(minimum, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing minimum version %q: %w", minimum, err)
	}
	return !v.LessThan(minV), nil
}

// versionParseError indicates failure to parse cmake version output.
type versionParseError struct {
	output string
}

func (e *versionParseError) Error() string {
	return "failed to parse cmake version from output: " + e.output
}

// String returns a human-readable cmake binary info string.
func (c CMakeBinaryInfo) String() string {
	if !c.Found {
		return "  Binary Version: not found\n  Binary Path:    -"
	}

	return fmt.Sprintf("  Binary Version: %s (%s)\n  Binary Path:    %s",
		c.Version, c.Message, c.Path)
}
