package templates

// manifest is the fixed creation order of the plugin skeleton below its root folder.
var manifest = []Entry{
	{Path: "CMakeLists.txt", Kind: KindFile, Source: "CMakeLists.txt"},
	{Path: "<% .Name %>Config.cmake.in", Kind: KindFile, Source: "Config.cmake.in"},
	{Path: "README.md", Kind: KindFile, Source: "README.md"},
	{Path: ".github", Kind: KindDir},
	{Path: ".github/workflows", Kind: KindDir},
	{Path: ".github/workflows/ci.yml", Kind: KindFile, Source: "ci.yml"},
	{Path: "examples", Kind: KindDir},
	{Path: "examples/xml", Kind: KindDir},
	{Path: "examples/xml/example.scn", Kind: KindFile, Source: "example.scn"},
	{Path: "examples/example.py", Kind: KindFile, Source: "example.py"},
	{Path: "examples/python", Kind: KindDir},
	{Path: "regression", Kind: KindDir},
	{Path: "regression/references", Kind: KindDir},
	{Path: "src", Kind: KindDir},
	{Path: "src/<% .Name %>", Kind: KindDir},
	{Path: "src/<% .Name %>/init.h", Kind: KindFile, Source: "init.h"},
	{Path: "src/<% .Name %>/init.cpp", Kind: KindFile, Source: "init.cpp"},
	{Path: "src/<% .Name %>/config.h.in", Kind: KindFile, Source: "config.h.in"},
	{Path: "tests", Kind: KindDir},
	{Path: "tests/CMakeLists.txt", Kind: KindFile, Source: "tests.CMakeLists.txt"},
	{Path: "tests/test.cpp", Kind: KindFile, Source: "test.cpp"},
}

// descriptions are shown next to files in the tree summary.
var descriptions = map[string]string{
	"CMakeLists.txt":           "Build configuration",
	"README.md":                "Plugin readme",
	".github/workflows/ci.yml": "CI workflow",
	"examples/xml/example.scn": "XML example scene",
	"examples/example.py":      "Python example scene",
	"tests/CMakeLists.txt":     "Test build configuration",
	"tests/test.cpp":           "Test harness stub",
}

// Manifest returns a copy of the static manifest.
func Manifest() []Entry {
	out := make([]Entry, len(manifest))
	copy(out, manifest)
	return out
}

// Describe returns a short description of a rendered relative path, or "".
func Describe(relPath, name string) string {
	if desc, ok := descriptions[relPath]; ok {
		return desc
	}
	switch relPath {
	case name + "Config.cmake.in":
		return "CMake package config template"
	case "src/" + name + "/init.h":
		return "Plugin entry point declaration"
	case "src/" + name + "/init.cpp":
		return "Plugin entry point and module accessors"
	case "src/" + name + "/config.h.in":
		return "Export macros and module constants"
	}
	return ""
}
