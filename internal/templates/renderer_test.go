package templates

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofa-framework/plugin-maker/internal/plugin"
)

func mustIdentity(t *testing.T, name string) plugin.Identity {
	t.Helper()
	id, err := plugin.NewIdentity(name)
	require.NoError(t, err)
	return id
}

func TestRender_PlanLayout(t *testing.T) {
	plan, err := Render(mustIdentity(t, "MyPlugin"))
	require.NoError(t, err)

	assert.Equal(t, "MyPlugin", plan.Root)
	assert.Equal(t, []string{
		"CMakeLists.txt",
		"MyPluginConfig.cmake.in",
		"README.md",
		".github/workflows/ci.yml",
		"examples/xml/example.scn",
		"examples/example.py",
		"src/MyPlugin/init.h",
		"src/MyPlugin/init.cpp",
		"src/MyPlugin/config.h.in",
		"tests/CMakeLists.txt",
		"tests/test.cpp",
	}, plan.Files())
	assert.Equal(t, []string{
		".github",
		".github/workflows",
		"examples",
		"examples/xml",
		"examples/python",
		"regression",
		"regression/references",
		"src",
		"src/MyPlugin",
		"tests",
	}, plan.Dirs())
}

func TestRender_ParentsPrecedeChildren(t *testing.T) {
	plan, err := Render(mustIdentity(t, "MyPlugin"))
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, e := range plan.Entries {
		if i := strings.LastIndex(e.Path, "/"); i >= 0 {
			assert.True(t, seen[e.Path[:i]], "parent of %s must be created first", e.Path)
		}
		if e.Kind == KindDir {
			seen[e.Path] = true
			assert.Nil(t, e.Content)
		}
	}
}

func TestRender_UppercaseTokens(t *testing.T) {
	plan, err := Render(mustIdentity(t, "MyPlugin"))
	require.NoError(t, err)

	content := contents(plan)

	assert.Contains(t, content["CMakeLists.txt"], "cmake_dependent_option(MYPLUGIN_BUILD_TESTS")
	assert.Contains(t, content["CMakeLists.txt"], "if(MYPLUGIN_BUILD_TESTS)")
	assert.Contains(t, content["src/MyPlugin/config.h.in"], "#ifdef SOFA_BUILD_MYPLUGIN")
	assert.Contains(t, content["src/MyPlugin/config.h.in"], "#  define MYPLUGIN_API SOFA_EXPORT_DYNAMIC_LIBRARY")
	assert.Contains(t, content["src/MyPlugin/init.h"], "void MYPLUGIN_API initializePlugin();")
	assert.Contains(t, content["src/MyPlugin/init.cpp"], "MYPLUGIN_API void initExternalModule()")
}

func TestRender_ModuleAccessors(t *testing.T) {
	plan, err := Render(mustIdentity(t, "MyPlugin"))
	require.NoError(t, err)

	initCpp := contents(plan)["src/MyPlugin/init.cpp"]
	for _, fn := range []string{
		"initExternalModule",
		"getModuleName",
		"getModuleVersion",
		"getModuleLicense",
		"getModuleDescription",
	} {
		assert.Contains(t, initCpp, fn+"()", "init.cpp should define %s", fn)
	}
	assert.Contains(t, initCpp, `return "LGPL";`)
	assert.Contains(t, initCpp, `return "SOFA plugin for MyPlugin";`)
	assert.Contains(t, initCpp, "return MyPlugin::MODULE_NAME;")
	assert.Contains(t, initCpp, "#include <MyPlugin/init.h>")
}

func TestRender_NameSubstitution(t *testing.T) {
	plan, err := Render(mustIdentity(t, "MyPlugin"))
	require.NoError(t, err)

	content := contents(plan)

	assert.Contains(t, content["CMakeLists.txt"], "project(MyPlugin VERSION 1.0 LANGUAGES CXX)")
	assert.Contains(t, content["CMakeLists.txt"], "add_library(${PROJECT_NAME} SHARED")
	assert.Contains(t, content["MyPluginConfig.cmake.in"], "check_required_components(MyPlugin)")
	assert.Contains(t, content["MyPluginConfig.cmake.in"], "@PACKAGE_INIT@")
	assert.Contains(t, content["README.md"], "# MyPlugin")
	assert.Contains(t, content["examples/xml/example.scn"], `<RequiredPlugin name="MyPlugin"/>`)
	assert.Contains(t, content["examples/xml/example.scn"], `dt="0.005" gravity="0 0 -9.81"`)
	assert.Contains(t, content["examples/example.py"], "def createScene(root_node):")
	assert.Contains(t, content["examples/example.py"], `plugins.addObject('RequiredPlugin', name="MyPlugin")`)
	assert.Contains(t, content["tests/CMakeLists.txt"], "project(MyPlugin_test VERSION 1.0)")
	assert.Contains(t, content["tests/CMakeLists.txt"], "Sofa.Testing MyPlugin)")
	assert.Equal(t, "#include <gtest/gtest.h>\n", content["tests/test.cpp"])
}

func TestRender_CIWorkflow(t *testing.T) {
	plan, err := Render(mustIdentity(t, "MyPlugin"))
	require.NoError(t, err)

	ci := contents(plan)[".github/workflows/ci.yml"]

	assert.Contains(t, ci, "runs-on: ${{ matrix.os }}")
	assert.Contains(t, ci, "os: [ubuntu-22.04, macos-14, windows-2022]")
	assert.Contains(t, ci, `$originalName = "MyPlugin_${{ steps.sofa.outputs.run_branch }}`)
	assert.Contains(t, ci, "artifacts/MyPlugin_*_Linux.zip")
	assert.Contains(t, ci, "artifacts/MyPlugin_*_Windows.zip")
	assert.Contains(t, ci, "artifacts/MyPlugin_*_macOS.zip")
	assert.Contains(t, ci, `echo "Regression tests are not supported on the CI for macOS yet (TODO)"`)
	assert.Contains(t, ci, `if [[ "$RUNNER_OS" == "Windows" ]]; then`)
	assert.NotContains(t, ci, "<%")
}

func TestRender_Deterministic(t *testing.T) {
	first, err := Render(mustIdentity(t, "my-plugin"))
	require.NoError(t, err)
	second, err := Render(mustIdentity(t, "my-plugin"))
	require.NoError(t, err)

	require.Len(t, second.Entries, len(first.Entries))
	for i := range first.Entries {
		assert.Equal(t, first.Entries[i].Path, second.Entries[i].Path)
		assert.True(t, bytes.Equal(first.Entries[i].Content, second.Entries[i].Content),
			"content of %s differs between runs", first.Entries[i].Path)
	}
}

func TestRender_HyphenKeptInUpperToken(t *testing.T) {
	plan, err := Render(mustIdentity(t, "my-plugin"))
	require.NoError(t, err)

	assert.Contains(t, contents(plan)["src/my-plugin/config.h.in"], "MY-PLUGIN_API")
}

func TestRenderer_RenderString(t *testing.T) {
	r := NewRenderer(TemplateData{Name: "Foo", Upper: "FOO"})

	got, err := r.RenderString("t", "<% .Name %>/<% .Upper %> ${{ github.sha }} [[ -z x ]]")
	require.NoError(t, err)
	assert.Equal(t, "Foo/FOO ${{ github.sha }} [[ -z x ]]", got)
}

func TestRenderer_RenderString_Errors(t *testing.T) {
	r := NewRenderer(TemplateData{Name: "Foo", Upper: "FOO"})

	_, err := r.RenderString("unclosed", "<% .Name")
	assert.Error(t, err)

	_, err = r.RenderString("unknown field", "<% .Version %>")
	assert.Error(t, err)
}

func TestRenderManifest_RejectsEscapingPath(t *testing.T) {
	r := NewRenderer(TemplateData{Name: "Foo", Upper: "FOO"})

	_, err := r.RenderManifest([]Entry{{Path: "../<% .Name %>", Kind: KindDir}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes the plugin root")
}

func TestRenderManifest_MissingSource(t *testing.T) {
	r := NewRenderer(TemplateData{Name: "Foo", Upper: "FOO"})

	_, err := r.RenderManifest([]Entry{{Path: "x.txt", Kind: KindFile, Source: "missing"}})
	assert.Error(t, err)
}

func TestManifest_SourcesExist(t *testing.T) {
	sources, err := ListSources()
	require.NoError(t, err)

	used := map[string]bool{}
	for _, e := range Manifest() {
		if e.Kind != KindFile {
			continue
		}
		assert.Contains(t, sources, e.Source)
		used[e.Source] = true
	}
	assert.Len(t, used, len(sources), "every embedded template should be referenced by the manifest")
}

func TestManifest_ReturnsCopy(t *testing.T) {
	m := Manifest()
	m[0].Path = "changed"
	assert.Equal(t, "CMakeLists.txt", Manifest()[0].Path)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Build configuration", Describe("CMakeLists.txt", "Foo"))
	assert.Equal(t, "CMake package config template", Describe("FooConfig.cmake.in", "Foo"))
	assert.Equal(t, "Plugin entry point declaration", Describe("src/Foo/init.h", "Foo"))
	assert.Equal(t, "", Describe("unknown", "Foo"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "folder", KindDir.String())
	assert.Equal(t, "file", KindFile.String())
}

func contents(plan *Plan) map[string]string {
	out := make(map[string]string)
	for _, e := range plan.Entries {
		if e.Kind == KindFile {
			out[e.Path] = string(e.Content)
		}
	}
	return out
}
