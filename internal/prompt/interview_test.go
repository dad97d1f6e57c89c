package prompt

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshmaven/cli/internal/catalog"
	oerrors "github.com/freshmaven/cli/internal/errors"
	"github.com/freshmaven/cli/internal/project"
)

func builtinCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Builtin()
	require.NoError(t, err)
	return cat
}

func TestInterview_Defaults(t *testing.T) {
	input := strings.Join([]string{
		"com.example", // groupId
		"my-demo",     // artifactId
		"",            // version
		"",            // project name
		"",            // package name
		"",            // kind
		"2",           // stack
		"",            // git files
	}, "\n") + "\n"

	s, out := newTestSession(input)
	p, err := Interview(s, builtinCatalog(t), project.Parameters{OutputDir: "/out"})
	require.NoError(t, err)

	assert.Equal(t, "com.example", p.GroupID)
	assert.Equal(t, "my-demo", p.ArtifactID)
	assert.Equal(t, project.DefaultVersion, p.Version)
	assert.Equal(t, "my-demo", p.ProjectName)
	assert.Equal(t, "com.example.mydemo", p.PackageName)
	assert.Equal(t, catalog.KindCommandLineApplication, p.Kind)
	assert.Equal(t, "CLA_BASIC", p.Stack.Name)
	assert.False(t, p.NoGit)
	assert.Equal(t, "/out", p.OutputDir)

	o := out.String()
	assert.Contains(t, o, "Interactive mode.")
	assert.Contains(t, o, "Root package is (groupId + artifactId): com.example.mydemo .")
	assert.Contains(t, o, "  3. Java Enterprise Edition Application (J2EE)")
	assert.Contains(t, o, "You selected to create a Stand alone Application (Command Line Application).")
}

func TestInterview_Overrides(t *testing.T) {
	input := strings.Join([]string{
		"org.acme",
		"shop",
		"0.1.0",
		"web-shop",
		"not a package",
		"org.acme.web",
		"3",
		"2",
		"n",
	}, "\n") + "\n"

	s, out := newTestSession(input)
	p, err := Interview(s, builtinCatalog(t), project.Parameters{})
	require.NoError(t, err)

	assert.Equal(t, "0.1.0", p.Version)
	assert.Equal(t, "web-shop", p.ProjectName)
	assert.Equal(t, "org.acme.web", p.PackageName)
	assert.Equal(t, catalog.KindJ2EE, p.Kind)
	assert.Equal(t, "J2EE_STRUTS_1", p.Stack.Name)
	assert.True(t, p.NoGit)

	assert.Contains(t, out.String(), "'not a package' is not a valid package name.")
	assert.Contains(t, out.String(), `New folder path will be "org/acme/web"`)
}

func TestInterview_PreferredKindAndStack(t *testing.T) {
	cat := builtinCatalog(t)
	lib, _, err := cat.FindStack("LIB_SLIM")
	require.NoError(t, err)

	input := "g\na\n\n\n\n\n\n\n"
	s, out := newTestSession(input)
	p, err := Interview(s, cat, project.Parameters{Kind: catalog.KindLibrary, Stack: lib, NoGit: true})
	require.NoError(t, err)

	assert.Equal(t, catalog.KindLibrary, p.Kind)
	assert.Equal(t, "LIB_SLIM", p.Stack.Name)
	assert.True(t, p.NoGit)
	assert.Contains(t, out.String(), "Type of application (1-3)? (2): ")
	assert.Contains(t, out.String(), "Git files (y/n) [y, n] (n): ")
}

func TestInterview_QuitAnywhere(t *testing.T) {
	for _, input := range []string{"q\n", "g\nq\n", "g\na\n\n\n\nq\n", "g\na\n\n\n\n\n\nq\n"} {
		s, _ := newTestSession(input)
		_, err := Interview(s, builtinCatalog(t), project.Parameters{})
		assert.True(t, errors.Is(err, oerrors.ErrQuit), "input %q", input)
	}
}
