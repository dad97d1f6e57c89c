package catalog

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshmaven/cli/internal/action"
	oerrors "github.com/freshmaven/cli/internal/errors"
)

func TestBuiltin_Kinds(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)

	var names []string
	for _, k := range c.Kinds() {
		names = append(names, k.Name)
	}
	assert.Equal(t, []string{KindCommandLineApplication, KindLibrary, KindJ2EE}, names)
}

func TestBuiltin_StackOptions(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)

	tests := []struct {
		kind string
		want []string
	}{
		{KindCommandLineApplication, []string{"CLA_SLIM", "CLA_BASIC"}},
		{KindLibrary, []string{"LIB_SLIM"}},
		{KindJ2EE, []string{"J2EE_SLIM", "J2EE_STRUTS_1"}},
		{"unknown", nil},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			stacks := c.StackOptions(tt.kind)
			require.NotNil(t, stacks)

			var got []string
			for _, s := range stacks {
				got = append(got, s.Name)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuiltin_Packaging(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)

	cla, _, err := c.FindStack("CLA_SLIM")
	require.NoError(t, err)
	assert.Equal(t, "jar", cla.Packaging)

	web, kind, err := c.FindStack("J2EE_STRUTS_1")
	require.NoError(t, err)
	assert.Equal(t, "war", web.Packaging)
	assert.Equal(t, KindJ2EE, kind.Name)
	assert.Equal(t, []string{"J2EE", "Struts1", "unit test 5", "plugins_basic"}, web.Actions)
}

// Every built-in stack generates ApplicationTest.java, so each one must
// pull in the JUnit Jupiter and AssertJ dependencies it imports.
func TestBuiltin_StacksCarryTestDependencies(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)

	for _, kind := range c.Kinds() {
		for _, s := range kind.Stacks {
			assert.Contains(t, s.Actions, "unit test 5", s.Name)
		}
	}
}

func TestBuiltin_FragmentsAreIndented(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)

	jcommander, err := c.Actions().Get("jcommander")
	require.NoError(t, err)
	dep, ok := jcommander.(action.PomDependency)
	require.True(t, ok)
	assert.Equal(t, "        <dependency>\n"+
		"            <groupId>com.beust</groupId>\n"+
		"            <artifactId>jcommander</artifactId>\n"+
		"            <version>1.81</version>\n"+
		"        </dependency>\n", dep.Content)

	basic, err := c.Actions().Get("plugins_basic")
	require.NoError(t, err)
	plugins := action.Fragments(action.KindPomPlugin, basic)
	assert.Contains(t, plugins, "            <plugin>\n                <groupId>org.apache.maven.plugins</groupId>\n")
}

func TestBuiltin_CLAFolders(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)

	stack, _, err := c.FindStack("CLA_BASIC")
	require.NoError(t, err)
	list, err := c.ActionList(stack)
	require.NoError(t, err)

	folders := action.FolderPaths(list)
	require.Len(t, folders, 4)
	assert.Equal(t, action.FolderPath{Template: "src/main/java", Property: "srcMainJavaFolderName"}, folders[0])
	assert.Equal(t, "${srcTestJavaFolderName}/${packageFolderPathName}", folders[3].Template)

	assert.Contains(t, action.Fragments(action.KindPomProperty, list), "<junit.jupiter.version>5.8.1</junit.jupiter.version>")
}

func TestFindStack_Unknown(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)

	_, _, err = c.FindStack("NOPE")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
}

func TestDefaultStack(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)

	s, err := c.DefaultStack(DefaultKind)
	require.NoError(t, err)
	assert.Equal(t, "CLA_SLIM", s.Name)

	_, err = c.DefaultStack("unknown")
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
}

func TestLoad_UserCatalogMerges(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/home/user/catalog.yaml", []byte(`
actions:
  - name: guava
    dependency: |
      <dependency>
          <groupId>com.google.guava</groupId>
      </dependency>
kinds:
  - name: command-line-application
    description: ""
    stacks:
      - name: CLA_GUAVA
        description: Slim with Guava
        actions: [CLA, guava, plugins_basic]
  - name: maven-plugin
    description: Maven plugin
    stacks:
      - name: MOJO
        description: Mojo
        packaging: jar
        actions: [LIB]
`), 0o644))

	c, err := Load(fs, "/home/user/catalog.yaml")
	require.NoError(t, err)

	var names []string
	for _, s := range c.StackOptions(KindCommandLineApplication) {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"CLA_SLIM", "CLA_BASIC", "CLA_GUAVA"}, names)

	k, err := c.Kind(KindCommandLineApplication)
	require.NoError(t, err)
	assert.Equal(t, "Stand alone Application (Command Line Application)", k.Description)

	_, kind, err := c.FindStack("MOJO")
	require.NoError(t, err)
	assert.Equal(t, "maven-plugin", kind.Name)
}

func TestLoad_UnknownActionReference(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "c.yaml", []byte(`
kinds:
  - name: library
    description: Library
    stacks:
      - name: LIB_BROKEN
        description: Broken
        actions: [LIB, does-not-exist]
`), 0o644))

	_, err := Load(fs, "c.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
	assert.Contains(t, err.Error(), "does-not-exist")
}

func TestLoad_SchemaViolation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"stack without actions", `
kinds:
  - name: library
    description: Library
    stacks:
      - name: EMPTY
        description: Empty
        actions: []
`},
		{"bad packaging", `
kinds:
  - name: library
    description: Library
    stacks:
      - name: ZIP
        description: Zip
        packaging: zip
        actions: [LIB]
`},
		{"folder without property", `
actions:
  - name: broken
    folder: { template: src }
`},
		{"unknown field", `
actions:
  - name: broken
    script: rm -rf /
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "c.yaml", []byte(tt.doc), 0o644))

			_, err := Load(fs, "c.yaml")
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrValidation))
		})
	}
}

func TestLoad_ActionWithTwoVariants(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "c.yaml", []byte(`
actions:
  - name: both
    dependency: "<a/>"
    plugin: "<b/>"
`), 0o644))

	_, err := Load(fs, "c.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
	assert.Contains(t, err.Error(), "exactly one")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "missing.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrIO))
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "  a\n\n    b\n", indent("a\n\n  b\n", 2))
	assert.Equal(t, "  a\n", indent("a", 2))
}
