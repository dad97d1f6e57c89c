package generator

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshmaven/cli/internal/action"
	oerrors "github.com/freshmaven/cli/internal/errors"
	"github.com/freshmaven/cli/internal/property"
	"github.com/freshmaven/cli/internal/templates"
)

func TestRenderFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	props := property.NewRepository()
	require.NoError(t, props.Put(ProjectFolderProperty, "/work/demo"))
	require.NoError(t, props.Put("mainPackageFolderPathName"+PathSuffix, "/work/demo/src/main/java/com/example/demo"))

	ctx := templates.NewContext()
	ctx.Put(templates.KeyPackageName, "com.example.demo")
	ctx.Put(templates.KeyProgramNameUsedInPrintVersion, "Demo")
	ctx.Put(templates.KeyVersionOfApplication, "1.0.0-SNAPSHOT")

	files := []action.File{
		{Source: templates.ApplicationTemplate, Target: "Application.java", Property: "mainPackageFolderPathName"},
		{Source: templates.GitignoreTemplate, Target: ".gitignore", Property: ProjectFolderProperty},
	}

	written, err := RenderFiles(fs, files, nil, ctx, props, templates.NewEngine())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/work/demo/src/main/java/com/example/demo/Application.java",
		"/work/demo/.gitignore",
	}, written)

	data, err := afero.ReadFile(fs, "/work/demo/src/main/java/com/example/demo/Application.java")
	require.NoError(t, err)
	assert.Contains(t, string(data), "package com.example.demo;")
	assert.Contains(t, string(data), `System.out.println("Welcome to Demo!");`)
}

func TestRenderFiles_Filter(t *testing.T) {
	files := []action.File{
		{Source: "pom.vtl", Target: "pom.xml", Property: ProjectFolderProperty},
		{Source: "Application.vtl", Target: "Application.java", Property: "x"},
	}
	assert.True(t, IsPomFile(files[0]))
	assert.False(t, IsPomFile(files[1]))
	assert.True(t, IsNotPomFile(files[1]))
}

func TestRenderFiles_MissingDirectoryProperty(t *testing.T) {
	fs := afero.NewMemMapFs()
	files := []action.File{{Source: templates.ApplicationTemplate, Target: "Application.java", Property: "nowhere"}}

	_, err := RenderFiles(fs, files, nil, templates.NewContext(), property.NewRepository(), templates.NewEngine())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPropertyNotStored))
	assert.Contains(t, err.Error(), "nowherePath")
}

func TestRenderFiles_MissingTemplate(t *testing.T) {
	fs := afero.NewMemMapFs()
	props := property.NewRepository()
	require.NoError(t, props.Put(ProjectFolderProperty, "/work/demo"))
	files := []action.File{{Source: "nope.vtl", Target: "nope", Property: ProjectFolderProperty}}

	_, err := RenderFiles(fs, files, nil, templates.NewContext(), props, templates.NewEngine())
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrTemplate))

	ok, _ := afero.Exists(fs, "/work/demo/nope")
	assert.False(t, ok)
}

func TestRenderFiles_ReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	props := property.NewRepository()
	require.NoError(t, props.Put(ProjectFolderProperty, "/work/demo"))
	files := []action.File{{Source: templates.GitignoreTemplate, Target: ".gitignore", Property: ProjectFolderProperty}}

	_, err := RenderFiles(fs, files, nil, templates.NewContext(), props, templates.NewEngine())
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrIO))
}
