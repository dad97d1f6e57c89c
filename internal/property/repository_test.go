package property

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_PutGet(t *testing.T) {
	repo := NewRepository()

	assert.True(t, repo.ContainsNot("srcMainJavaFolderName"))

	require.NoError(t, repo.Put("srcMainJavaFolderName", "src/main/java"))

	v, ok := repo.Get("srcMainJavaFolderName")
	assert.True(t, ok)
	assert.Equal(t, "src/main/java", v)
	assert.False(t, repo.ContainsNot("srcMainJavaFolderName"))
	assert.True(t, repo.Contains("srcMainJavaFolderName"))
}

func TestRepository_AbsentIsDistinctFromEmpty(t *testing.T) {
	repo := NewRepository()
	require.NoError(t, repo.Put("blank", ""))

	v, ok := repo.GetString("blank")
	assert.True(t, ok)
	assert.Empty(t, v)

	_, ok = repo.GetString("missing")
	assert.False(t, ok)
}

func TestRepository_SetOnce(t *testing.T) {
	repo := NewRepository()
	require.NoError(t, repo.Put("k", "v1"))

	// identical value is idempotent
	assert.NoError(t, repo.Put("k", "v1"))

	err := repo.Put("k", "v2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))

	v, _ := repo.GetString("k")
	assert.Equal(t, "v1", v, "conflicting put must not overwrite")
}

func TestRepository_GetStringFormatsNonStrings(t *testing.T) {
	repo := NewRepository()
	require.NoError(t, repo.Put("n", 42))

	v, ok := repo.GetString("n")
	assert.True(t, ok)
	assert.Equal(t, "42", v)
}

func TestRepository_Keys(t *testing.T) {
	repo := NewRepository()
	require.NoError(t, repo.Put("b", "1"))
	require.NoError(t, repo.Put("a", "2"))

	assert.Equal(t, []string{"a", "b"}, repo.Keys())
}
