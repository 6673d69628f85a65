package filestorage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	ls, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)
	return ls
}

func TestSaveReturnsURLReference(t *testing.T) {
	ls := newTestStorage(t)

	ref, err := ls.Save("profile-pictures/uid-1/avatar.jpg", strings.NewReader("jpeg bytes"), SaveOptions{})

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/profile-pictures/uid-1/avatar.jpg", ref)

	data, err := os.ReadFile(filepath.Join(ls.basePath, "profile-pictures", "uid-1", "avatar.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))
}

func TestSaveTreatsCacheControlAsAdvisory(t *testing.T) {
	ls := newTestStorage(t)

	ref, err := ls.Save("a/b.txt", strings.NewReader("x"), SaveOptions{CacheControl: "3600"})

	require.NoError(t, err)
	assert.NotEmpty(t, ref, "local storage accepts a cache policy without acting on it")
}

func TestSaveWithoutOverwriteRejectsExisting(t *testing.T) {
	ls := newTestStorage(t)

	_, err := ls.Save("a/b.txt", strings.NewReader("first"), SaveOptions{})
	require.NoError(t, err)

	_, err = ls.Save("a/b.txt", strings.NewReader("second"), SaveOptions{})
	require.Error(t, err)
}

func TestSaveWithOverwriteReplaces(t *testing.T) {
	ls := newTestStorage(t)

	_, err := ls.Save("a/b.txt", strings.NewReader("first"), SaveOptions{})
	require.NoError(t, err)

	_, err = ls.Save("a/b.txt", strings.NewReader("second"), SaveOptions{Overwrite: true})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(ls.basePath, "a", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestSaveStripsPathTraversal(t *testing.T) {
	ls := newTestStorage(t)

	ref, err := ls.Save("../../etc/passwd", strings.NewReader("x"), SaveOptions{})

	require.NoError(t, err)
	assert.NotContains(t, ref, "..")
	_, statErr := os.Stat(filepath.Join(ls.basePath, "etc", "passwd"))
	assert.NoError(t, statErr, "the blob lands inside the base path")
}

func TestDeleteIsIdempotent(t *testing.T) {
	ls := newTestStorage(t)

	_, err := ls.Save("a/b.txt", strings.NewReader("x"), SaveOptions{})
	require.NoError(t, err)

	require.NoError(t, ls.Delete("a/b.txt"))
	require.NoError(t, ls.Delete("a/b.txt"), "deleting an absent blob is not an error")
	require.NoError(t, ls.Delete(""))
}
