package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestFileSourceGetSet(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "en1.json", `{"set":"en1","desc":"Base Set","cards":[{"num":"001","name":"Potion"}]}`)

	src := NewFileSource(dir)
	set, err := src.GetSet(context.Background(), "en1")
	require.NoError(t, err)
	assert.Equal(t, "en1", set.Set)
	assert.Equal(t, "Base Set", set.Desc)
	require.Len(t, set.Cards, 1)
	assert.Equal(t, "Potion", set.Cards[0].Name)
}

func TestFileSourceMissing(t *testing.T) {
	src := NewFileSource(t.TempDir())
	_, err := src.GetSet(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileSourceRejectsPathElements(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "en1.json", `{"set":"en1","cards":[]}`)

	src := NewFileSource(dir)
	for _, code := range []string{"../en1", "sub/en1", `sub\en1`} {
		_, err := src.GetSet(context.Background(), code)
		assert.ErrorIs(t, err, ErrNotFound, code)
	}
}

func TestFileSourceBadDocument(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "bad.json", `{not json`)
	writeDoc(t, dir, "en1.json", `{"set":"other","cards":[]}`)

	src := NewFileSource(dir)

	_, err := src.GetSet(context.Background(), "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	// Declared set code must match the filename.
	_, err = src.GetSet(context.Background(), "en1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"other"`)
}

func TestFileSourceCodes(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "jp1.json", `{"set":"jp1","cards":[]}`)
	writeDoc(t, dir, "en1.json", `{"set":"en1","cards":[]}`)
	writeDoc(t, dir, "notes.txt", "ignore me")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	src := NewFileSource(dir)
	codes, err := src.Codes()
	require.NoError(t, err)
	assert.Equal(t, []string{"en1", "jp1"}, codes)
}
