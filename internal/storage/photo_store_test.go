package storage

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataURI(t *testing.T) {
	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("gambar"))
	mime, data, err := ParseDataURI(payload)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, []byte("gambar"), data)
}

func TestParseDataURIInvalid(t *testing.T) {
	for _, payload := range []string{
		"",
		"gambar.png",
		"data:image/png;base64,bukan base64!!!",
		"data:;base64,aGFsbw==",
	} {
		_, _, err := ParseDataURI(payload)
		assert.ErrorIs(t, err, ErrInvalidDataURI, payload)
	}
}

func TestSaveWritesFile(t *testing.T) {
	dir := t.TempDir()
	store := NewPhotoStore(dir, "/uploads/attendance")

	payload := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("foto"))
	path, err := store.Save(payload, "u1_2025-03-10_checkin")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, "/uploads/attendance/u1_2025-03-10_checkin_"))
	assert.True(t, strings.HasSuffix(path, ".jpeg"))

	filename := path[strings.LastIndex(path, "/")+1:]
	content, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	assert.Equal(t, []byte("foto"), content)
}

func TestSaveCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store := NewPhotoStore(dir, "/uploads")

	payload := "data:application/pdf;base64," + base64.StdEncoding.EncodeToString([]byte("%PDF"))
	path, err := store.Save(payload, "u2_report")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".pdf"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
