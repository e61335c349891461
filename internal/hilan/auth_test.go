package hilan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestTokenCacheRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tok, err := loadToken()
	require.NoError(t, err)
	assert.Nil(t, tok, "missing cache must not be an error")

	want := &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
	}
	require.NoError(t, saveToken(want))

	got, err := loadToken()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.AccessToken, got.AccessToken)
	assert.Equal(t, want.RefreshToken, got.RefreshToken)

	path, err := tokenFilePath()
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file must not survive the swap")
}

func TestLoadTokenCorruptCache(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path, err := tokenFilePath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err = loadToken()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete it to log in again")
}
