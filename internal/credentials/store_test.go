package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCreds(t *testing.T, dir, accountID, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, accountID+".creds"), []byte(content), 0o600))
}

func TestLoadAllReadsCredentialFiles(t *testing.T) {
	dir := t.TempDir()
	writeCreds(t, dir, "123", `{"access_token": "tok-123"}`)
	writeCreds(t, dir, "456", `{"access_token": "tok-456", "app_secret": "s"}`)

	store := NewStore(dir)
	require.NoError(t, store.LoadAll())

	token, ok := store.AccessToken("123")
	assert.True(t, ok)
	assert.Equal(t, "tok-123", token)

	creds := store.Get("456")
	assert.Equal(t, "tok-456", creds["access_token"])
	assert.Equal(t, "s", creds["app_secret"])
}

func TestLoadAllCreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "secrets")

	store := NewStore(dir)
	require.NoError(t, store.LoadAll())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLoadAllSkipsInvalidFiles(t *testing.T) {
	dir := t.TempDir()
	writeCreds(t, dir, "bom", `{"access_token": "tok"}`)
	writeCreds(t, dir, "ruim", `{nao é json`)

	store := NewStore(dir)
	require.NoError(t, store.LoadAll())

	_, ok := store.AccessToken("bom")
	assert.True(t, ok)

	_, ok = store.AccessToken("ruim")
	assert.False(t, ok)
}

func TestGetUnknownAccountReturnsEmptyMap(t *testing.T) {
	store := NewStore(t.TempDir())

	creds := store.Get("desconhecida")

	assert.NotNil(t, creds)
	assert.Empty(t, creds)
}

func TestReloadPicksUpNewToken(t *testing.T) {
	dir := t.TempDir()
	writeCreds(t, dir, "123", `{"access_token": "antigo"}`)

	store := NewStore(dir)
	require.NoError(t, store.LoadAll())

	writeCreds(t, dir, "123", `{"access_token": "novo"}`)
	store.Reload("123")

	token, ok := store.AccessToken("123")
	assert.True(t, ok)
	assert.Equal(t, "novo", token)
}

func TestAccessTokenEmptyValue(t *testing.T) {
	dir := t.TempDir()
	writeCreds(t, dir, "123", `{"access_token": ""}`)

	store := NewStore(dir)
	require.NoError(t, store.LoadAll())

	_, ok := store.AccessToken("123")
	assert.False(t, ok)
}
