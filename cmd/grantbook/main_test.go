package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestLoadDotEnv_AppliesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GRANTBOOK_TEST_CURRENCY=€\n"), 0o600))
	t.Setenv("GRANTBOOK_TEST_CURRENCY", "")
	require.NoError(t, os.Unsetenv("GRANTBOOK_TEST_CURRENCY"))

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "€", os.Getenv("GRANTBOOK_TEST_CURRENCY"))
}

func TestLoadDotEnv_MalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GRANTBOOK-DB=/tmp/grantbook.db\n"), 0o600))

	err := loadDotEnv(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading "+path)
}

func TestLoadDotEnv_DirectoryFails(t *testing.T) {
	assert.Error(t, loadDotEnv(t.TempDir()))
}
