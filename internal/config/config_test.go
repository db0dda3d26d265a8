package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashport.yaml")
	content := `
listen: ":9090"
tenants:
  - name: prod
    url: https://foo.live.example.com
    token: tok-1
    role: source
  - name: staging
    url: staging.live.example.com/
    token: tok-2
    role: destination
    insecure: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Listen)
	require.Len(t, cfg.Tenants, 2)
	assert.Equal(t, "prod", cfg.Tenants[0].Name)
	assert.Equal(t, "tok-2", cfg.Tenants[1].Token)
	assert.True(t, cfg.Tenants[1].Insecure)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Listen)
	assert.Empty(t, cfg.Tenants)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/does/not/exist.yaml")
	require.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: [unclosed"), 0o600))
	_, err := Load(path)
	require.Error(t, err)
}
