package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukimsanov/Crypto-List/pkg/types"
)

func TestLoad_defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8000", cfg.Server.Address)
	assert.Equal(t, types.ExchangeKraken, cfg.Exchange.Name)
}

func TestLoad_file(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  address: ":9000"
exchange:
  name: binance
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Address)
	assert.Equal(t, types.ExchangeBinance, cfg.Exchange.Name)
}

func TestLoad_partialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
exchange:
  name: binance
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":8000", cfg.Server.Address)
	assert.Equal(t, types.ExchangeBinance, cfg.Exchange.Name)
}

func TestLoad_errors(t *testing.T) {
	_, err := Load("does-not-exist.yaml")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}
