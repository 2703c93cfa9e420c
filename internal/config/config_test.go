package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves the test into an empty directory so no stray neorpc.toml or .env is read.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t)

	config, err := LoadConfig(DefaultConfigPaths())
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, 1<<20, config.Codec.MaxStringLength)
	assert.Equal(t, byte(0x35), config.AddressVersion())
	assert.Equal(t, "./neorpc-data", config.Store.Path)
	assert.Equal(t, 1024, config.Store.CacheSize)
	assert.Equal(t, "lz4", config.Store.Compressor())
	assert.Empty(t, config.ConfigPath())
}

func TestLoadConfigFile(t *testing.T) {
	dir := chdir(t)

	content := `
[log]
level = "debug"
development = true

[codec]
max_string_length = 256

[store]
path = "/var/lib/neorpc"
cache_size = 16
compress_payloads = false
`
	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadConfig(ConfigPaths{Main: path})
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.True(t, config.Log.Development)
	assert.Equal(t, 256, config.Codec.MaxStringLength)
	assert.Equal(t, "/var/lib/neorpc", config.Store.Path)
	assert.Equal(t, 16, config.Store.CacheSize)
	assert.Equal(t, "none", config.Store.Compressor())
	assert.Equal(t, byte(0x35), config.AddressVersion(), "unset keys keep defaults")
	assert.Equal(t, path, config.ConfigPath())
}

func TestLoadConfigDefaultFileIsPickedUp(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, defaultConfigFile), []byte("[store]\ncache_size = 3\n"), 0644))

	config, err := LoadConfig(ConfigPaths{})
	require.NoError(t, err)
	assert.Equal(t, 3, config.Store.CacheSize)
	assert.Equal(t, defaultConfigFile, config.ConfigPath())
}

func TestLoadConfigEnvironmentOverride(t *testing.T) {
	chdir(t)
	t.Setenv("NEORPC_STORE_CACHE_SIZE", "77")
	t.Setenv("NEORPC_LOG_LEVEL", "warn")

	config, err := LoadConfig(ConfigPaths{})
	require.NoError(t, err)
	assert.Equal(t, 77, config.Store.CacheSize)
	assert.Equal(t, "warn", config.Log.Level)
}

func TestLoadConfigDotenv(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("NEORPC_STORE_PATH=/from/dotenv\n"), 0644))
	t.Cleanup(func() { _ = os.Unsetenv("NEORPC_STORE_PATH") })

	config, err := LoadConfig(DefaultConfigPaths())
	require.NoError(t, err)
	assert.Equal(t, "/from/dotenv", config.Store.Path)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := chdir(t)

	_, err := LoadConfig(ConfigPaths{Main: filepath.Join(dir, "absent.toml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[address]\nversion = 300\n"), 0644))
	_, err = LoadConfig(ConfigPaths{Main: bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "address")
}

func TestValidateConfig(t *testing.T) {
	valid := func() Config {
		return Config{
			Log:     LogConfig{Level: "info"},
			Address: AddressConfig{Version: 0x35},
			Store:   StoreConfig{Path: "data", CacheSize: 1},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"bad level", func(c *Config) { c.Log.Level = "chatty" }, "log"},
		{"negative string cap", func(c *Config) { c.Codec.MaxStringLength = -1 }, "max_string_length"},
		{"empty store path", func(c *Config) { c.Store.Path = " " }, "path is required"},
		{"zero cache", func(c *Config) { c.Store.CacheSize = 0 }, "cache_size"},
		{"negative block cache", func(c *Config) { c.Store.BlockCacheBytes = -1 }, "block_cache_bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := ValidateConfig(&c)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
