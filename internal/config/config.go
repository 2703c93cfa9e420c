package config

// Config represents the complete neorpc configuration
type Config struct {
	Log     LogConfig     `toml:"log" mapstructure:"log"`
	Codec   CodecConfig   `toml:"codec" mapstructure:"codec"`
	Address AddressConfig `toml:"address" mapstructure:"address"`
	Store   StoreConfig   `toml:"store" mapstructure:"store"`

	// Internal fields
	configPath string
}

// LogConfig selects the zap level and encoder.
type LogConfig struct {
	Level       string `toml:"level" mapstructure:"level"`
	Development bool   `toml:"development" mapstructure:"development"`
}

// CodecConfig bounds what the binary parser accepts.
type CodecConfig struct {
	// MaxStringLength caps a variable-length string prefix in bytes; 0 disables the cap.
	MaxStringLength int `toml:"max_string_length" mapstructure:"max_string_length"`
}

// AddressConfig selects the address version byte.
type AddressConfig struct {
	Version int `toml:"version" mapstructure:"version"`
}

// StoreConfig locates and tunes the pebble store.
type StoreConfig struct {
	Path             string `toml:"path" mapstructure:"path"`
	CacheSize        int    `toml:"cache_size" mapstructure:"cache_size"`
	BlockCacheBytes  int64  `toml:"block_cache_bytes" mapstructure:"block_cache_bytes"`
	CompressPayloads bool   `toml:"compress_payloads" mapstructure:"compress_payloads"`
}

// ConfigPaths holds the file locations LoadConfig reads.
type ConfigPaths struct {
	// Main is the TOML file. Empty means "neorpc.toml" in the working
	// directory, which may be absent.
	Main string
	// EnvFiles are dotenv files loaded before environment lookup; missing files are skipped.
	EnvFiles []string
}

// DefaultConfigPaths returns the standard locations.
func DefaultConfigPaths() ConfigPaths {
	return ConfigPaths{EnvFiles: []string{".env", ".env.local"}}
}

// ConfigPath returns the file the configuration was read from, if any.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// AddressVersion returns the configured version as a byte.
func (c *Config) AddressVersion() byte {
	return byte(c.Address.Version)
}

// Compressor names the payload compressor the store should use.
func (c *StoreConfig) Compressor() string {
	if c.CompressPayloads {
		return "lz4"
	}
	return "none"
}
