package config

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap/zapcore"
)

// ValidateConfig performs validation on the complete configuration
func ValidateConfig(config *Config) error {
	if err := validateLog(&config.Log); err != nil {
		return fmt.Errorf("log config validation failed: %w", err)
	}
	if err := validateCodec(&config.Codec); err != nil {
		return fmt.Errorf("codec config validation failed: %w", err)
	}
	if err := validateAddress(&config.Address); err != nil {
		return fmt.Errorf("address config validation failed: %w", err)
	}
	if err := validateStore(&config.Store); err != nil {
		return fmt.Errorf("store config validation failed: %w", err)
	}
	return nil
}

func validateLog(c *LogConfig) error {
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("invalid level %q", c.Level)
	}
	return nil
}

func validateCodec(c *CodecConfig) error {
	if c.MaxStringLength < 0 || int64(c.MaxStringLength) > math.MaxInt32 {
		return fmt.Errorf("max_string_length must be between 0 and %d, got %d", math.MaxInt32, c.MaxStringLength)
	}
	return nil
}

func validateAddress(c *AddressConfig) error {
	if c.Version < 0 || c.Version > math.MaxUint8 {
		return fmt.Errorf("version must fit in one byte, got %d", c.Version)
	}
	return nil
}

func validateStore(c *StoreConfig) error {
	if strings.TrimSpace(c.Path) == "" {
		return fmt.Errorf("path is required")
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("cache_size must be positive, got %d", c.CacheSize)
	}
	if c.BlockCacheBytes < 0 {
		return fmt.Errorf("block_cache_bytes must not be negative, got %d", c.BlockCacheBytes)
	}
	return nil
}
