package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from multiple sources in priority order:
// 1. Default values
// 2. Configuration file (neorpc.toml)
// 3. Dotenv files, then environment variables (NEORPC_ prefix)
func LoadConfig(paths ConfigPaths) (*Config, error) {
	v := viper.New()

	// 1. Set defaults first
	setDefaults(v)

	// 2. Load main configuration file
	configPath, err := loadMainConfig(v, paths.Main)
	if err != nil {
		return nil, fmt.Errorf("failed to load main config: %w", err)
	}

	// 3. Set up environment variable support. Dotenv never overrides
	// variables already present in the process environment.
	for _, f := range paths.EnvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}
	v.SetEnvPrefix("NEORPC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Unmarshal into struct
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.configPath = configPath

	// 5. Validate the complete configuration
	if err := ValidateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// loadMainConfig reads the TOML file. An explicit path must exist; the
// default file is optional. It returns the path actually read.
func loadMainConfig(v *viper.Viper, configPath string) (string, error) {
	explicit := configPath != ""
	if !explicit {
		configPath = defaultConfigFile
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if explicit {
			return "", fmt.Errorf("config file does not exist: %s", configPath)
		}
		return "", nil
	}

	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	return configPath, nil
}
