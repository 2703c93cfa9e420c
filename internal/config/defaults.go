package config

import "github.com/spf13/viper"

const defaultConfigFile = "neorpc.toml"

// setDefaults sets the values used when neither file nor environment provides one
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)

	// 1 MiB, well above any method or call flag name
	v.SetDefault("codec.max_string_length", 1<<20)

	// N3 mainnet and testnet share version 0x35
	v.SetDefault("address.version", 0x35)

	v.SetDefault("store.path", "./neorpc-data")
	v.SetDefault("store.cache_size", 1024)
	v.SetDefault("store.block_cache_bytes", 8<<20)
	v.SetDefault("store.compress_payloads", true)
}
