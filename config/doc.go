// Package config provides type-safe environment variable loading with
// per-type caching. A .env file is picked up automatically on first use.
//
//	type ServerConfig struct {
//		Port int `env:"PORT" envDefault:"8080"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
//
// Each configuration type is loaded once per application lifetime;
// subsequent Load calls for the same type return the cached value.
// Different types cache independently. The router.Config dispatcher
// settings are designed to be loaded through this package.
package config
