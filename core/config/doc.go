// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/creditdost/portal/core/config"
//
//	type APIConfig struct {
//		BaseURL string        `env:"CREDITDOST_API_URL" envDefault:"https://api.creditdost.com"`
//		Timeout time.Duration `env:"CREDITDOST_API_TIMEOUT" envDefault:"30s"`
//	}
//
//	func main() {
//		var cfg APIConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 APIConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 APIConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently, so api, session, and logging
// configuration can each live in their own struct.
package config
