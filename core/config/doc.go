// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file on first use and uses the caarlos0/env library
// for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/pesach-orders/core/config"
//
//	type MailConfig struct {
//		From        string `env:"SMTP_FROM,required,notEmpty"`
//		OrdersEmail string `env:"ORDERS_EMAIL,required,notEmpty"`
//	}
//
//	func main() {
//		var cfg MailConfig
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
// Each configuration type is loaded only once per process:
//
//	var cfg1 MailConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 MailConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently, so a sub-config that is only
// needed for one code path (for example SMTP settings when the Postmark
// transport is selected) is never parsed, and its required variables are
// never demanded.
//
// A failed load is not cached; fixing the environment and calling Load again
// parses the type anew.
package config
