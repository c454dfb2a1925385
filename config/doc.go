// Package config loads the server's store credentials and settings.
//
// Settings come from two layers: an optional YAML file and SHOPIFY_*
// environment variables, with the environment winning wherever both set
// a value. The binary loads a .env file before calling into this
// package, so .env entries arrive through the environment layer.
//
// # Variables
//
//   - SHOPIFY_STORE_DOMAIN — myshopify domain (required)
//   - SHOPIFY_ACCESS_TOKEN — Admin API access token (required)
//   - SHOPIFY_API_VERSION — Admin API version (optional)
//   - SHOPIFY_SCHEMA_CACHE_DIR — schema cache directory (optional)
//
// [Config.Validate] fails fast with [ErrMissingStoreDomain] or
// [ErrMissingAccessToken] before any network I/O is attempted.
package config
