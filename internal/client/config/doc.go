// Package config loads runtime configuration for the AnimeFacts CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Optional dotenv file (see parseEnv) selected via -e or -env, or ".env"
//     in the working directory when present.
//  4. Process environment variables prefixed with ANIMEFACTS_.
//  5. Command-line flags (see parseFlags), which override earlier values.
//
// After all sources are applied, Resolve picks the API base URL for the
// configured mode once; nothing downstream looks at the mode again.
//
// Supported flags
//
//	-m string   development or production
//	-d string   development API base URL
//	-p string   production API base URL
//	-s string   session database path
//	-l string   log level
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so the value can be
// either a string like "10s" or integer nanoseconds:
//
//	{
//	  "mode": "production",
//	  "prod_api_url": "https://anime-facts.example.org/api/v1",
//	  "storage_path": ".animefacts/session.db",
//	  "request_timeout": "10s"
//	}
//
// Environment
//
//	ANIMEFACTS_MODE, ANIMEFACTS_DEV_API_URL, ANIMEFACTS_PROD_API_URL,
//	ANIMEFACTS_STORE, ANIMEFACTS_LOG_LEVEL, ANIMEFACTS_REQUEST_TIMEOUT
package config
