// Package config loads gissy configuration.
//
// It handles:
//   - Discovery of .gissyrc and friends from the working directory upwards
//   - Defaults, GISSY_* environment overrides and flag overrides (via viper)
//   - .env loading for credentials (via godotenv)
//   - Writing a starter file for `gissy config init`
package config
