// Package config manages zikkycal user configuration.
//
// It handles:
//   - Loading preferences from the config file and ZIKKYCAL_* environment variables
//   - Saving preferences changed from the TUI (theme) or the CLI
//   - Validating keys and values for `zikkycal config get/set`
package config
