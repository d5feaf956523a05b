// Package commands provides the command-line interface for the imgcrypt tool.
//
// It implements commands for:
//   - encryption
//   - decryption
//   - the demo round trip over every method
//   - listing the available methods
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands
