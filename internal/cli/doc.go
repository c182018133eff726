// Package cli defines the Cobra command tree for the aocgen CLI. Each file
// registers one top-level command with the root command. Commands delegate
// to the internal packages and only handle flags, configuration and output.
package cli
