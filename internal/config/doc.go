// Package config manages aocgen settings. User-level values live in
// ~/.aocgen/config.yaml and a workspace may override them with .aocgen.yaml
// at its root. Environment variables prefixed with AOCGEN_ (also read from a
// .env file in the workspace) take precedence over both files.
package config
