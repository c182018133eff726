// Package branding provides compile-time identity values for the CLI.
//
// Values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Generated code refers to the runtime package by the
// module path declared here, so a fork only needs to edit the YAML.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	GitHubRepo  string `yaml:"github_repo"`
	PuzzleURL   string `yaml:"puzzle_url"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "aocgen",
			DisplayName: "aocgen",
			Description: "Registry generator and scaffolder for Advent of Code workspaces",
			HomeDir:     ".aocgen",
			EnvPrefix:   "AOCGEN",
			GoModule:    "github.com/aocgen-labs/aocgen",
			GitHubRepo:  "aocgen-labs/aocgen",
			PuzzleURL:   "https://adventofcode.com/%d/day/%d",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "aocgen").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".aocgen").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "AOCGEN").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path of this tool.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// PuzzleURL returns the fmt pattern of a puzzle page, taking year then day.
func PuzzleURL() string { load(); return defaults.PuzzleURL }

// RuntimeImport returns the import path generated code uses for the
// dispatch runtime.
func RuntimeImport() string { return GoModule() + "/pkg/dispatch" }

// GeneratedHeader returns the marker line written at the top of generated files.
func GeneratedHeader() string {
	return "// Code generated by " + CLIName() + ". DO NOT EDIT."
}

// EnvVar returns a fully qualified env var name, e.g., EnvVar("ROOT") → "AOCGEN_ROOT".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
