package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/aocgen-labs/aocgen/internal/branding"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Configuration keys.
const (
	KeyFetchEnabled   = "fetch.enabled"
	KeyFetchURL       = "fetch.url"
	KeyFetchTimeout   = "fetch.timeout"
	KeyFetchUserAgent = "fetch.user_agent"
	KeyTitlesCache    = "titles.cache"
	KeyPackage        = "registry.package"
	KeyImportPath     = "registry.import_path"
	KeyRequires       = "requires"
)

type kind int

const (
	kindString kind = iota
	kindBool
	kindDuration
)

// keys lists every accepted key with its value kind.
var keys = map[string]kind{
	KeyFetchEnabled:   kindBool,
	KeyFetchURL:       kindString,
	KeyFetchTimeout:   kindDuration,
	KeyFetchUserAgent: kindString,
	KeyTitlesCache:    kindBool,
	KeyPackage:        kindString,
	KeyImportPath:     kindString,
	KeyRequires:       kindString,
}

// ErrUnknownKey is returned when a key is not part of the configuration.
var ErrUnknownKey = errors.New("unknown config key")

// Keys returns every accepted configuration key, sorted.
func Keys() []string {
	out := make([]string, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Settings is the typed view of the loaded configuration.
type Settings struct {
	FetchEnabled   bool
	FetchURL       string
	FetchTimeout   time.Duration
	FetchUserAgent string
	TitlesCache    bool
	Package        string // empty means infer from the workspace
	ImportPath     string // empty means infer from go.mod
	Requires       string // semver constraint on the aocgen version
}

// Dir returns the path to the aocgen home directory (~/.aocgen/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the user config file (~/.aocgen/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// WorkspacePath returns the workspace config file under root (.aocgen.yaml).
func WorkspacePath(root string) string {
	return filepath.Join(root, "."+branding.CLIName()+"."+fileType)
}

// EnsureDir creates the aocgen home directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault(KeyFetchEnabled, true)
	viper.SetDefault(KeyFetchURL, branding.PuzzleURL())
	viper.SetDefault(KeyFetchTimeout, "10s")
	viper.SetDefault(KeyFetchUserAgent, "")
	viper.SetDefault(KeyTitlesCache, true)
	viper.SetDefault(KeyPackage, "")
	viper.SetDefault(KeyImportPath, "")
	viper.SetDefault(KeyRequires, "")
}

// Load initializes Viper from the user file, the workspace file under root,
// the workspace .env file, and the environment. Missing files are fine; a
// file that fails schema validation is an error.
func Load(root string) error {
	// Variables already set in the environment win over .env.
	if err := godotenv.Load(filepath.Join(root, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()

	for _, path := range []string{FilePath(), WorkspacePath(root)} {
		if err := mergeFile(path); err != nil {
			return err
		}
	}
	return nil
}

func mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if !result.Valid {
		return &InvalidFileError{Path: path, Issues: result.Issues}
	}

	if err := viper.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("merging config file %s: %w", path, err)
	}
	return nil
}

// Current returns the loaded configuration.
func Current() Settings {
	return Settings{
		FetchEnabled:   viper.GetBool(KeyFetchEnabled),
		FetchURL:       viper.GetString(KeyFetchURL),
		FetchTimeout:   viper.GetDuration(KeyFetchTimeout),
		FetchUserAgent: viper.GetString(KeyFetchUserAgent),
		TitlesCache:    viper.GetBool(KeyTitlesCache),
		Package:        viper.GetString(KeyPackage),
		ImportPath:     viper.GetString(KeyImportPath),
		Requires:       viper.GetString(KeyRequires),
	}
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) (string, error) {
	if _, ok := keys[key]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return viper.GetString(key), nil
}

// Set writes a key-value pair to the user config file. The value is parsed
// according to the key's type before it is stored.
func Set(key, value string) error {
	typed, err := parseValue(key, value)
	if err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	// Write through a separate instance so merged workspace values and
	// defaults never leak into the user file.
	configFile := FilePath()
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType(fileType)
	if _, err := os.Stat(configFile); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	v.Set(key, typed)
	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, typed)
	return nil
}

func parseValue(key, value string) (any, error) {
	k, ok := keys[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	switch k {
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%s expects true or false, got %q", key, value)
		}
		return b, nil
	case kindDuration:
		if _, err := time.ParseDuration(value); err != nil {
			return nil, fmt.Errorf("%s expects a duration such as 10s, got %q", key, value)
		}
		return value, nil
	default:
		return value, nil
	}
}
