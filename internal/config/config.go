package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables that override file settings.
const EnvPrefix = "MHCWRAP_"

// Defaults used when neither the config file nor the environment set a value.
const (
	DefaultEnvName        = "mhcflurry_env"
	DefaultDefinitionFile = "environment.yml"
	DefaultConda          = "conda"
	DefaultPredictTool    = "mhcflurry-predict-scan"
	DefaultDownloadsTool  = "mhcflurry-downloads"
	DefaultFallbackOutput = "./tempfile.csv"
)

// Environment describes the isolated conda runtime the tools run in.
type Environment struct {
	Name           string   `yaml:"name" mapstructure:"name"`
	DefinitionFile string   `yaml:"definition_file" mapstructure:"definition_file"`
	Conda          string   `yaml:"conda" mapstructure:"conda"`
	PredictTool    string   `yaml:"predict_tool" mapstructure:"predict_tool"`
	DownloadsTool  string   `yaml:"downloads_tool" mapstructure:"downloads_tool"`
	FetchBundles   []string `yaml:"fetch_bundles" mapstructure:"fetch_bundles"`
}

// Config is the full wrapper configuration.
type Config struct {
	Environment    Environment `yaml:"environment" mapstructure:"environment"`
	FallbackOutput string      `yaml:"fallback_output" mapstructure:"fallback_output"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Environment: Environment{
			Name:           DefaultEnvName,
			DefinitionFile: DefaultDefinitionFile,
			Conda:          DefaultConda,
			PredictTool:    DefaultPredictTool,
			DownloadsTool:  DefaultDownloadsTool,
		},
		FallbackOutput: DefaultFallbackOutput,
	}
}

// Load reads a configuration file (YAML or JSON), applies MHCWRAP_* overrides
// from the process environment and fills the remaining fields with defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	return load(path, os.Environ())
}

func load(path string, environ []string) (Config, error) {
	raw := map[string]any{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		default:
			if strings.ToLower(filepath.Ext(path)) == ".json" {
				err = json.Unmarshal(data, &raw)
			} else {
				err = yaml.Unmarshal(data, &raw)
			}
			if err != nil {
				return Config{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
			}
			if raw == nil {
				raw = map[string]any{}
			}
		}
	}

	applyEnv(raw, environ)

	cfg := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// envKeys maps environment variable suffixes to their config location.
var envKeys = map[string][]string{
	"ENV_NAME":        {"environment", "name"},
	"ENV_FILE":        {"environment", "definition_file"},
	"CONDA":           {"environment", "conda"},
	"PREDICT_TOOL":    {"environment", "predict_tool"},
	"DOWNLOADS_TOOL":  {"environment", "downloads_tool"},
	"FETCH_BUNDLES":   {"environment", "fetch_bundles"},
	"FALLBACK_OUTPUT": {"fallback_output"},
}

func applyEnv(raw map[string]any, environ []string) {
	for _, kv := range environ {
		key, val, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		path, known := envKeys[strings.TrimPrefix(key, EnvPrefix)]
		if !known {
			continue
		}
		setPath(raw, path, val)
	}
}

func setPath(m map[string]any, path []string, val any) {
	for _, key := range path[:len(path)-1] {
		next, ok := m[key].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[key] = next
		}
		m = next
	}
	m[path[len(path)-1]] = val
}

// Validate checks that the fields needed to build commands are set.
func (c Config) Validate() error {
	var missing []string
	if c.Environment.Name == "" {
		missing = append(missing, "environment.name")
	}
	if c.Environment.Conda == "" {
		missing = append(missing, "environment.conda")
	}
	if c.Environment.PredictTool == "" {
		missing = append(missing, "environment.predict_tool")
	}
	if c.Environment.DownloadsTool == "" {
		missing = append(missing, "environment.downloads_tool")
	}
	if c.FallbackOutput == "" {
		missing = append(missing, "fallback_output")
	}
	if len(missing) > 0 {
		return fmt.Errorf("invalid config: empty %s", strings.Join(missing, ", "))
	}
	return nil
}
