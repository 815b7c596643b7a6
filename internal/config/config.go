package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/sirupsen/logrus"
	"github.com/translator-tools/reasoner-converter/pkg/convert"
	"sigs.k8s.io/yaml"
)

const (
	appName = "reasoner-converter"

	FormatJSON = "json"
	FormatYAML = "yaml"

	schemaURL = "config.schema.json"
)

//go:embed config.schema.json
var schemaBytes []byte

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.LoadURL = func(u string) (io.ReadCloser, error) {
		return nil, fmt.Errorf("loading %s: external schema references are forbidden", u)
	}
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaBytes)); err != nil {
		return nil, fmt.Errorf("invalid config schema: %w", err)
	}
	return compiler.Compile(schemaURL)
})

type Config struct {
	Log     *logConfig     `json:"log,omitempty"`
	Output  *outputConfig  `json:"output,omitempty"`
	Schemas *schemasConfig `json:"schemas,omitempty"`
}

type logConfig struct {
	Level string `json:"level,omitempty"`
}

type outputConfig struct {
	// Format is the encoding of converted documents, json or yaml.
	Format string `json:"format,omitempty"`
	// Indent is the JSON indentation width; zero prints compact JSON.
	Indent int `json:"indent"`
}

// schemasConfig holds OpenAPI document locations (paths or http(s) URLs) used
// by validate. An empty location selects the bundled copy.
type schemasConfig struct {
	V0 string `json:"v0,omitempty"`
	V1 string `json:"v1,omitempty"`
}

func ConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		if home, herr := os.UserHomeDir(); herr == nil {
			return filepath.Join(home, ".config", appName)
		}
		return filepath.Join(".", "."+appName)
	}
	return filepath.Join(dir, appName)
}

func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

func NewDefault() *Config {
	return &Config{
		Log: &logConfig{
			Level: "info",
		},
		Output: &outputConfig{
			Format: FormatJSON,
			Indent: 2,
		},
		Schemas: &schemasConfig{},
	}
}

func NewFromFile(cfgFile string) (*Config, error) {
	cfg, err := Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault reads cfgFile when it exists and falls back to the defaults
// otherwise. Nothing is written to disk.
func LoadOrDefault(cfgFile string) (*Config, error) {
	if _, err := os.Stat(cfgFile); errors.Is(err, fs.ErrNotExist) {
		return NewDefault(), nil
	}
	return NewFromFile(cfgFile)
}

// Load decodes a YAML config file over the defaults. The document is checked
// against the config schema before decoding.
func Load(cfgFile string) (*Config, error) {
	contents, err := os.ReadFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	doc, err := yaml.YAMLToJSON(contents)
	if err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, fmt.Errorf("%s: %w", cfgFile, err)
	}
	c := NewDefault()
	if err := json.Unmarshal(doc, c); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return c, nil
}

func Save(cfg *Config, cfgFile string) error {
	contents, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(cfgFile), os.FileMode(0755)); err != nil {
		return fmt.Errorf("creating directory for config file: %w", err)
	}
	if err := os.WriteFile(cfgFile, contents, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func Validate(cfg *Config) error {
	doc, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := validateDocument(doc); err != nil {
		return err
	}
	if cfg.Log != nil && cfg.Log.Level != "" {
		if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("invalid config: log.level: %w", err)
		}
	}
	return nil
}

func validateDocument(doc []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SchemaLocation returns the configured OpenAPI document location for the
// given format version, or "" for the bundled copy.
func (cfg *Config) SchemaLocation(version convert.Version) string {
	if cfg.Schemas == nil {
		return ""
	}
	switch version {
	case convert.V0:
		return cfg.Schemas.V0
	case convert.V1:
		return cfg.Schemas.V1
	}
	return ""
}

func (cfg *Config) String() string {
	contents, err := json.Marshal(cfg)
	if err != nil {
		return "<error>"
	}
	return string(contents)
}
