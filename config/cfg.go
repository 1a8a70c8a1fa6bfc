package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/rupor-github/gencfg"
	yaml "gopkg.in/yaml.v3"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	ExtractionConfig struct {
		Fields                []string  `yaml:"fields" validate:"dive,required"`
		Format                OutputFmt `yaml:"format" validate:"gte=0"`
		Indent                int       `yaml:"indent" validate:"gte=0,lte=8"`
		OmitAbsent            bool      `yaml:"omit_absent"`
		Workers               int       `yaml:"workers" validate:"gte=1,lte=256"`
		OutputNameTemplate    string    `yaml:"output_name_template"`
		FileNameTransliterate bool      `yaml:"file_name_transliterate"`
		KeepDirs              bool      `yaml:"keep_dirs"`
	}

	Config struct {
		Version    int              `yaml:"version" validate:"eq=1"`
		Extraction ExtractionConfig `yaml:"extraction"`
		Logging    LoggingConfig    `yaml:"logging"`
		Reporting  ReporterConfig   `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
		if err := cfg.checkTemplates(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// checkTemplates makes sure templates left unexpanded for later per document
// use could at least be parsed.
func (cfg *Config) checkTemplates() error {
	if len(cfg.Extraction.OutputNameTemplate) == 0 {
		return nil
	}
	if _, err := template.New(string(OutputNameTemplateFieldName)).Funcs(sprig.FuncMap()).Parse(cfg.Extraction.OutputNameTemplate); err != nil {
		return fmt.Errorf("unable to parse template field %s: %w", OutputNameTemplateFieldName, err)
	}
	return nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
