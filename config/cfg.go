package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	// FontFaceConfig points to TTF files for one text face. All four
	// variants must resolve for the face to be usable.
	FontFaceConfig struct {
		Regular    string `yaml:"regular" validate:"required_with=Bold Italic BoldItalic"`
		Bold       string `yaml:"bold,omitempty"`
		Italic     string `yaml:"italic,omitempty"`
		BoldItalic string `yaml:"bold_italic,omitempty"`
	}

	FontsConfig struct {
		Set string `yaml:"set" validate:"required,oneof=free accurate"`
		// Directory with TTF files for the accurate set. Ignored for the
		// free set which renders with the builtin PDF core fonts.
		Dir     string         `yaml:"dir,omitempty" sanitize:"path_clean" validate:"omitempty,dirpath|dir"`
		Serif   FontFaceConfig `yaml:"serif"`
		Text    FontFaceConfig `yaml:"text"`
	}

	CardConfig struct {
		BorderColor    string  `yaml:"border_color" validate:"required,hexcolor"`
		BackgroundPath string  `yaml:"background_path,omitempty" sanitize:"path_clean" validate:"omitempty,filepath"`
		Bleed          float64 `yaml:"bleed" validate:"gte=0,lte=10"`
	}

	GridConfig struct {
		Rows    int `yaml:"rows" validate:"min=1,max=6"`
		Columns int `yaml:"columns" validate:"min=1,max=4"`
	}

	DocumentConfig struct {
		OutputNameTemplate string      `yaml:"output_name_template"`
		Card               CardConfig  `yaml:"card"`
		Grid               GridConfig  `yaml:"grid"`
		Fonts              FontsConfig `yaml:"fonts"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above, alternative is to use struct
	// field name and reflection which I want to avoid for now
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
	}
	return cfg, nil
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
