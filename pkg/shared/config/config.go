package config

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v2"
)

// Config holds the global application configuration loaded from YAML.
type Config struct {
	Logger     Logger     `yaml:"logger"`
	HTTPClient HTTPClient `yaml:"http_client"`
	Analyzer   Analyzer   `yaml:"analyzer"`
	Catalog    Catalog    `yaml:"catalog"`
	Storage    Storage    `yaml:"storage"`
	HomeFolder string     `yaml:"home_folder"`
}

type Logger struct {
	Level           string `yaml:"level"`
	DisableTime     *bool  `yaml:"disable_time"`
	JSONFormat      *bool  `yaml:"json_format"`
	IncludeLocation *bool  `yaml:"include_location"`
}

type HTTPClient struct {
	Debug            *bool           `yaml:"debug"`
	RetryCount       int             `yaml:"retry_count"`
	RetryWaitTime    time.Duration   `yaml:"retry_wait_time"`
	RetryMaxWaitTime time.Duration   `yaml:"retry_max_wait_time"`
	Timeout          time.Duration   `yaml:"timeout"`
	TLSClientConfig  TLSClientConfig `yaml:"tls_client_config"`
	Proxy            Proxy           `yaml:"proxy"`
}

type TLSClientConfig struct {
	Verify *bool `yaml:"verify"`
}

type Proxy struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Analyzer holds defaults for the LLM escalation client. Command flags
// override these values.
type Analyzer struct {
	Provider   string        `yaml:"provider"`
	Model      string        `yaml:"model"`
	Endpoint   string        `yaml:"endpoint"`
	Deployment string        `yaml:"deployment"`
	APIVersion string        `yaml:"api_version"`
	MaxTokens  int           `yaml:"max_tokens"`
	Timeout    time.Duration `yaml:"timeout"`
}

// Catalog points the reference catalog at an optional reference-data CSV.
type Catalog struct {
	ReferenceFile string `yaml:"reference_file"`
}

type Storage struct {
	S3 S3 `yaml:"s3"`
}

type S3 struct {
	Bucket string `yaml:"bucket"`
	Region string `yaml:"region"`
}

// LoadConfig reads the YAML configuration from the given path. A missing file
// is not an error; a zero Config is returned instead so the tool works out of
// the box without a config file.
func LoadConfig(configPath string) (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	if err := LoadYAML(configPath, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadYAML decodes a YAML file into the provided structure.
func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil {
		return err
	}

	return nil
}

// ValidateConfigPath checks that the given path exists and is a regular file.
func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}
