package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	FormatAuto  = "auto"
	FormatJSON  = "json"
	FormatJSON5 = "json5"
	FormatYAML  = "yaml"
	FormatHTML  = "html"
)

type Config struct {
	Concurrency int `yaml:"concurrency"`
	// Agent is sent as User-Agent and used to test robots.txt rules
	Agent        string `yaml:"agent"`
	IgnoreRobots bool   `yaml:"ignorerobots"`
	// Lenient repairs json5 style input before parsing
	Lenient bool   `yaml:"lenient"`
	Format  string `yaml:"format"`
	// Timeout in seconds for http sources
	Timeout int `yaml:"timeout"`
	// Addr to serve metrics on, empty disables it
	Addr string `yaml:"addr"`
}

func Default() *Config {
	return &Config{
		Concurrency: 2,
		Agent:       "motionmodel",
		Format:      FormatAuto,
		Timeout:     10,
	}
}

// Get a config from a file
func Get(filename string) (conf *Config, err error) {
	yamlBytes, errRead := os.ReadFile(filename)
	if errRead != nil {
		return nil, errRead
	}
	return Load(yamlBytes)
}

// Load a config, keys missing in yamlBytes keep their defaults
func Load(yamlBytes []byte) (conf *Config, err error) {
	conf = Default()
	errUnmarshal := yaml.Unmarshal(yamlBytes, conf)
	if errUnmarshal != nil {
		return nil, errUnmarshal
	}
	errValidate := conf.Validate()
	if errValidate != nil {
		return nil, errValidate
	}
	return conf, nil
}

func (c *Config) Validate() error {
	if c.Concurrency < 1 {
		return errors.New("concurrency must be at least 1")
	}
	if c.Timeout < 1 {
		return errors.New("timeout must be at least 1 second")
	}
	switch c.Format {
	case FormatAuto, FormatJSON, FormatJSON5, FormatYAML, FormatHTML:
	case "":
		c.Format = FormatAuto
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	return nil
}

func (c *Config) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}
