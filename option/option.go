// Package option reads the optional netconfig configuration file.
package option

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultNetInterface is the compiled-in interface that commands act on
// when neither the configuration file nor the arguments name one.
const DefaultNetInterface = "eth0"

type LogOption struct {
	Disabled bool `yaml:"disabled,omitempty"`
	Debug    bool `yaml:"debug,omitempty"`
	Color    bool `yaml:"color,omitempty"`
}

type Option struct {
	// DefaultInterface is the network interface used by commands that
	// take no explicit interface argument.
	DefaultInterface string    `yaml:"default-interface,omitempty"`
	LogOption        LogOption `yaml:"log,omitempty"`
}

func Default() *Option {
	return &Option{DefaultInterface: DefaultNetInterface}
}

// ReadFile loads the configuration file. A missing file is not an error,
// the compiled-in defaults apply.
func ReadFile(file string) (*Option, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	return ReadContent(content)
}

func ReadContent(content []byte) (*Option, error) {
	opt := Default()
	if err := yaml.Unmarshal(content, opt); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if opt.DefaultInterface == "" {
		opt.DefaultInterface = DefaultNetInterface
	}
	return opt, nil
}
