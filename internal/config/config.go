package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// HTMLConfig controls the HTML document host.
type HTMLConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// TermConfig controls the terminal host.
type TermConfig struct {
	Width int  `yaml:"width"`
	Modal bool `yaml:"modal"`
}

// GUIConfig controls the ebiten window host.
type GUIConfig struct {
	Scale int `yaml:"scale"`
}

// Config holds everything needed to run a grid against a host.
type Config struct {
	Host      string     `yaml:"host"`
	Container string     `yaml:"container"`
	Alert     string     `yaml:"alert"`
	HTML      HTMLConfig `yaml:"html"`
	Term      TermConfig `yaml:"term"`
	GUI       GUIConfig  `yaml:"gui"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Host:      "term",
		Container: "root",
		GUI:       GUIConfig{Scale: 6},
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Apply(cfg)
}

// Apply returns a copy of c with the recognised keys in m applied. Values
// that fail to parse are ignored.
func (c Config) Apply(m map[string]string) Config {
	if m == nil {
		return c
	}
	if v, ok := m["host"]; ok && strings.TrimSpace(v) != "" {
		c.Host = strings.TrimSpace(v)
	}
	if v, ok := m["container"]; ok && v != "" {
		c.Container = v
	}
	if v, ok := m["alert"]; ok {
		c.Alert = v
	}
	if v, ok := m["html.input"]; ok {
		c.HTML.Input = v
	}
	if v, ok := m["html.output"]; ok {
		c.HTML.Output = v
	}
	if v, ok := m["term.width"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Term.Width = parsed
		}
	}
	if v, ok := m["term.modal"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Term.Modal = parsed
		}
	}
	if v, ok := m["gui.scale"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.GUI.Scale = parsed
		}
	}
	return c
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w (file %s)", err, path)
	}
	return c, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Host) == "":
		return errors.New("config: host is required")
	case c.Container == "":
		return errors.New("config: container is required")
	case c.Term.Width < 0:
		return fmt.Errorf("config: term.width must not be negative, got %d", c.Term.Width)
	case c.GUI.Scale <= 0:
		return fmt.Errorf("config: gui.scale must be positive, got %d", c.GUI.Scale)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet. Flag names match
// the keys understood by Apply.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Host, "host", c.Host, "host adapter to publish into")
	fs.StringVar(&c.Container, "container", c.Container, "id of the container that receives output")
	fs.StringVar(&c.Alert, "alert", c.Alert, "greet this name through the host alert before publishing")
	fs.StringVar(&c.HTML.Input, "html.input", c.HTML.Input, "HTML page to load (html host)")
	fs.StringVar(&c.HTML.Output, "html.output", c.HTML.Output, "where to write the resulting page (html host, default stdout)")
	fs.IntVar(&c.Term.Width, "term.width", c.Term.Width, "terminal width override, 0 to detect")
	fs.BoolVar(&c.Term.Modal, "term.modal", c.Term.Modal, "wait for acknowledgement of alerts (term host)")
	fs.IntVar(&c.GUI.Scale, "gui.scale", c.GUI.Scale, "pixel scale multiplier (gui host)")
}

// SetFlags collects the flags explicitly set on fs, for use with Apply.
func SetFlags(fs *flag.FlagSet) map[string]string {
	m := map[string]string{}
	fs.Visit(func(f *flag.Flag) { m[f.Name] = f.Value.String() })
	return m
}
