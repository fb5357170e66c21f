package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// options are the settings of one run of the calculator.
type options struct {
	format string
	lines  bool
	echo   bool
	// given is the list of name=value variable definitions, in the order
	// they are evaluated.
	given [][2]string
}

// config is the layout of a configuration file.
type config struct {
	Format string `yaml:"format"`
	Lines  bool   `yaml:"lines"`
	Echo   bool   `yaml:"echo"`
	// Vars is kept as a node so that definitions keep their document order.
	// Each value may refer to the variables defined before it.
	Vars yaml.Node `yaml:"vars"`
}

func loadConfig(name string) (*config, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	var c config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return &c, nil
}

// definitions lists the variable definitions of the vars mapping in order.
func (c *config) definitions() ([][2]string, error) {
	n := &c.Vars
	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.MappingNode: // do nothing
	default:
		return nil, fmt.Errorf("line %d: vars must be a mapping of names to expressions", n.Line)
	}
	defs := make([][2]string, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: variable definitions must be name: expression", k.Line)
		}
		defs = append(defs, [2]string{k.Value, v.Value})
	}
	return defs, nil
}

// apply merges the file's settings into opts. Settings named in set were
// given as flags and keep their flag values. Variables from the file are
// defined before those from flags.
func (c *config) apply(opts options, set map[string]bool) (options, error) {
	defs, err := c.definitions()
	if err != nil {
		return opts, err
	}
	if !set["fmt"] && c.Format != "" {
		opts.format = c.Format
	}
	if !set["n"] {
		opts.lines = c.Lines
	}
	if !set["echo"] {
		opts.echo = c.Echo
	}
	opts.given = append(defs, opts.given...)
	return opts, nil
}
