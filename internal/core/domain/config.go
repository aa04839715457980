package domain

import (
	"fmt"
	"strings"
)

type BackendType string

const (
	BackendOS     BackendType = "os"
	BackendMemory BackendType = "memory"
)

// Backend selects the filesystem streams are opened on.
type Backend struct {
	Type BackendType `yaml:"type" json:"type"`
	Root string      `yaml:"root,omitempty" json:"root,omitempty"`
}

type ConfigurationContext struct {
	Name    string            `yaml:"name" json:"name"`
	Import  *string           `yaml:"import,omitempty" json:"import,omitempty"`
	Backend Backend           `yaml:"backend" json:"backend"`
	Vars    map[string]string `yaml:"vars,omitempty" json:"vars,omitempty"`
	Scripts map[string]Script `yaml:"scripts,omitempty" json:"scripts,omitempty"`
}

// Script is an ordered list of host calls.
type Script []Step

// Step is a single host call. Call is either "Class.method" or a bare method
// name invoked on the variable named by Recv.
type Step struct {
	Call   string `yaml:"call" json:"call"`
	Recv   string `yaml:"recv,omitempty" json:"recv,omitempty"`
	Args   []any  `yaml:"args,omitempty" json:"args,omitempty"`
	Let    string `yaml:"let,omitempty" json:"let,omitempty"`
	Print  bool   `yaml:"print,omitempty" json:"print,omitempty"`
	Expect string `yaml:"expect,omitempty" json:"expect,omitempty"`
	As     string `yaml:"as,omitempty" json:"as,omitempty"`
	Do     Script `yaml:"do,omitempty" json:"do,omitempty"`
}

// Config holds the application configuration
type Config struct {
	Contexts []ConfigurationContext `yaml:"contexts" json:"contexts"`
}

func CreateDefaultConfig() Config {
	return Config{
		Contexts: []ConfigurationContext{
			{
				Name:    "default",
				Backend: Backend{Type: BackendOS},
				Vars: map[string]string{
					"dir": "/tmp",
				},
				Scripts: map[string]Script{
					"roundtrip": {
						{Let: "f", Call: "File.new", Args: []any{"{{ .Vars.dir }}/iostream-roundtrip.txt", "w"}},
						{Call: "puts", Recv: "f", Args: []any{"hello from iostream"}},
						{Call: "read", Recv: "f", Expect: string(KindIOError)},
						{Call: "close", Recv: "f"},
						{
							Call: "File.open",
							Args: []any{"{{ .Vars.dir }}/iostream-roundtrip.txt", "r"},
							As:   "g",
							Do: Script{
								{Call: "gets", Recv: "g", Print: true},
							},
						},
					},
				},
			},
			{
				Name:    "scratch",
				Backend: Backend{Type: BackendMemory},
			},
		},
	}
}

func (c *Config) ContextExists(name string) bool {
	for _, context := range c.Contexts {
		if context.Name == name {
			return true
		}
	}
	return false
}

func (c *Config) GetContext(name string) (*ConfigurationContext, error) {
	for _, context := range c.Contexts {
		if context.Name == name {
			return &context, nil
		}
	}
	return nil, fmt.Errorf("context '%s' not found", name)
}

func (c *ConfigurationContext) GetScript(name string) (Script, bool) {
	script, ok := c.Scripts[name]
	return script, ok
}

func (c *Config) Validate() error {
	if len(c.Contexts) == 0 {
		return fmt.Errorf("no contexts defined in configuration")
	}

	seen := make(map[string]bool)
	for i, ctx := range c.Contexts {
		if ctx.Name == "" {
			return fmt.Errorf("context at index %d has empty name", i)
		}
		if strings.Contains(ctx.Name, "..") ||
			strings.Contains(ctx.Name, "/") ||
			strings.Contains(ctx.Name, "\\") ||
			strings.Contains(ctx.Name, "\x00") {
			return fmt.Errorf("context name '%s' contains invalid characters", ctx.Name)
		}
		if seen[ctx.Name] {
			return fmt.Errorf("context '%s' is defined more than once", ctx.Name)
		}
		seen[ctx.Name] = true

		switch ctx.Backend.Type {
		case "", BackendOS, BackendMemory:
		default:
			return fmt.Errorf("context '%s' has unknown backend type '%s'", ctx.Name, ctx.Backend.Type)
		}

		for name, script := range ctx.Scripts {
			if err := script.Validate(); err != nil {
				return fmt.Errorf("script '%s' in context '%s': %w", name, ctx.Name, err)
			}
		}
	}

	return nil
}

func (s Script) Validate() error {
	for i, step := range s {
		if step.Call == "" {
			return fmt.Errorf("step %d has empty call", i)
		}
		if len(step.Do) > 0 && step.As == "" {
			return fmt.Errorf("step %d has a do block but no 'as' variable", i)
		}
		if step.Expect != "" {
			if _, err := ParseErrorKind(step.Expect); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
		}
		if err := step.Do.Validate(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}
