package etl

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed config/pipelines.yaml
var pipelinesYAML embed.FS

// Pipeline describes one backend ETL job this service can monitor and
// trigger. The jobs themselves run on the backend; only status display
// and trigger requests live here.
type Pipeline struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	// Payload is the default JSON body sent with a trigger when the
	// caller supplies none.
	Payload map[string]any `yaml:"payload,omitempty"`
}

type Registry struct {
	Pipelines []Pipeline `yaml:"pipelines"`
}

func LoadRegistry() (*Registry, error) {
	raw, err := pipelinesYAML.ReadFile("config/pipelines.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded pipeline registry: %w", err)
	}

	var reg Registry
	if err := yaml.Unmarshal(raw, &reg); err != nil {
		return nil, fmt.Errorf("parsing pipeline registry: %w", err)
	}
	if len(reg.Pipelines) == 0 {
		return nil, fmt.Errorf("pipeline registry is empty")
	}
	return &reg, nil
}

// Lookup returns the registry entry for name, if any.
func (r *Registry) Lookup(name string) (Pipeline, bool) {
	for _, p := range r.Pipelines {
		if p.Name == name {
			return p, true
		}
	}
	return Pipeline{}, false
}

// Names returns the registered pipeline names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.Pipelines))
	for _, p := range r.Pipelines {
		names = append(names, p.Name)
	}
	return names
}
