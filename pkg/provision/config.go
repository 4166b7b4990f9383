package provision

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StepConfig is one step entry in a plan file.
type StepConfig struct {
	Name    string            `yaml:"name"`
	Command string            `yaml:"command"`
	Args    []string          `yaml:"args"`
	Env     map[string]string `yaml:"env"`
	Dir     string            `yaml:"dir"`
}

// PlanFile is the structure of a provision.yaml plan.
type PlanFile struct {
	Name  string       `yaml:"name"`
	Steps []StepConfig `yaml:"steps"`
}

// LoadPlan reads a custom provisioning plan from a YAML file.
func LoadPlan(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("failed to read plan file: %w", err)
	}

	var file PlanFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Plan{}, fmt.Errorf("failed to parse plan file: %w", err)
	}
	if len(file.Steps) == 0 {
		return Plan{}, fmt.Errorf("plan file %s defines no steps", path)
	}

	plan := Plan{Name: file.Name}
	if plan.Name == "" {
		plan.Name = path
	}

	for i, sc := range file.Steps {
		if sc.Command == "" {
			return Plan{}, fmt.Errorf("step %d in %s has no command", i, path)
		}
		name := sc.Name
		if name == "" {
			name = sc.Command
		}
		step := Command(name, sc.Command, sc.Args...).WithDir(sc.Dir)
		for k, v := range sc.Env {
			step = step.WithEnv(fmt.Sprintf("%s=%s", k, v))
		}
		plan.Steps = append(plan.Steps, step)
	}

	return plan, nil
}
