package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/adventofcode/internal/lines"
)

// Scenario is one puzzle fixture.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains where the fixture comes from.
	Description string `yaml:"description"`

	// Day is the puzzle day the input belongs to.
	Day int `yaml:"day"`

	// Input is the puzzle input inline.
	Input string `yaml:"input,omitempty"`

	// InputFile is a path to the puzzle input, relative to the scenario file.
	InputFile string `yaml:"input_file,omitempty"`

	// Expect lists the known answers.
	Expect []Expectation `yaml:"expect"`
}

// Expectation is the known answer for one part.
type Expectation struct {
	Part   int    `yaml:"part"`
	Answer string `yaml:"answer"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data, filepath.Dir(path))
}

// ParseScenario parses scenario YAML. A relative input_file is resolved
// against baseDir.
func ParseScenario(data []byte, baseDir string) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.InputFile != "" && !filepath.IsAbs(scenario.InputFile) && baseDir != "" {
		scenario.InputFile = filepath.Join(baseDir, scenario.InputFile)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Day < 1 || s.Day > 25 {
		return fmt.Errorf("day must be between 1 and 25, got %d", s.Day)
	}

	switch {
	case s.Input == "" && s.InputFile == "":
		return fmt.Errorf("one of input or input_file is required")
	case s.Input != "" && s.InputFile != "":
		return fmt.Errorf("input and input_file are mutually exclusive")
	}

	if len(s.Expect) == 0 {
		return fmt.Errorf("expect list is required and must be non-empty")
	}

	seen := map[int]bool{}
	for i, e := range s.Expect {
		if e.Part != 1 && e.Part != 2 {
			return fmt.Errorf("expect[%d]: part must be 1 or 2, got %d", i, e.Part)
		}
		if e.Answer == "" {
			return fmt.Errorf("expect[%d]: answer is required", i)
		}
		if seen[e.Part] {
			return fmt.Errorf("expect[%d]: part %d listed twice", i, e.Part)
		}
		seen[e.Part] = true
	}

	return nil
}

// Lines returns the scenario input as lines.
func (s *Scenario) Lines() ([]string, error) {
	if s.InputFile != "" {
		return lines.Read(s.InputFile)
	}
	return lines.FromString(s.Input), nil
}

// LoadDir loads every *.yaml and *.yml file in dir, sorted by file name.
func LoadDir(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ext := strings.ToLower(filepath.Ext(e.Name())); ext == ".yaml" || ext == ".yml" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	scenarios := make([]*Scenario, 0, len(names))
	for _, name := range names {
		s, err := LoadScenario(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// Collect loads scenarios from a mix of files and directories, in argument
// order. Duplicate scenario names are an error.
func Collect(paths []string) ([]*Scenario, error) {
	var all []*Scenario
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("scenario path: %w", err)
		}
		if info.IsDir() {
			found, err := LoadDir(p)
			if err != nil {
				return nil, err
			}
			all = append(all, found...)
			continue
		}
		s, err := LoadScenario(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		all = append(all, s)
	}

	names := map[string]bool{}
	for _, s := range all {
		if names[s.Name] {
			return nil, fmt.Errorf("duplicate scenario name %q", s.Name)
		}
		names[s.Name] = true
	}
	return all, nil
}
