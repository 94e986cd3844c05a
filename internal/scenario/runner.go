// Package scenario runs codec conformance scenarios written in YAML.
package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/asclient/asclient/internal/domain/codec"
	"github.com/asclient/asclient/internal/domain/protocol"
	"gopkg.in/yaml.v3"
)

// Actions a step can take.
const (
	ActionDecodeParams  = "decode_params"
	ActionDecodeResult  = "decode_result"
	ActionDecodeOutline = "decode_outline"
	ActionValidate      = "validate"
)

// Scenario represents a test scenario defined in YAML.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

type Step struct {
	Name       string `yaml:"name"`
	Action     string `yaml:"action"`
	Kind       string `yaml:"kind,omitempty"`
	Vocabulary string `yaml:"vocabulary,omitempty"`
	Strict     bool   `yaml:"strict,omitempty"`
	Input      string `yaml:"input"`
	Expect     Expect `yaml:"expect"`
}

// Expect lists what a step must produce. Unset fields are not checked.
type Expect struct {
	// Error is the classified error kind, e.g. "missing-field".
	Error    string `yaml:"error,omitempty"`
	Field    string `yaml:"field,omitempty"`
	Warnings *int   `yaml:"warnings,omitempty"`
	// Canonical is the document the decoded value must re-encode to.
	Canonical string `yaml:"canonical,omitempty"`
}

// Result is the outcome of one step.
type Result struct {
	Scenario string `json:"scenario"`
	Step     string `json:"step"`
	Passed   bool   `json:"passed"`
	Message  string `json:"message,omitempty"`
}

// LoadScenario loads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &s, nil
}

// LoadDirectory loads every .yaml scenario in dir, sorted by file name.
func LoadDirectory(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if !entry.IsDir() && (ext == ".yaml" || ext == ".yml") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	scenarios := make([]*Scenario, 0, len(names))
	for _, name := range names {
		s, err := LoadScenario(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// Run executes every step of a scenario and reports each one.
func Run(s *Scenario) []Result {
	results := make([]Result, 0, len(s.Steps))
	for i, step := range s.Steps {
		name := step.Name
		if name == "" {
			name = fmt.Sprintf("step %d", i+1)
		}
		result := Result{Scenario: s.Name, Step: name, Passed: true}
		if err := runStep(step); err != nil {
			result.Passed = false
			result.Message = err.Error()
		}
		results = append(results, result)
	}
	return results
}

func runStep(step Step) error {
	var warnings []protocol.UnrecognizedKind
	opts := []protocol.DecodeOption{
		protocol.OnUnrecognized(func(u protocol.UnrecognizedKind) {
			warnings = append(warnings, u)
		}),
	}
	if step.Strict {
		opts = append(opts, protocol.Strict())
	}
	input := []byte(step.Input)

	var (
		encoded []byte
		err     error
	)
	switch step.Action {
	case ActionDecodeParams:
		var env codec.Envelope
		if env, err = codec.DecodeMessage(input, opts...); err == nil {
			encoded, err = codec.EncodeMessage(env)
		}
	case ActionDecodeResult:
		var result codec.Result
		if result, err = codec.DecodeResult(protocol.RefactoringKind(step.Kind), input, opts...); err == nil {
			encoded, err = codec.EncodeResult(result)
		}
	case ActionDecodeOutline:
		var params protocol.FlutterOutlineParams
		if params, err = codec.DecodeOutline(input, opts...); err == nil {
			encoded, err = protocol.Encode(params)
		}
	case ActionValidate:
		_, err = protocol.Validate(step.Vocabulary, strings.TrimSpace(step.Input))
	default:
		return fmt.Errorf("unknown action: %s", step.Action)
	}

	return check(step.Expect, err, encoded, len(warnings))
}

func check(expect Expect, err error, encoded []byte, warnings int) error {
	if expect.Error == "" && err != nil {
		return fmt.Errorf("expected no error, got: %w", err)
	}
	if expect.Error != "" {
		if err == nil {
			return fmt.Errorf("expected %s error, got none", expect.Error)
		}
		if kind := codec.KindOf(err); string(kind) != expect.Error {
			if kind == "" {
				kind = "unclassified"
			}
			return fmt.Errorf("expected %s error, got %s: %v", expect.Error, kind, err)
		}
		if expect.Field != "" {
			if field := codec.FieldOf(err); field != expect.Field {
				return fmt.Errorf("expected error at %q, got %q", expect.Field, field)
			}
		}
		return nil
	}

	if expect.Warnings != nil && *expect.Warnings != warnings {
		return fmt.Errorf("expected %d warnings, got %d", *expect.Warnings, warnings)
	}
	if expect.Canonical != "" {
		same, err := sameJSON([]byte(expect.Canonical), encoded)
		if err != nil {
			return err
		}
		if !same {
			return fmt.Errorf("re-encoded document differs: %s", encoded)
		}
	}
	return nil
}

func sameJSON(a, b []byte) (bool, error) {
	var va, vb any
	if err := json.Unmarshal(a, &va); err != nil {
		return false, fmt.Errorf("invalid canonical document: %w", err)
	}
	if err := json.Unmarshal(b, &vb); err != nil {
		return false, err
	}
	return protocol.Equal(va, vb), nil
}
