package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scenario is a conformance scenario: a named list of dispatcher and
// sequencer calls, each with an optional expectation.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Encoding is the text encoding used for inspect output. Empty means
	// UTF-8.
	Encoding string `yaml:"encoding,omitempty"`

	// Steps run in order; each holds exactly one call.
	Steps []Step `yaml:"steps"`
}

// Step is one call and its expectation. Exactly one of the call fields is
// set.
type Step struct {
	Apply      *BinaryCall `yaml:"apply,omitempty"`
	Compare    *BinaryCall `yaml:"compare,omitempty"`
	Relational *BinaryCall `yaml:"relational,omitempty"`
	Binary     *FnCall     `yaml:"binary,omitempty"`
	Unary      *FnCall     `yaml:"unary,omitempty"`
	Step       *StepCall   `yaml:"step,omitempty"`

	Expect *Expect `yaml:"expect,omitempty"`
}

// BinaryCall names an operator and two literal operands. Op is ignored by
// compare.
type BinaryCall struct {
	Op    string `yaml:"op,omitempty"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// FnCall names a derived operation. Unary calls use Value; binary calls use
// Left and Right.
type FnCall struct {
	Fn    string `yaml:"fn"`
	Value string `yaml:"value,omitempty"`
	Left  string `yaml:"left,omitempty"`
	Right string `yaml:"right,omitempty"`
}

// StepCall is a step invocation: start, up to two positional arguments
// (limit, stride) and the to/by options.
type StepCall struct {
	Start   string            `yaml:"start"`
	Args    []string          `yaml:"args,omitempty"`
	Options map[string]string `yaml:"options,omitempty"`
}

// Expect lists what a step must produce. Unset fields are not checked.
type Expect struct {
	// Value is a literal compared by its inspect form.
	Value *string `yaml:"value,omitempty"`

	// Ordering is less, equal, greater or unordered (or -1, 0, 1, nil).
	Ordering string `yaml:"ordering,omitempty"`

	Bool *bool `yaml:"bool,omitempty"`

	// Error is the expected error code, e.g. COERCE_UNSUPPORTED.
	Error string `yaml:"error,omitempty"`

	// Message must be a substring of the error message.
	Message string `yaml:"message,omitempty"`

	// Size is a decimal count or "infinite".
	Size string `yaml:"size,omitempty"`

	// Values are the first elements produced. Without Take, the sequence
	// must end right after them.
	Values []string `yaml:"values,omitempty"`

	// Take bounds how many elements are produced for Values.
	Take int `yaml:"take,omitempty"`
}

// Step kinds as they appear in traces.
const (
	KindApply      = "apply"
	KindCompare    = "compare"
	KindRelational = "relational"
	KindBinary     = "binary"
	KindUnary      = "unary"
	KindStep       = "step"
)

var unaryFns = []string{
	"neg", "abs", "zero", "nonzero", "positive", "negative",
	"floor", "ceil", "round", "truncate", "to_int", "to_f", "integer", "real",
}

var binaryFns = []string{"coerce", "equal", "divmod", "div", "modulo", "remainder"}

var orderings = []string{"less", "equal", "greater", "unordered", "-1", "0", "1", "nil"}

// Kind returns the step kind, or "" when no call is set.
func (s *Step) Kind() string {
	switch {
	case s.Apply != nil:
		return KindApply
	case s.Compare != nil:
		return KindCompare
	case s.Relational != nil:
		return KindRelational
	case s.Binary != nil:
		return KindBinary
	case s.Unary != nil:
		return KindUnary
	case s.Step != nil:
		return KindStep
	}
	return ""
}

func (s *Step) callCount() int {
	n := 0
	for _, set := range []bool{
		s.Apply != nil, s.Compare != nil, s.Relational != nil,
		s.Binary != nil, s.Unary != nil, s.Step != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// FindScenarios lists the .yaml and .yml files under dir, sorted by path.
// A non-empty filter is a glob matched against the file name without its
// extension.
func FindScenarios(dir, filter string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		if filter != "" {
			name := strings.TrimSuffix(filepath.Base(path), ext)
			matched, err := filepath.Match(filter, name)
			if err != nil {
				return fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				return nil
			}
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}
	for i := range s.Steps {
		if err := validateStep(i, &s.Steps[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateStep(i int, st *Step) error {
	switch st.callCount() {
	case 0:
		return fmt.Errorf("steps[%d]: one of apply, compare, relational, binary, unary or step is required", i)
	case 1:
	default:
		return fmt.Errorf("steps[%d]: only one call per step", i)
	}

	switch {
	case st.Apply != nil:
		if st.Apply.Op == "" {
			return fmt.Errorf("steps[%d].apply: op is required", i)
		}
		if err := requireOperands(i, "apply", st.Apply.Left, st.Apply.Right); err != nil {
			return err
		}
	case st.Relational != nil:
		if st.Relational.Op == "" {
			return fmt.Errorf("steps[%d].relational: op is required", i)
		}
		if err := requireOperands(i, "relational", st.Relational.Left, st.Relational.Right); err != nil {
			return err
		}
	case st.Compare != nil:
		if err := requireOperands(i, "compare", st.Compare.Left, st.Compare.Right); err != nil {
			return err
		}
	case st.Binary != nil:
		if !slices.Contains(binaryFns, st.Binary.Fn) {
			return fmt.Errorf("steps[%d].binary: unknown fn %q", i, st.Binary.Fn)
		}
		if err := requireOperands(i, "binary", st.Binary.Left, st.Binary.Right); err != nil {
			return err
		}
	case st.Unary != nil:
		if !slices.Contains(unaryFns, st.Unary.Fn) {
			return fmt.Errorf("steps[%d].unary: unknown fn %q", i, st.Unary.Fn)
		}
		if st.Unary.Value == "" {
			return fmt.Errorf("steps[%d].unary: value is required", i)
		}
	case st.Step != nil:
		if st.Step.Start == "" {
			return fmt.Errorf("steps[%d].step: start is required", i)
		}
	}

	if e := st.Expect; e != nil {
		if e.Ordering != "" && !slices.Contains(orderings, e.Ordering) {
			return fmt.Errorf("steps[%d].expect: unknown ordering %q", i, e.Ordering)
		}
		if e.Take < 0 {
			return fmt.Errorf("steps[%d].expect: take must be non-negative", i)
		}
		if (e.Size != "" || len(e.Values) > 0 || e.Take > 0) && st.Step == nil {
			return fmt.Errorf("steps[%d].expect: size, values and take apply to step calls only", i)
		}
	}
	return nil
}

func requireOperands(i int, kind, left, right string) error {
	if left == "" || right == "" {
		return fmt.Errorf("steps[%d].%s: left and right are required", i, kind)
	}
	return nil
}
