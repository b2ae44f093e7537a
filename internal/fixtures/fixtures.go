package fixtures

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Suite is a named collection of encoding test vectors.
type Suite struct {
	Name    string   `yaml:"name"`
	Vectors []Vector `yaml:"vectors"`
}

// Vector pairs a path vector with its expected encoded forms.
type Vector struct {
	// Name uniquely identifies the vector within its suite.
	Name string `yaml:"name"`

	// Path is the path vector to encode.
	Path []uint64 `yaml:"path"`

	// Text is the canonical dot-separated form of Path.
	Text string `yaml:"text"`

	// Num and Den are the expected rational view of the identifier;
	// the root is 1/0.
	Num uint64 `yaml:"num"`
	Den uint64 `yaml:"den"`
}

// FixtureError reports a fixture file that could not be loaded or does
// not satisfy the suite schema.
type FixtureError struct {
	File    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FixtureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fixture %s: %s: %v", e.File, e.Message, e.Err)
	}
	return fmt.Sprintf("fixture %s: %s", e.File, e.Message)
}

// Unwrap returns the underlying error, if any.
func (e *FixtureError) Unwrap() error { return e.Err }

// Load reads a YAML suite file and validates it against the embedded
// CUE schema before returning it.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FixtureError{File: path, Message: "read failed", Err: err}
	}

	// Decode to a generic document first so schema validation sees the
	// file as written, not as Go's zero values would paper over it.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &FixtureError{File: path, Message: "invalid YAML", Err: err}
	}

	if err := validate(path, raw); err != nil {
		return nil, err
	}

	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, &FixtureError{File: path, Message: "decode failed", Err: err}
	}
	return &suite, nil
}

// validate unifies the decoded document with the #Suite definition and
// requires the result to be concrete.
func validate(path string, doc map[string]any) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return &FixtureError{File: path, Message: "internal schema error", Err: err}
	}

	def := schema.LookupPath(cue.ParsePath("#Suite"))
	if err := def.Err(); err != nil {
		return &FixtureError{File: path, Message: "internal schema error", Err: err}
	}

	unified := def.Unify(ctx.Encode(doc))
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return &FixtureError{
			File:    path,
			Message: "schema violation",
			Err:     fmt.Errorf("%s", cueerrors.Details(err, nil)),
		}
	}
	return nil
}
