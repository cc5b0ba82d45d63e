package sampling

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for parameter loading and validation.
var (
	// ErrInvalidParams indicates the parameter document failed schema or
	// family-specific validation.
	ErrInvalidParams = errors.New("sampling: invalid parameters")

	// ErrUnsupportedFamily indicates a family_type outside the closed set.
	ErrUnsupportedFamily = errors.New("sampling: unsupported family type")
)

// paramsValidate is the shared validator instance for Params. Struct tags
// cover the field-level schema; Params.Validate adds the cross-field family
// rules tags cannot express.
var paramsValidate = validator.New()

// DegreeConstraint is a degree that may be given either as a single integer
// or as a closed [min, max] range in the parameter file.
type DegreeConstraint struct {
	Min int64
	Max int64
}

// Single returns the degree value and true when the constraint is a single
// integer (Min == Max).
func (d DegreeConstraint) Single() (int64, bool) {
	return d.Min, d.Min == d.Max
}

// UnmarshalJSON accepts either a JSON number or a two-element array.
func (d *DegreeConstraint) UnmarshalJSON(data []byte) error {
	var scalar int64
	if err := json.Unmarshal(data, &scalar); err == nil {
		d.Min, d.Max = scalar, scalar
		return nil
	}
	var pair []int64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("%w: degree must be an integer or [min, max]", ErrInvalidParams)
	}
	if len(pair) != 2 {
		return fmt.Errorf("%w: degree range must have exactly two elements", ErrInvalidParams)
	}
	d.Min, d.Max = pair[0], pair[1]
	return nil
}

// MarshalJSON emits a scalar when Min == Max, otherwise the [min, max] pair.
func (d DegreeConstraint) MarshalJSON() ([]byte, error) {
	if v, ok := d.Single(); ok {
		return json.Marshal(v)
	}
	return json.Marshal([2]int64{d.Min, d.Max})
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML parameter files.
func (d *DegreeConstraint) UnmarshalYAML(node *yaml.Node) error {
	var scalar int64
	if err := node.Decode(&scalar); err == nil {
		d.Min, d.Max = scalar, scalar
		return nil
	}
	var pair []int64
	if err := node.Decode(&pair); err != nil || len(pair) != 2 {
		return fmt.Errorf("%w: degree must be an integer or [min, max]", ErrInvalidParams)
	}
	d.Min, d.Max = pair[0], pair[1]
	return nil
}

// Constraints bounds the curve family being sampled.
type Constraints struct {
	// Genus constrains the family genus where the family supports it.
	Genus *int64 `json:"genus,omitempty" yaml:"genus,omitempty" validate:"omitempty,gte=0"`

	// Degree constrains the line bundle degree (P1) or the defining
	// polynomial degree (PlaneCurve); scalar or [min, max].
	Degree *DegreeConstraint `json:"degree,omitempty" yaml:"degree,omitempty"`

	// CoefficientRanges maps coefficient labels (a, b, a0, a1, …) to closed
	// [min, max] integer ranges.
	CoefficientRanges map[string][2]int64 `json:"coefficient_ranges,omitempty" yaml:"coefficient_ranges,omitempty"`

	// Field is the base field tag. Only the tag is recorded; all arithmetic
	// here is exact over the integers/rationals regardless.
	Field string `json:"field" yaml:"field" validate:"required,oneof=Q R C Fp"`

	// SmoothnessCheck enables rejection of non-smooth samples. A nil value
	// defaults to true during normalization.
	SmoothnessCheck *bool `json:"smoothness_check" yaml:"smoothness_check"`
}

// CheckSmoothness reports the effective smoothness_check value.
func (c Constraints) CheckSmoothness() bool {
	return c.SmoothnessCheck == nil || *c.SmoothnessCheck
}

// SamplingConfig selects the strategy and fixes the deterministic seed.
type SamplingConfig struct {
	NSamplesDefault int    `json:"n_samples_default" yaml:"n_samples_default" validate:"required,gte=1,lte=10000"`
	Seed            int64  `json:"seed" yaml:"seed"`
	Strategy        string `json:"strategy" yaml:"strategy" validate:"required,oneof=grid random lhs"`
}

// InvariantsConfig names the invariants to compute for every sampled curve.
type InvariantsConfig struct {
	Compute []string `json:"compute" yaml:"compute" validate:"required,min=1,dive,oneof=genus degK h0 h1 canonical_deg"`
}

// Params is the complete, validated sampling specification.
type Params struct {
	FamilyType  string           `json:"family_type" yaml:"family_type" validate:"required,oneof=P1 Elliptic Hyperelliptic PlaneCurve"`
	Constraints Constraints      `json:"constraints" yaml:"constraints"`
	Sampling    SamplingConfig   `json:"sampling" yaml:"sampling"`
	Invariants  InvariantsConfig `json:"invariants" yaml:"invariants"`
}

// normalize applies the documented defaults before validation: field Q,
// strategy random, smoothness_check true.
func (p *Params) normalize() {
	if p.Constraints.Field == "" {
		p.Constraints.Field = "Q"
	}
	if p.Sampling.Strategy == "" {
		p.Sampling.Strategy = StrategyRandom
	}
	if p.Constraints.SmoothnessCheck == nil {
		t := true
		p.Constraints.SmoothnessCheck = &t
	}
}

// Validate normalizes defaults, runs the struct-tag schema, then enforces
// the family-specific rules:
//
//   - P1            — degree required; genus must be absent (fixed at 0).
//   - Elliptic      — coefficient_ranges required; genus, if given, must be 1.
//   - Hyperelliptic — genus and coefficient_ranges required.
//   - PlaneCurve    — degree required, single-valued, and ≥ 1.
//
// All failures wrap ErrInvalidParams.
func (p *Params) Validate() error {
	p.normalize()

	if err := paramsValidate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}

	c := p.Constraints
	if c.Degree != nil && c.Degree.Min > c.Degree.Max {
		return fmt.Errorf("%w: degree range [%d, %d] is inverted", ErrInvalidParams, c.Degree.Min, c.Degree.Max)
	}
	switch p.FamilyType {
	case "P1":
		if c.Degree == nil {
			return fmt.Errorf("%w: P1 family requires degree constraint", ErrInvalidParams)
		}
		if c.Genus != nil {
			return fmt.Errorf("%w: P1 family has fixed genus 0, cannot specify genus", ErrInvalidParams)
		}
	case "Elliptic":
		if c.Genus != nil && *c.Genus != 1 {
			return fmt.Errorf("%w: elliptic curves have genus 1", ErrInvalidParams)
		}
		if len(c.CoefficientRanges) == 0 {
			return fmt.Errorf("%w: Elliptic family requires coefficient_ranges", ErrInvalidParams)
		}
	case "Hyperelliptic":
		if c.Genus == nil {
			return fmt.Errorf("%w: Hyperelliptic family requires genus constraint", ErrInvalidParams)
		}
		if len(c.CoefficientRanges) == 0 {
			return fmt.Errorf("%w: Hyperelliptic family requires coefficient_ranges", ErrInvalidParams)
		}
	case "PlaneCurve":
		if c.Degree == nil {
			return fmt.Errorf("%w: PlaneCurve family requires degree constraint", ErrInvalidParams)
		}
		if v, ok := c.Degree.Single(); !ok || v < 1 {
			return fmt.Errorf("%w: plane curve degree must be a single integer >= 1", ErrInvalidParams)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFamily, p.FamilyType)
	}
	return nil
}

// LoadParams reads and validates a parameter file. The format is chosen by
// extension: .yaml/.yml are parsed as YAML, everything else as JSON.
func LoadParams(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("sampling: read params %s: %w", path, err)
	}

	var p Params
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &p); err != nil {
			return Params{}, fmt.Errorf("%w: %v", ErrInvalidParams, err)
		}
	default:
		dec := json.NewDecoder(strings.NewReader(string(data)))
		dec.DisallowUnknownFields()
		if err = dec.Decode(&p); err != nil {
			return Params{}, fmt.Errorf("%w: %v", ErrInvalidParams, err)
		}
	}

	if err = p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}
