package crypto

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidRequirement = errors.New("requirement must be one of must, may, must_not")
	ErrInvalidAllowance   = errors.New("allowance must be one of allow, forbid")
)

// Requirement is the inclusion requirement for a character class.
//
// Only Must changes generation, and only for uppercase, digits and symbols:
// it adds the class pool to the working pool and demands at least one of its
// characters. The lowercase pool is always present whatever its requirement,
// and MustNot behaves like May because no exclusion step exists.
type Requirement int

const (
	Must Requirement = iota
	May
	MustNot
)

func (r Requirement) String() string {
	switch r {
	case Must:
		return "must"
	case May:
		return "may"
	case MustNot:
		return "must_not"
	}
	return "unknown"
}

// ParseRequirement parses the text form of a Requirement. The empty string
// parses as May.
func ParseRequirement(s string) (Requirement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "must":
		return Must, nil
	case "may", "":
		return May, nil
	case "must_not", "must-not", "mustnot":
		return MustNot, nil
	}
	return May, fmt.Errorf("%w: %q", ErrInvalidRequirement, s)
}

// ParseAllowance parses the text form of a tag allowance. The empty string
// parses as allowed.
func ParseAllowance(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "allow", "true", "yes", "":
		return true, nil
	case "forbid", "false", "no":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", ErrInvalidAllowance, s)
}

// PolicyOptions are the plain fields of a Policy.
type PolicyOptions struct {
	MustIncludeUppercase bool
	MustIncludeDigits    bool
	MustIncludeSymbols   bool
	MayIncludeAmbiguous  bool
	MayIncludeVowels     bool
}

// Policy is an immutable set of inclusion requirements.
type Policy struct {
	opts PolicyOptions
}

// NewPolicy creates a Policy from opts. Every combination is accepted;
// contradictions surface when generating.
func NewPolicy(opts PolicyOptions) Policy {
	return Policy{opts: opts}
}

// DefaultPolicy allows ambiguous characters and vowels and mandates nothing.
func DefaultPolicy() Policy {
	return NewPolicyBuilder().Build()
}

func (p Policy) MustIncludeUppercase() bool { return p.opts.MustIncludeUppercase }
func (p Policy) MustIncludeDigits() bool    { return p.opts.MustIncludeDigits }
func (p Policy) MustIncludeSymbols() bool   { return p.opts.MustIncludeSymbols }
func (p Policy) MayIncludeAmbiguous() bool  { return p.opts.MayIncludeAmbiguous }
func (p Policy) MayIncludeVowels() bool     { return p.opts.MayIncludeVowels }

// Options returns a copy of the policy fields.
func (p Policy) Options() PolicyOptions { return p.opts }

// Mandatory returns the classes that must appear in every password.
func (p Policy) Mandatory() []Class {
	var classes []Class
	if p.opts.MustIncludeUppercase {
		classes = append(classes, Uppercase)
	}
	if p.opts.MustIncludeDigits {
		classes = append(classes, Digit)
	}
	if p.opts.MustIncludeSymbols {
		classes = append(classes, Symbol)
	}
	return classes
}

// Admits reports whether ch passes the tag filter.
func (p Policy) Admits(ch byte) bool {
	if !p.opts.MayIncludeAmbiguous && Ambiguous.Has(ch) {
		return false
	}
	if !p.opts.MayIncludeVowels && Vowel.Has(ch) {
		return false
	}
	return true
}

func (p Policy) String() string {
	return fmt.Sprintf("uppercase=%s digits=%s symbols=%s ambiguous=%s vowels=%s",
		mustOrMay(p.opts.MustIncludeUppercase),
		mustOrMay(p.opts.MustIncludeDigits),
		mustOrMay(p.opts.MustIncludeSymbols),
		allowOrForbid(p.opts.MayIncludeAmbiguous),
		allowOrForbid(p.opts.MayIncludeVowels),
	)
}

func mustOrMay(b bool) string {
	if b {
		return Must.String()
	}
	return May.String()
}

func allowOrForbid(b bool) string {
	if b {
		return "allow"
	}
	return "forbid"
}

// PolicyBuilder accumulates selections for a Policy.
type PolicyBuilder struct {
	opts PolicyOptions
}

// NewPolicyBuilder creates a builder with ambiguous characters and vowels
// allowed and no mandatory class.
func NewPolicyBuilder() *PolicyBuilder {
	return &PolicyBuilder{
		opts: PolicyOptions{
			MayIncludeAmbiguous: true,
			MayIncludeVowels:    true,
		},
	}
}

// Lowercase accepts a lowercase requirement. Lowercase characters are always
// in the working pool, so it has no effect on the built Policy.
func (b *PolicyBuilder) Lowercase(Requirement) *PolicyBuilder {
	return b
}

func (b *PolicyBuilder) Uppercase(r Requirement) *PolicyBuilder {
	b.opts.MustIncludeUppercase = r == Must
	return b
}

func (b *PolicyBuilder) Digits(r Requirement) *PolicyBuilder {
	b.opts.MustIncludeDigits = r == Must
	return b
}

func (b *PolicyBuilder) Symbols(r Requirement) *PolicyBuilder {
	b.opts.MustIncludeSymbols = r == Must
	return b
}

func (b *PolicyBuilder) Ambiguous(allowed bool) *PolicyBuilder {
	b.opts.MayIncludeAmbiguous = allowed
	return b
}

func (b *PolicyBuilder) Vowels(allowed bool) *PolicyBuilder {
	b.opts.MayIncludeVowels = allowed
	return b
}

// Build returns the Policy for the current selections. It never fails.
func (b *PolicyBuilder) Build() Policy {
	return NewPolicy(b.opts)
}
