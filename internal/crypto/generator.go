package crypto

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultMaxDraws      = 10000
	DefaultMaxAssemblies = 1000
)

var (
	ErrUnsatisfiablePolicy = errors.New("password policy cannot be satisfied")
	ErrInvalidLength       = errors.New("password length must not be negative")
	ErrInvalidCount        = errors.New("password count must be at least 1")
)

// Option configures a Generator.
type Option func(*Generator)

// WithMaxDraws caps the consecutive rejected draws allowed for one character.
// Non-positive values keep the default.
func WithMaxDraws(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxDraws = n
		}
	}
}

// WithMaxAssemblies caps the whole passwords assembled per call before
// giving up. Non-positive values keep the default.
func WithMaxAssemblies(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAssemblies = n
		}
	}
}

// Generator produces passwords satisfying a Policy by rejection sampling.
type Generator struct {
	src           RandomSource
	policy        Policy
	pool          string
	maxDraws      int
	maxAssemblies int
}

// NewGenerator creates a Generator drawing from src. The working pool is
// built once from the policy.
func NewGenerator(src RandomSource, policy Policy, opts ...Option) *Generator {
	g := &Generator{
		src:           src,
		policy:        policy,
		pool:          buildPool(policy),
		maxDraws:      DefaultMaxDraws,
		maxAssemblies: DefaultMaxAssemblies,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// buildPool returns lowercase, then digits, uppercase and symbols for each
// class the policy mandates.
func buildPool(p Policy) string {
	var sb strings.Builder
	sb.WriteString(lowercaseChars)
	if p.MustIncludeDigits() {
		sb.WriteString(digitChars)
	}
	if p.MustIncludeUppercase() {
		sb.WriteString(uppercaseChars)
	}
	if p.MustIncludeSymbols() {
		sb.WriteString(symbolChars)
	}
	return sb.String()
}

// Pool returns the working character pool.
func (g *Generator) Pool() string { return g.pool }

// Policy returns the policy the generator enforces.
func (g *Generator) Policy() Policy { return g.policy }

// Check reports whether a password of the given length can satisfy the
// policy at all, without drawing from the random source.
func (g *Generator) Check(length int) error {
	if length < 0 {
		return ErrInvalidLength
	}

	admitted := 0
	for i := 0; i < len(g.pool); i++ {
		if g.policy.Admits(g.pool[i]) {
			admitted++
		}
	}
	if admitted == 0 {
		return fmt.Errorf("%w: tag filter rejects every character in the pool", ErrUnsatisfiablePolicy)
	}

	mandatory := g.policy.Mandatory()
	for _, class := range mandatory {
		if !g.hasAdmitted(class) {
			return fmt.Errorf("%w: no %s character passes the tag filter", ErrUnsatisfiablePolicy, class)
		}
	}
	if length < len(mandatory) {
		return fmt.Errorf("%w: length %d is shorter than the %d required classes", ErrUnsatisfiablePolicy, length, len(mandatory))
	}
	return nil
}

func (g *Generator) hasAdmitted(class Class) bool {
	chars := class.Chars()
	for i := 0; i < len(chars); i++ {
		if strings.IndexByte(g.pool, chars[i]) >= 0 && g.policy.Admits(chars[i]) {
			return true
		}
	}
	return false
}

// Generate returns a password of exactly length characters satisfying the
// policy. Candidates missing a mandatory class are discarded whole.
func (g *Generator) Generate(length int) (string, error) {
	if err := g.Check(length); err != nil {
		return "", err
	}

	buf := make([]byte, length)
	for attempt := 0; attempt < g.maxAssemblies; attempt++ {
		for i := range buf {
			ch, err := g.admissibleChar()
			if err != nil {
				return "", err
			}
			buf[i] = ch
		}
		if g.admissible(buf) {
			return string(buf), nil
		}
	}

	return "", fmt.Errorf("%w: no candidate passed after %d attempts", ErrUnsatisfiablePolicy, g.maxAssemblies)
}

// GenerateN returns count independent passwords.
func (g *Generator) GenerateN(length, count int) ([]string, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}

	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		password, err := g.Generate(length)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, password)
	}
	return passwords, nil
}

// admissibleChar draws from the pool until a character passes the tag filter.
func (g *Generator) admissibleChar() (byte, error) {
	for draw := 0; draw < g.maxDraws; draw++ {
		idx, err := g.src.Intn(len(g.pool))
		if err != nil {
			return 0, fmt.Errorf("drawing random index: %w", err)
		}
		if idx < 0 || idx >= len(g.pool) {
			return 0, fmt.Errorf("drawing random index: %d out of range [0, %d)", idx, len(g.pool))
		}
		if ch := g.pool[idx]; g.policy.Admits(ch) {
			return ch, nil
		}
	}
	return 0, fmt.Errorf("%w: no admissible character after %d draws", ErrUnsatisfiablePolicy, g.maxDraws)
}

// admissible reports whether password contains every mandatory class.
func (g *Generator) admissible(password []byte) bool {
	for _, class := range g.policy.Mandatory() {
		found := false
		for _, ch := range password {
			if class.Contains(ch) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
