package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/vaultpass/pwgen/internal/crypto"
	"github.com/vaultpass/pwgen/internal/model"
)

var (
	ErrLengthTooLong = errors.New("password length exceeds the maximum")
	ErrCountTooLarge = errors.New("password count exceeds the maximum")
)

// Limits bounds the work a single request may ask for.
type Limits struct {
	DefaultLength int
	MaxLength     int
	MaxCount      int
	MaxDraws      int
	MaxAssemblies int
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{
		DefaultLength: 8,
		MaxLength:     128,
		MaxCount:      50,
		MaxDraws:      crypto.DefaultMaxDraws,
		MaxAssemblies: crypto.DefaultMaxAssemblies,
	}
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	limits    Limits
	newSource func() crypto.RandomSource
}

// NewGeneratorService creates a new GeneratorService. Every call to Generate
// draws from a fresh source returned by newSource; nil selects crypto/rand.
func NewGeneratorService(limits Limits, newSource func() crypto.RandomSource) *GeneratorService {
	if newSource == nil {
		newSource = func() crypto.RandomSource { return crypto.NewCryptoSource() }
	}
	return &GeneratorService{limits: limits, newSource: newSource}
}

// Generate produces passwords based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	policy, err := PolicyFromRequest(req)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	length := req.Length
	if length == 0 {
		length = s.limits.DefaultLength
	}
	if length < 0 {
		return model.GenerateResponse{}, crypto.ErrInvalidLength
	}
	if length > s.limits.MaxLength {
		return model.GenerateResponse{}, fmt.Errorf("%w: %d > %d", ErrLengthTooLong, length, s.limits.MaxLength)
	}

	count := req.Count
	if count == 0 {
		count = 1
	}
	if count < 0 {
		return model.GenerateResponse{}, crypto.ErrInvalidCount
	}
	if count > s.limits.MaxCount {
		return model.GenerateResponse{}, fmt.Errorf("%w: %d > %d", ErrCountTooLarge, count, s.limits.MaxCount)
	}

	gen := crypto.NewGenerator(s.newSource(), policy,
		crypto.WithMaxDraws(s.limits.MaxDraws),
		crypto.WithMaxAssemblies(s.limits.MaxAssemblies),
	)

	passwords, err := gen.GenerateN(length, count)
	if err != nil {
		slog.Warn("password generation failed", "policy", policy.String(), "length", length, "error", err)
		return model.GenerateResponse{}, err
	}

	slog.Debug("passwords generated", "policy", policy.String(), "length", length, "count", count)

	return model.GenerateResponse{
		Passwords: passwords,
		Length:    length,
		Policy:    policy.String(),
	}, nil
}

// PolicyFromRequest converts the textual selections of req into a Policy.
func PolicyFromRequest(req model.GenerateRequest) (crypto.Policy, error) {
	b := crypto.NewPolicyBuilder()

	classes := []struct {
		name  string
		value string
		set   func(crypto.Requirement) *crypto.PolicyBuilder
	}{
		{"lowercase", req.Lowercase, b.Lowercase},
		{"uppercase", req.Uppercase, b.Uppercase},
		{"digits", req.Digits, b.Digits},
		{"symbols", req.Symbols, b.Symbols},
	}
	for _, c := range classes {
		r, err := crypto.ParseRequirement(c.value)
		if err != nil {
			return crypto.Policy{}, fmt.Errorf("%s: %w", c.name, err)
		}
		c.set(r)
	}

	tags := []struct {
		name  string
		value string
		set   func(bool) *crypto.PolicyBuilder
	}{
		{"ambiguous", req.Ambiguous, b.Ambiguous},
		{"vowels", req.Vowels, b.Vowels},
	}
	for _, tag := range tags {
		allowed, err := crypto.ParseAllowance(tag.value)
		if err != nil {
			return crypto.Policy{}, fmt.Errorf("%s: %w", tag.name, err)
		}
		tag.set(allowed)
	}

	return b.Build(), nil
}
