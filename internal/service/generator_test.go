package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/vaultpass/pwgen/internal/crypto"
	"github.com/vaultpass/pwgen/internal/model"
)

func newTestGeneratorService() *GeneratorService {
	return NewGeneratorService(DefaultLimits(), nil)
}

func TestGenerate_Defaults(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 8 {
		t.Errorf("expected length 8, got %d", resp.Length)
	}
	if len(resp.Passwords) != 1 {
		t.Fatalf("expected 1 password, got %d", len(resp.Passwords))
	}
	for _, c := range resp.Passwords[0] {
		if c < 'a' || c > 'z' {
			t.Errorf("unexpected character %q in password with default policy", c)
		}
	}
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    32,
		Count:     5,
		Uppercase: "must",
		Digits:    "must",
		Symbols:   "must_not",
		Ambiguous: "forbid",
		Vowels:    "forbid",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Passwords) != 5 {
		t.Fatalf("expected 5 passwords, got %d", len(resp.Passwords))
	}
	if resp.Policy != "uppercase=must digits=must symbols=may ambiguous=forbid vowels=forbid" {
		t.Errorf("unexpected policy summary %q", resp.Policy)
	}
	for _, p := range resp.Passwords {
		if len(p) != 32 {
			t.Errorf("expected password length 32, got %d", len(p))
		}
		if !strings.ContainsAny(p, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") || !strings.ContainsAny(p, "0123456789") {
			t.Errorf("password %q missing a mandatory class", p)
		}
		if strings.ContainsAny(p, "B8G6I1l0OQDS5Z2aeiouyAEIOUY") {
			t.Errorf("password %q contains a forbidden character", p)
		}
	}
}

func TestGenerate_SeededSourceIsReproducible(t *testing.T) {
	newSvc := func() *GeneratorService {
		return NewGeneratorService(DefaultLimits(), func() crypto.RandomSource { return crypto.NewSeededSource(99) })
	}
	req := model.GenerateRequest{Length: 12, Uppercase: "must", Symbols: "must"}

	a, err := newSvc().Generate(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := newSvc().Generate(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Passwords[0] != b.Passwords[0] {
		t.Errorf("expected identical passwords, got %q and %q", a.Passwords[0], b.Passwords[0])
	}
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     model.GenerateRequest
		wantErr error
	}{
		{"length too long", model.GenerateRequest{Length: 200}, ErrLengthTooLong},
		{"negative length", model.GenerateRequest{Length: -1}, crypto.ErrInvalidLength},
		{"count too large", model.GenerateRequest{Count: 51}, ErrCountTooLarge},
		{"negative count", model.GenerateRequest{Count: -2}, crypto.ErrInvalidCount},
		{"bad requirement", model.GenerateRequest{Digits: "always"}, crypto.ErrInvalidRequirement},
		{"bad allowance", model.GenerateRequest{Vowels: "sometimes"}, crypto.ErrInvalidAllowance},
		{
			"shorter than mandatory classes",
			model.GenerateRequest{Length: 2, Uppercase: "must", Digits: "must", Symbols: "must"},
			crypto.ErrUnsatisfiablePolicy,
		},
	}

	svc := newTestGeneratorService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Generate(tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPolicyFromRequest(t *testing.T) {
	p, err := PolicyFromRequest(model.GenerateRequest{
		Lowercase: "must_not",
		Uppercase: "MUST",
		Ambiguous: "forbid",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.MustIncludeUppercase() || p.MustIncludeDigits() || p.MustIncludeSymbols() {
		t.Errorf("unexpected class requirements: %s", p)
	}
	if p.MayIncludeAmbiguous() || !p.MayIncludeVowels() {
		t.Errorf("unexpected tag allowances: %s", p)
	}

	_, err = PolicyFromRequest(model.GenerateRequest{Symbols: "x"})
	if err == nil || !strings.HasPrefix(err.Error(), "symbols:") {
		t.Errorf("expected error naming the symbols field, got %v", err)
	}
}
