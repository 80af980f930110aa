// pwgen prints random passwords built from per-class inclusion rules.
//
//	pwgen -l 12 -c 5 --uppercase must --digits must --ambiguous forbid
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/vaultpass/pwgen/internal/config"
	"github.com/vaultpass/pwgen/internal/crypto"
	"github.com/vaultpass/pwgen/internal/model"
	"github.com/vaultpass/pwgen/internal/service"
)

type options struct {
	req           model.GenerateRequest
	seed          uint64
	maxDraws      int
	maxAssemblies int
	verbose       bool
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd(config.Load()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:          "pwgen",
		Short:        "Generate random passwords",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, opts)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.req.Length, "length", "l", cfg.DefaultLength, "Password length")
	f.IntVarP(&opts.req.Count, "count", "c", 1, "Number of passwords to generate")
	f.StringVar(&opts.req.Lowercase, "lowercase", "may", "Lowercase letters: must, may or must_not")
	f.StringVar(&opts.req.Uppercase, "uppercase", "may", "Uppercase letters: must, may or must_not")
	f.StringVar(&opts.req.Digits, "digits", "may", "Digits: must, may or must_not")
	f.StringVar(&opts.req.Symbols, "symbols", "may", "Symbols: must, may or must_not")
	f.StringVar(&opts.req.Ambiguous, "ambiguous", "allow", "Ambiguous characters: allow or forbid")
	f.StringVar(&opts.req.Vowels, "vowels", "allow", "Vowels and vowel-like digits: allow or forbid")
	f.Uint64Var(&opts.seed, "seed", 0, "Seed for reproducible output (0 uses crypto/rand)")
	f.IntVar(&opts.maxDraws, "max-draws", cfg.MaxDraws, "Rejected draws allowed per character")
	f.IntVar(&opts.maxAssemblies, "max-assemblies", cfg.MaxAssemblies, "Candidate passwords tried before giving up")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr")

	return cmd
}

func run(cmd *cobra.Command, cfg config.Config, opts options) error {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	var newSource func() crypto.RandomSource
	if opts.seed != 0 {
		newSource = func() crypto.RandomSource { return crypto.NewSeededSource(opts.seed) }
	}

	svc := service.NewGeneratorService(service.Limits{
		DefaultLength: cfg.DefaultLength,
		MaxLength:     cfg.MaxLength,
		MaxCount:      cfg.MaxCount,
		MaxDraws:      opts.maxDraws,
		MaxAssemblies: opts.maxAssemblies,
	}, newSource)

	resp, err := svc.Generate(opts.req)
	if err != nil {
		return err
	}
	return printPasswords(cmd.OutOrStdout(), resp.Passwords)
}

func printPasswords(w io.Writer, passwords []string) error {
	for _, p := range passwords {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return err
		}
	}
	return nil
}
