// Command debruijn prints a random f-fold de Bruijn sequence.
//
// Usage:
//
//	debruijn <k> <n> [-f fold] [--seed s] [--sep]
//
// The sequence is rendered compactly (digits, then letters) for alphabets
// of up to 62 symbols; --sep, or any larger alphabet, switches to
// comma-joined decimal symbols. Without --seed the sequence differs on
// every run.
//
// Exit codes: 0 on success, 2 on invalid arguments or generation failure.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/debruijn"
)

const (
	exitSuccess = 0
	exitError   = 2
)

var (
	fold int
	seed int64
	sep  bool
)

var rootCmd = &cobra.Command{
	Use:   "debruijn <k> <n>",
	Short: "Generate a random de Bruijn sequence",
	Long: `Generate a random de Bruijn sequence of order n over an alphabet of k
symbols: a cyclic sequence of length k^n in which every possible length-n
window occurs exactly once (or f times with --fold f).

Without --seed the generator is seeded from the clock; pass a fixed seed
for a reproducible sequence.`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         run,
}

func run(cmd *cobra.Command, args []string) error {
	k, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("alphabet size: %w", err)
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("order: %w", err)
	}

	s := seed
	if !cmd.Flags().Changed("seed") {
		s = time.Now().UnixNano()
	}

	seq, err := debruijn.Generate(k, n, fold, debruijn.WithSeed(s))
	if err != nil {
		if errors.Is(err, debruijn.ErrInvalidParameter) {
			return fmt.Errorf("%w (need k >= 2, n >= 1, fold >= 1)", err)
		}

		return err
	}

	if !sep && k <= debruijn.MaxCompactAlphabet {
		out, err := debruijn.SymbolString(seq, k)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)

		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), debruijn.Format(seq))

	return nil
}

func main() {
	rootCmd.Flags().IntVarP(&fold, "fold", "f", 1, "window multiplicity: every length-n window occurs fold times")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed for a reproducible sequence (default: clock)")
	rootCmd.Flags().BoolVar(&sep, "sep", false, "force comma-separated decimal output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitError)
	}
	os.Exit(exitSuccess)
}
