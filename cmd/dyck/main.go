package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/geofduf/dyck-words/sequence"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool
	timeout time.Duration

	// List flags
	countOnly bool
	asJSON    bool
	first     uint64
	last      uint64

	// Dump flags
	output     string
	storeLimit uint

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dyck [semilength]",
	Short: "Enumerate Dyck words in increasing numeric order",
	Long: `dyck lists every Dyck word of a given semilength, one per line, as a
0b prefix followed by 2n binary digits (1 is an up-step, 0 a down-step).

Words are produced from the smallest one, 0b1010...10, by a constant-time
successor step, so listing costs one step per word.

Run with a semilength to list its words, same as "dyck list".`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runList(cmd, args)
	},
}

// listCmd lists the words of one semilength
var listCmd = &cobra.Command{
	Use:   "list [semilength]",
	Short: "List every Dyck word of a semilength",
	Long: `Prints the number of Dyck words of the semilength, then every word in
increasing numeric order.

Examples:
  dyck list 3
  dyck list 10 --first 100 --last 199
  dyck list 4 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

// countCmd prints Catalan numbers
var countCmd = &cobra.Command{
	Use:   "count [semilength...]",
	Short: "Print the number of Dyck words of each semilength",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCount,
}

// nextCmd computes successors of given words
var nextCmd = &cobra.Command{
	Use:   "next [word...]",
	Short: "Print the word following each given word",
	Long: `Parses each word from its 0b form and prints the next Dyck word of the
same semilength. Words that cannot be parsed, have an odd number of digits or
are the largest of their semilength are logged and skipped.

The balance of the input is not checked: a word that is not a Dyck word
yields an unspecified result.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNext,
}

// dumpCmd exports enumerations
var dumpCmd = &cobra.Command{
	Use:   "dump [semilength...]",
	Short: "Compute enumerations concurrently and export them to a file",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDump,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Operation timeout")

	// List flags, shared with the root command
	for _, cmd := range []*cobra.Command{rootCmd, listCmd} {
		cmd.Flags().BoolVarP(&countOnly, "count", "c", false, "Only print the number of words")
		cmd.Flags().BoolVar(&asJSON, "json", false, "Print words as a JSON array")
		cmd.Flags().Uint64Var(&first, "first", 0, "Rank of the first word to print")
		cmd.Flags().Uint64Var(&last, "last", math.MaxUint64, "Rank of the last word to print")
	}

	// Dump flags
	dumpCmd.Flags().StringVarP(&output, "output", "o", "", "Output file (required)")
	dumpCmd.Flags().UintVar(&storeLimit, "limit", sequence.DefaultStoreLimit, "Largest semilength accepted")
	dumpCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(dumpCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseSemilength parses a semilength argument
func parseSemilength(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("invalid semilength %q: %w", s, err)
	}
	return uint(n), nil
}

// runList prints the count header then the requested words
func runList(cmd *cobra.Command, args []string) error {
	n, err := parseSemilength(args[0])
	if err != nil {
		return err
	}
	e, err := sequence.NewEnumerator(n)
	if err != nil {
		return err
	}
	logger.Debug("Enumerating", zap.Uint("semilength", n), zap.Uint64("count", e.Count()))

	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()

	if asJSON {
		if countOnly {
			_, err = fmt.Fprintf(out, "{\"semilength\":%d,\"count\":%d}\n", n, e.Count())
			return err
		}
		words, err := sequence.Query(n, first, last)
		if err != nil {
			return err
		}
		flag := sequence.SerializeRank | sequence.SerializeText | sequence.SerializeValue
		if _, err := out.Write(sequence.Serialize(words, n, first, flag)); err != nil {
			return err
		}
		return out.WriteByte('\n')
	}

	if first > last {
		return errors.New("--first is greater than --last")
	}
	if first >= e.Count() {
		return fmt.Errorf("ranks %d to %d: %w", first, last, sequence.ErrOutOfBounds)
	}
	fmt.Fprintf(out, "\nThe number of Dyck words of semilength %d is: %d\n\n", n, e.Count())
	if countOnly {
		return nil
	}
	start := time.Now()
	buf := make([]byte, 0, 3+2*n)
	var printed uint64
	for e.Next() {
		if e.Rank() < first {
			continue
		}
		buf = append(sequence.AppendFormat(buf[:0], e.Sequence(), n), '\n')
		if _, err := out.Write(buf); err != nil {
			return err
		}
		printed++
		if e.Rank() == last {
			break
		}
	}
	logger.Debug("Enumeration complete",
		zap.Uint64("printed", printed),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// runCount prints the Catalan number of each semilength
func runCount(cmd *cobra.Command, args []string) error {
	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()
	for _, arg := range args {
		n, err := parseSemilength(arg)
		if err != nil {
			return err
		}
		c, err := sequence.Catalan(n)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d\t%d\n", n, c)
	}
	return nil
}

// runNext prints the successor of each word, skipping the ones it cannot
// advance
func runNext(cmd *cobra.Command, args []string) error {
	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()
	var skipped int
	for _, arg := range args {
		w, width, err := sequence.ParseWidth(arg)
		if err == nil && width%2 != 0 {
			err = fmt.Errorf("odd number of digits %d", width)
		}
		if err == nil && width > 0 && w>>uint(width-1) == 0 {
			err = errors.New("does not start with an up-step")
		}
		if err == nil {
			if top, _ := sequence.Max(uint(width / 2)); w == top {
				err = errors.New("largest word of its semilength")
			}
		}
		if err != nil {
			logger.Warn("Skipping word", zap.String("word", arg), zap.Error(err))
			skipped++
			continue
		}
		fmt.Fprintln(out, sequence.Format(sequence.Next(w), uint(width/2)))
	}
	if skipped > 0 {
		logger.Info("Some words were skipped", zap.Int("skipped", skipped), zap.Int("total", len(args)))
	}
	return nil
}

// runDump warms a store with the given semilengths and writes its export
func runDump(cmd *cobra.Command, args []string) error {
	ns := make([]uint, 0, len(args))
	for _, arg := range args {
		n, err := parseSemilength(arg)
		if err != nil {
			return err
		}
		ns = append(ns, n)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := sequence.NewStore(storeLimit)
	start := time.Now()
	if err := store.Warm(ctx, ns...); err != nil {
		return fmt.Errorf("failed to compute enumerations: %w", err)
	}
	data, err := store.Dump()
	if err != nil {
		return fmt.Errorf("failed to export store: %w", err)
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	logger.Info("Store exported",
		zap.String("output", output),
		zap.Uints("semilengths", store.Keys()),
		zap.Int("bytes", len(data)),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}
