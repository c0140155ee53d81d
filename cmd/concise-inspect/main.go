// Command concise-inspect loads a dumped ConciseSet from disk and prints
// its cardinality, min/max members, and compression ratios. It carries no
// set-algebra logic of its own — it is a thin operator-facing wrapper
// over conciseio and conciseconfig.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/conciseset/concise"
	"github.com/chronos-tachyon/conciseset/conciseconfig"
	"github.com/chronos-tachyon/conciseset/conciseio"
)

func main() {
	var gzipped bool
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "concise-inspect [file]",
		Short: "Inspect a persisted ConciseSet dump",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			applyVerbosity(cfg.Debug.Verbosity)
			concise.SetGrowthFactor(cfg.Storage.GrowthFactor)

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("concise-inspect: open %s: %w", args[0], err)
			}
			defer f.Close()

			var s *concise.ConciseSet
			if gzipped {
				s, err = conciseio.LoadGzip(f)
			} else {
				s, err = conciseio.Load(f)
			}
			if err != nil {
				return fmt.Errorf("concise-inspect: load %s: %w", args[0], err)
			}

			printReport(cmd, s)
			return nil
		},
	}
	rootCmd.Flags().BoolVar(&gzipped, "gzip", false, "Dump is gzip-compressed")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to conciseconfig TOML file (default: platform config dir)")

	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("concise-inspect failed")
		os.Exit(1)
	}
}

func loadConfig(path string) (*conciseconfig.Config, error) {
	if path == "" {
		return conciseconfig.Load()
	}
	return conciseconfig.LoadFrom(path)
}

func applyVerbosity(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

func printReport(cmd *cobra.Command, s *concise.ConciseSet) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "cardinality:  %d\n", s.Len())
	if s.IsEmpty() {
		fmt.Fprintln(out, "min:          (empty)")
		fmt.Fprintln(out, "max:          (empty)")
		return
	}
	min, _ := s.First()
	fmt.Fprintf(out, "min:          %d\n", min)
	fmt.Fprintf(out, "max:          %d\n", s.MaxSetBit())
	fmt.Fprintf(out, "words:        %d\n", len(s.Words()))
	fmt.Fprintf(out, "bitmap ratio: %.4f\n", s.BitmapCompressionRatio())
	fmt.Fprintf(out, "coll. ratio:  %.4f\n", s.CollectionCompressionRatio())
}
