package main

import (
	"context"
	"fmt"
	"os"

	"github.com/praetorian-inc/minigrep"
	"github.com/praetorian-inc/minigrep/pkg/config"
	"github.com/praetorian-inc/minigrep/pkg/input"
	"github.com/praetorian-inc/minigrep/pkg/report"
	"github.com/praetorian-inc/minigrep/pkg/search"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool

	regexPattern string
	ignoreCase   bool
	noIgnoreCase bool
	countOnly    bool
	engineName   string
	jobs         int
	configPath   string
	colorMode    string
)

var rootCmd = &cobra.Command{
	Use:   "minigrep [flags] PATTERN [FILE...]\n  minigrep [flags] -e REGEX [FILE...]",
	Short: "Search files or piped text for lines matching a pattern",
	Long: `minigrep prints the lines of each FILE that contain PATTERN.

With no FILE and piped standard input, the piped text is searched.
With -e the pattern is a regular expression and every non-empty whole
match and capture group is printed on its own line.`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runSearch,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")

	addSearchFlags(rootCmd)

	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionInfo())
}

// addSearchFlags registers the search flags on cmd, resetting the bound
// variables to their defaults.
func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&regexPattern, "regexp", "e", "", "Search with a regular expression; remaining arguments are files")
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "Case-insensitive literal search")
	cmd.Flags().BoolVar(&noIgnoreCase, "no-ignore-case", false, "Case-sensitive literal search (overrides -i and CASE_INSENSITIVE)")
	cmd.Flags().BoolVarP(&countOnly, "count", "c", false, "Print the number of matches instead of the matches")
	cmd.Flags().StringVar(&engineName, "engine", string(search.EngineRE2), "Regex engine: re2, backtrack")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Files searched concurrently (default GOMAXPROCS)")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to YAML config file (default $MINIGREP_CONFIG)")
	cmd.Flags().StringVar(&colorMode, "color", report.ColorAuto, "Color diagnostics: auto, always, never")
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		diag := report.NewDiagnostics(rootCmd.ErrOrStderr(), quiet, report.ColorEnabled(colorMode, os.Stderr))
		diag.Errorf("%v", err)
	}
	return err
}

func runSearch(cmd *cobra.Command, args []string) error {
	diag := report.NewDiagnostics(cmd.ErrOrStderr(), quiet, report.ColorEnabled(colorMode, os.Stderr))

	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	opts := []minigrep.Option{
		minigrep.WithCaseSensitive(cfg.CaseSensitive),
		minigrep.WithEngine(cfg.Engine),
		minigrep.WithJobs(cfg.Jobs),
	}
	if cfg.Regex {
		opts = append(opts, minigrep.WithRegex())
	}

	searcher, err := minigrep.NewSearcher(cfg.Pattern, opts...)
	if err != nil {
		return err
	}

	printer := &report.Printer{
		Out:     cmd.OutOrStdout(),
		Count:   cfg.Count,
		Headers: len(cfg.Files) > 1,
	}

	if cfg.Piped {
		src, err := input.ReadStdin(cmd.InOrStdin())
		if err != nil {
			return err
		}
		cfg.PipedText = src.Content
		if verbose {
			diag.Infof("%s", cfg)
		}

		res, err := searcher.SearchSource(src)
		if err != nil {
			return err
		}
		return printer.PrintAll([]search.Result{res})
	}

	if verbose {
		diag.Infof("%s", cfg)
		diag.Infof("mode %s, %d jobs", searcher.Mode(), cfg.Jobs)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results, searchErr := searcher.SearchFiles(ctx, cfg.Files)

	// Files before a failing one are still printed, in order
	if err := printer.PrintAll(results); err != nil {
		return err
	}
	return searchErr
}

// resolveConfig builds the invocation settings from the config file, the
// environment and the command line, in increasing precedence.
func resolveConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("regexp") {
		cfg.Regex = true
		cfg.Pattern = regexPattern
		cfg.Files = args
	} else {
		if len(args) == 0 {
			return config.Config{}, fmt.Errorf("problem parsing arguments: %w", config.ErrNotEnoughArguments)
		}
		cfg.Pattern = args[0]
		cfg.Files = args[1:]
	}

	if ignoreCase {
		cfg.CaseSensitive = false
	}
	if noIgnoreCase {
		cfg.CaseSensitive = true
	}
	if flags.Changed("count") {
		cfg.Count = countOnly
	}
	if flags.Changed("engine") {
		engine, err := search.ParseEngine(engineName)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Engine = engine
	}
	if flags.Changed("jobs") {
		cfg.Jobs = jobs
	}

	cfg.Piped = len(cfg.Files) == 0 && stdinIsPiped(cmd)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("problem parsing arguments: %w", err)
	}
	return cfg, nil
}

// stdinIsPiped reports whether the command's input is something other than
// an interactive terminal.
func stdinIsPiped(cmd *cobra.Command) bool {
	if f, ok := cmd.InOrStdin().(*os.File); ok {
		return input.IsPiped(f)
	}
	return true
}
