// Package cli wires the linter's packages into the widgetlint command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/spf13/cobra"

	"github.com/phobologic/widgetlint/internal/config"
	"github.com/phobologic/widgetlint/internal/discover"
	"github.com/phobologic/widgetlint/internal/engine"
	"github.com/phobologic/widgetlint/internal/report"
	"github.com/phobologic/widgetlint/internal/rule"
	_ "github.com/phobologic/widgetlint/internal/rules"
)

// ErrFindings is returned when diagnostics at or above the fail-on
// severity were reported; main translates it into a non-zero exit without
// printing a redundant error line.
var ErrFindings = errors.New("findings at or above fail-on severity")

// Version is stamped by the build; "dev" otherwise.
var Version = "dev"

// New constructs the root command.
func New() *cobra.Command {
	var (
		configPath string
		format     string
		failOn     string
		showFixes  bool
		summary    bool
	)

	root := &cobra.Command{
		Use:           "widgetlint [path]",
		Short:         "Lint Flutter widget-construction code",
		Args:          cobra.MaximumNArgs(1),
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			return runLint(cmd, lintOptions{
				root:       path,
				configPath: configPath,
				format:     format,
				failOn:     failOn,
				showFixes:  showFixes,
				summary:    summary,
			})
		},
	}

	root.Flags().StringVar(&configPath, "config", "", "path to a .widgetlint.yaml (default: search the lint root)")
	root.Flags().StringVar(&format, "format", "", "output format: text or json (overrides config)")
	root.Flags().StringVar(&failOn, "fail-on", "", "lowest severity that fails the run (overrides config)")
	root.Flags().BoolVar(&showFixes, "show-fixes", false, "print fix previews under each diagnostic")
	root.Flags().BoolVar(&summary, "summary", false, "print a per-rule count table after the run")

	root.AddCommand(newRulesCmd())
	return root
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the registered rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report.RuleTable(cmd.OutOrStdout(), rule.GlobalRegistry().All())
			return nil
		},
	}
}

type lintOptions struct {
	root       string
	configPath string
	format     string
	failOn     string
	showFixes  bool
	summary    bool
}

func runLint(cmd *cobra.Command, opts lintOptions) error {
	root, err := filepath.Abs(opts.root)
	if err != nil {
		return fmt.Errorf("resolving root: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("lint root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: not a directory", root)
	}

	cfg, err := config.Load(root, opts.configPath)
	if err != nil {
		return err
	}
	if opts.format != "" {
		cfg.Format = opts.format
	}
	if opts.failOn != "" {
		cfg.FailOn = opts.failOn
	}
	failOn, err := rule.ParseSeverity(cfg.FailOn)
	if err != nil {
		return fmt.Errorf("fail-on: %w", err)
	}
	severities, err := cfg.Severities()
	if err != nil {
		return err
	}

	active := cfg.ActiveRules(rule.GlobalRegistry().All())
	if len(active) == 0 {
		return errors.New("no rules enabled")
	}

	eng := engine.New(active, engine.Options{
		Bounds:     cfg.Bounds(),
		MaxDepth:   cfg.Walker.MaxDepth,
		Severities: severities,
	})

	files, err := discover.Files(root, int64(cfg.MaxFileSize))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("no Dart files found")
	}

	diags, sources := lintConcurrent(cmd.Context(), eng, root, files, cmd.ErrOrStderr())

	switch cfg.Format {
	case "", "text":
		tw := &report.TextWriter{Out: cmd.OutOrStdout(), ShowFixes: opts.showFixes, Sources: sources}
		if err := tw.Write(diags); err != nil {
			return err
		}
	case "json":
		if err := report.WriteJSON(cmd.OutOrStdout(), diags); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q", cfg.Format)
	}

	if opts.summary {
		report.WriteSummary(cmd.OutOrStdout(), diags)
	}

	for _, d := range diags {
		if d.Severity >= failOn {
			return ErrFindings
		}
	}
	return nil
}

// lintConcurrent runs the engine over files with one worker per CPU,
// returning diagnostics in deterministic order plus the sources needed for
// fix previews. Parse failures are warnings: a file the grammar cannot
// handle is skipped, not fatal.
func lintConcurrent(ctx context.Context, eng *engine.Engine, root string, files []string, stderr interface{ Write([]byte) (int, error) }) ([]rule.Diagnostic, map[string][]byte) {
	if ctx == nil {
		ctx = context.Background()
	}

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > len(files) {
		numWorkers = len(files)
	}

	type result struct {
		path   string
		diags  []rule.Diagnostic
		source []byte
	}

	work := make(chan string, len(files))
	results := make(chan result, len(files))

	var wg sync.WaitGroup
	var stderrMu sync.Mutex

	for range numWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rel := range work {
				source, err := os.ReadFile(filepath.Join(root, rel))
				if err == nil {
					var diags []rule.Diagnostic
					diags, _, err = eng.LintSource(ctx, rel, source)
					if err == nil {
						results <- result{path: rel, diags: diags, source: source}
						continue
					}
				}
				stderrMu.Lock()
				fmt.Fprintf(stderr, "Warning: %s: %v\n", rel, err)
				stderrMu.Unlock()
			}
		}()
	}

	for _, f := range files {
		work <- f
	}
	close(work)

	go func() {
		wg.Wait()
		close(results)
	}()

	sources := make(map[string][]byte, len(files))
	var diags []rule.Diagnostic
	for r := range results {
		sources[r.path] = r.source
		diags = append(diags, r.diags...)
	}

	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].Path != diags[j].Path {
			return diags[i].Path < diags[j].Path
		}
		return diags[i].Span.Start < diags[j].Span.Start
	})
	return diags, sources
}
