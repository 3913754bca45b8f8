package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Willie169/bython/internal/diag"
	"github.com/Willie169/bython/internal/diagfmt"
	"github.com/Willie169/bython/internal/driver"
	"github.com/Willie169/bython/internal/observ"
	"github.com/Willie169/bython/internal/project"
	"github.com/Willie169/bython/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [path]",
	Short: "Lexically check bython sources",
	Long: `Check tokenizes a file or every *.by file under a directory and
reports lexical diagnostics. With no path it checks the current project,
using bython.toml to locate the source root when present.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = auto)")
	checkCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	checkCmd.Flags().String("format", "pretty", "diagnostics format (pretty|json)")
	checkCmd.Flags().Bool("no-cache", false, "skip the token disk cache")
	checkCmd.Flags().Bool("timings", false, "print per-phase timings to stderr")
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 && args[0] != "" {
		target = args[0]
	}

	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	jobs, _ := cmd.Flags().GetInt("jobs")
	format, _ := cmd.Flags().GetString("format")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	timings, _ := cmd.Flags().GetBool("timings")
	uiFlag, _ := cmd.Flags().GetString("ui")

	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat %q: %w", target, err)
	}

	timer := observ.NewTimer()

	if !info.IsDir() {
		phase := timer.Begin("tokenize")
		result, err := driver.Tokenize(target, maxDiagnostics)
		timer.End(phase, target)
		if err != nil {
			return err
		}
		err = report(cmd, format, result.FileSet, result.Bag, quiet)
		if timings {
			fmt.Fprint(os.Stderr, timer.Summary())
		}
		return err
	}

	dir, manifest, err := resolveCheckDir(target)
	if err != nil {
		return err
	}
	if manifest != nil {
		if jobs == 0 {
			jobs = manifest.Jobs
		}
		if maxDiagnostics == 100 && manifest.MaxDiagnostics > 0 {
			maxDiagnostics = manifest.MaxDiagnostics
		}
	}

	var cache *driver.DiskCache
	if !noCache {
		// a broken cache dir is not fatal for a check run
		cache, _ = driver.OpenDiskCache("bython")
	}

	opts := driver.TokenizeDirOptions{
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
		Cache:          cache,
	}

	var (
		fileSet *source.FileSet
		results []driver.TokenizeDirResult
	)
	phase := timer.Begin("tokenize")
	if shouldUseTUI(mode) && format == "pretty" {
		fileSet, results, err = runTokenizeDirWithUI(cmd.Context(), "check "+dir, dir, opts)
	} else {
		fileSet, results, err = driver.TokenizeDir(cmd.Context(), dir, opts)
	}
	timer.End(phase, fmt.Sprintf("%d files", len(results)))
	if err != nil {
		return err
	}

	merged := diag.NewBag(maxDiagnostics * max(len(results), 1))
	for _, res := range results {
		merged.Merge(res.Bag)
	}
	phase = timer.Begin("report")
	err = report(cmd, format, fileSet, merged, quiet)
	timer.End(phase, "")
	if timings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	return err
}

// resolveCheckDir maps a directory argument onto the manifest's source root
// when the directory belongs to a bython project.
func resolveCheckDir(dir string) (string, *project.Manifest, error) {
	manifestPath, ok, err := project.FindManifest(dir)
	if err != nil || !ok {
		return dir, nil, err
	}
	manifest, err := project.LoadManifest(manifestPath)
	if err != nil {
		return "", nil, err
	}
	root, err := project.ResolveSourceRoot(filepath.Dir(manifestPath), manifest.Root)
	if err != nil {
		return "", nil, err
	}
	return root, &manifest, nil
}

func report(cmd *cobra.Command, format string, fs *source.FileSet, bag *diag.Bag, quiet bool) error {
	bag.Sort()
	bag.Dedup()

	switch format {
	case "json":
		err := diagfmt.JSON(os.Stdout, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
			PathMode:         diagfmt.PathModeRelative,
		})
		if err != nil {
			return err
		}
	default:
		diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
			PathMode:  diagfmt.PathModeRelative,
		})
		if !quiet && !bag.HasWarnings() {
			fmt.Fprintln(os.Stdout, "ok")
		}
	}

	if bag.HasErrors() {
		return fmt.Errorf("found %d diagnostics", bag.Len())
	}
	return nil
}
