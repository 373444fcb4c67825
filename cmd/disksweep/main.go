package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/fenilsonani/disksweep/internal/cleaner"
	"github.com/fenilsonani/disksweep/internal/config"
	"github.com/fenilsonani/disksweep/internal/platform"
	"github.com/fenilsonani/disksweep/internal/reporter"
	"github.com/fenilsonani/disksweep/internal/scanner"
	"github.com/fenilsonani/disksweep/internal/security"
	"github.com/fenilsonani/disksweep/internal/sysinfo"
	"github.com/fenilsonani/disksweep/internal/task"
	"github.com/fenilsonani/disksweep/internal/ui"
	"github.com/fenilsonani/disksweep/pkg/utils"
)

var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

var (
	configPath     string
	scanCategory   string
	scanMinDirSize string

	dupesMinSize  string
	dupesMaxDepth int

	largeMinSize  string
	largeMinAge   int64
	largeMaxDepth int

	cleanDryRun     bool
	cleanForce      bool
	cleanNoAgeCheck bool
	cleanMinAge     int64
)

func main() {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		reporter.Plain()
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "disksweep",
	Short: "Find and reclaim wasted disk space",
	Long: `disksweep inventories a filesystem subtree for reclaimable space:
stale caches, large files, exact duplicates, and directory-size
breakdowns. Deletion only happens through the safety gate and only when
asked explicitly.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")

	scanCmd.Flags().StringVar(&scanCategory, "category", "", "scan a single category (e.g. user-cache, logs)")
	scanCmd.Flags().StringVar(&scanMinDirSize, "min-dir-size", "100KB", "directory size floor for results")

	dupesCmd.Flags().StringVar(&dupesMinSize, "min-size", "100KB", "minimum file size to consider")
	dupesCmd.Flags().IntVar(&dupesMaxDepth, "max-depth", 0, "maximum walk depth (0 = unbounded)")

	largeCmd.Flags().StringVar(&largeMinSize, "min-size", "100MB", "minimum file size to report")
	largeCmd.Flags().Int64Var(&largeMinAge, "min-age", 0, "minimum age in days (0 = any age)")
	largeCmd.Flags().IntVar(&largeMaxDepth, "max-depth", 0, "maximum walk depth (0 = unbounded)")

	cleanCmd.Flags().BoolVar(&cleanDryRun, "dry-run", false, "report what would be deleted without deleting")
	cleanCmd.Flags().BoolVar(&cleanForce, "force", false, "actually delete (required unless --dry-run)")
	cleanCmd.Flags().BoolVar(&cleanNoAgeCheck, "no-age-protection", false, "allow deleting recently modified paths")
	cleanCmd.Flags().Int64Var(&cleanMinAge, "min-age", security.DefaultMinAgeDays, "age protection threshold in days")

	rootCmd.AddCommand(scanCmd, treeCmd, dupesCmd, largeCmd, cleanCmd)
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan cleanup categories for reclaimable directories",
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := platform.GetInfo()
		if err != nil {
			return fmt.Errorf("failed to get platform info: %w", err)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		minDirSize, err := sizeSetting(cmd, "min-dir-size", scanMinDirSize, cfg.Scan.CategoryDirMinSize)
		if err != nil {
			return err
		}

		cleanupScanner := scanner.NewCleanupScanner(info).WithMinDirSize(minDirSize)

		items, err := runWithSpinner("Scanning cleanup categories...", func() ([]scanner.ScanItem, error) {
			if scanCategory != "" {
				return cleanupScanner.ScanCategory(platform.Category(scanCategory))
			}
			return cleanupScanner.ScanAll()
		})
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}

		rptr := reporter.New(os.Stdout)
		if stats, err := sysinfo.Collect(scanner.DefaultScanRoot()); err == nil {
			rptr.Header(stats)
		}
		rptr.ScanItems(items)
		return nil
	},
}

var treeCmd = &cobra.Command{
	Use:   "tree [path]",
	Short: "Show a size-annotated directory tree",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := scanner.DefaultScanRoot()
		if len(args) == 1 {
			root = args[0]
		}

		treeScanner := scanner.NewTreeScanner()
		node, err := runWithSpinner("Scanning "+root+"...", func() (*scanner.TreeNode, error) {
			return treeScanner.Scan(root)
		})
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}

		reporter.New(os.Stdout).Tree(node)
		return nil
	},
}

var dupesCmd = &cobra.Command{
	Use:   "dupes [path]",
	Short: "Find duplicate files by size and content hash",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := scanner.DefaultScanRoot()
		if len(args) == 1 {
			root = args[0]
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		minSize, err := sizeSetting(cmd, "min-size", dupesMinSize, cfg.Scan.DuplicateMinSize)
		if err != nil {
			return err
		}

		dupScanner := scanner.NewDuplicateScanner().WithMinSize(minSize)
		if maxDepth := depthSetting(cmd, "max-depth", dupesMaxDepth, cfg.Scan.MaxDepth); maxDepth > 0 {
			dupScanner = dupScanner.WithMaxDepth(maxDepth)
		}

		groups, err := runWithSpinner("Hashing candidates under "+root+"...", func() ([]scanner.DuplicateGroup, error) {
			return dupScanner.Scan(root)
		})
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}

		reporter.New(os.Stdout).Duplicates(groups)
		return nil
	},
}

var largeCmd = &cobra.Command{
	Use:   "large [path]",
	Short: "Find large and old files",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := scanner.DefaultScanRoot()
		if len(args) == 1 {
			root = args[0]
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		minSize, err := sizeSetting(cmd, "min-size", largeMinSize, cfg.Scan.LargeFileMinSize)
		if err != nil {
			return err
		}

		minAge := largeMinAge
		if !cmd.Flags().Changed("min-age") && cfg.Scan.LargeFileMinAge > 0 {
			minAge = cfg.Scan.LargeFileMinAge
		}

		largeScanner := scanner.NewLargeFileScanner().WithMinSize(minSize)
		if minAge > 0 {
			largeScanner = largeScanner.WithMinAgeDays(minAge)
		}
		if maxDepth := depthSetting(cmd, "max-depth", largeMaxDepth, cfg.Scan.MaxDepth); maxDepth > 0 {
			largeScanner = largeScanner.WithMaxDepth(maxDepth)
		}

		items, err := runWithSpinner("Scanning "+root+"...", func() ([]scanner.LargeFileEntry, error) {
			return largeScanner.Scan(root)
		})
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}

		reporter.New(os.Stdout).LargeFiles(items)
		return nil
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean <path>...",
	Short: "Delete the given paths after safety validation",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cleanForce && !cleanDryRun {
			return fmt.Errorf("refusing to delete without --force (use --dry-run to preview)")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		blacklist := security.NewBlacklist(append(
			security.DefaultBlacklist().Entries(),
			cfg.Safety.ProtectedPaths...,
		))
		minAge := cleanMinAge
		if !cmd.Flags().Changed("min-age") {
			minAge = cfg.Safety.MinAgeDays
		}

		sanitizer := security.NewPathSanitizer(blacklist).WithMinAge(minAge)
		if cleanNoAgeCheck || !cfg.Safety.AgeProtection {
			sanitizer = sanitizer.WithoutAgeProtection()
		}

		candidates := make([]cleaner.Candidate, 0, len(args))
		for _, path := range args {
			candidate := cleaner.Candidate{Path: path}
			if info, err := os.Stat(path); err == nil {
				candidate.Size = info.Size()
			}
			candidates = append(candidates, candidate)
		}

		clnr := cleaner.New(sanitizer)
		clnr.SetDryRun(cleanDryRun || cfg.DryRun)

		result := clnr.Clean(candidates)
		reporter.New(os.Stdout).CleanSummary(result)

		if len(result.Rejected) > 0 {
			return fmt.Errorf("%d paths were refused by the safety gate", len(result.Rejected))
		}
		return nil
	},
}

// runWithSpinner dispatches fn to a worker and, when stdout is a TTY,
// shows a spinner while polling for the result.
func runWithSpinner[T any](message string, fn func() (T, error)) (T, error) {
	handle := task.Submit(fn)

	if isatty.IsTerminal(os.Stdout.Fd()) {
		_ = ui.RunProgress(message, func() bool {
			_, done, _ := handle.Poll()
			return done
		})
	}

	return handle.Wait()
}

// sizeSetting resolves a size threshold: an explicitly set flag wins,
// otherwise the config value is used when present.
func sizeSetting(cmd *cobra.Command, name, flagValue, configValue string) (int64, error) {
	if !cmd.Flags().Changed(name) && configValue != "" {
		return utils.ParseSize(configValue)
	}
	return utils.ParseSize(flagValue)
}

// depthSetting resolves a walk depth bound with the same precedence.
func depthSetting(cmd *cobra.Command, name string, flagValue, configValue int) int {
	if !cmd.Flags().Changed(name) && configValue > 0 {
		return configValue
	}
	return flagValue
}

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		defaultPath, err := config.GetConfigPath()
		if err != nil {
			return config.GetDefault(), nil
		}
		path = defaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
