package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docnav/internal/config"
	"github.com/dgallion1/docnav/internal/navtree"
	"github.com/dgallion1/docnav/internal/sidebar"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "docnav",
		Short:         "Generate a documentation sidebar from a docs directory",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(generateCmd())
	root.AddCommand(treeCmd())
	root.AddCommand(versionCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "docnav %s (commit: %s)\n", version, commit)
		},
	}
}

// scanFlags are the flags shared by every command that builds a sidebar.
type scanFlags struct {
	configPath   string
	root         string
	rootMarker   string
	vendorMarker string
	ext          string
	verbose      bool
}

func (f *scanFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "TOML config file")
	cmd.Flags().StringVar(&f.root, "root", "docs", "documentation root directory")
	cmd.Flags().StringVar(&f.rootMarker, "root-marker", "docs", "path segment links are made relative to")
	cmd.Flags().StringVar(&f.vendorMarker, "vendor-marker", "node_modules", "directory name never scanned")
	cmd.Flags().StringVar(&f.ext, "ext", ".md", "document extension")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log every scanned directory")
}

// resolve merges environment, config file, flags and args, in that order.
// The caller validates the result.
func (f *scanFlags) resolve(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg := config.Load()
	if f.configPath != "" {
		var err error
		if cfg, err = config.LoadFile(cfg, f.configPath); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.RootDir = f.root
	}
	if flags.Changed("root-marker") {
		cfg.RootMarker = f.rootMarker
	}
	if flags.Changed("vendor-marker") {
		cfg.VendorMarker = f.vendorMarker
	}
	if flags.Changed("ext") {
		cfg.Extension = f.ext
	}
	if flags.Changed("verbose") {
		cfg.Verbose = f.verbose
	}
	if len(args) > 0 {
		cfg.Dir = args[0]
	}

	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// build scans cfg.Dir under cfg.RootDir on the local filesystem.
func build(cfg config.Config, log *slog.Logger) ([]*navtree.Node, error) {
	b := sidebar.New(sidebar.OSSource{}, sidebar.Options{
		RootBase:     cfg.RootDir,
		RootMarker:   cfg.RootMarker,
		VendorMarker: cfg.VendorMarker,
		Extension:    cfg.Extension,
		Logger:       log,
	})
	return b.Build(cfg.Dir)
}
