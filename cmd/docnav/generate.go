package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docnav/internal/emit"
)

func generateCmd() *cobra.Command {
	var (
		scan       scanFlags
		formatFlag string
		outputFlag string
		indentFlag int
	)

	cmd := &cobra.Command{
		Use:   "generate [dir]",
		Short: "Write the sidebar as JSON or YAML",
		Long: `Scan dir (relative to the documentation root) and write the sidebar
entries. Nothing is written unless the whole tree was built.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := scan.resolve(cmd, args)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("format") {
				cfg.Format = formatFlag
			}
			if flags.Changed("output") {
				cfg.Output = outputFlag
			}
			if flags.Changed("indent") {
				cfg.Indent = indentFlag
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			nodes, err := build(cfg, log)
			if err != nil {
				return fmt.Errorf("build sidebar: %w", err)
			}

			var buf bytes.Buffer
			if err := emit.Write(&buf, nodes, cfg.Format, cfg.Indent); err != nil {
				return err
			}

			if cfg.Output == "" || cfg.Output == "-" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(cfg.Output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", cfg.Output, err)
			}
			log.Info("wrote sidebar", "path", cfg.Output, "bytes", buf.Len())
			return nil
		},
	}

	scan.register(cmd)
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "json", "output format: json, yaml")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "-", "output file, - for stdout")
	cmd.Flags().IntVar(&indentFlag, "indent", 2, "indent width, 0 for compact JSON")

	return cmd
}
