package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docnav/internal/emit"
	"github.com/dgallion1/docnav/internal/navtree"
)

func treeCmd() *cobra.Command {
	var scan scanFlags

	cmd := &cobra.Command{
		Use:   "tree [dir]",
		Short: "Print the sidebar as an indented outline",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := scan.resolve(cmd, args)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			nodes, err := build(cfg, newLogger(cmd.ErrOrStderr(), cfg.Verbose))
			if err != nil {
				return fmt.Errorf("build sidebar: %w", err)
			}

			out := cmd.OutOrStdout()
			if err := emit.Outline(out, nodes); err != nil {
				return err
			}
			leaves, groups := navtree.Count(nodes)
			_, err = fmt.Fprintf(out, "\n%d documents, %d groups\n", leaves, groups)
			return err
		},
	}

	scan.register(cmd)
	return cmd
}
