package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/odvcencio/grit/pkg/repo"
	"github.com/spf13/cobra"
)

func newLocateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "locate [dir]",
		Short: "Print the worktree root of the repository enclosing dir",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := opts.dir
			if len(args) == 1 {
				start = args[0]
				if !filepath.IsAbs(start) {
					start = filepath.Join(opts.dir, start)
				}
			}

			root, err := repo.Locate(start)
			if err != nil {
				return err
			}
			slog.Debug("located repository", "start", start, "root", root)
			fmt.Fprintln(cmd.OutOrStdout(), root)
			return nil
		},
	}
}
