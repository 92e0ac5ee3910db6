package main

import (
	"fmt"
	"path/filepath"

	"github.com/odvcencio/grit/pkg/repo"
	"github.com/spf13/cobra"
)

func newVerifyCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [path]",
		Short: "Check repository layout and core config",
		Long: "Check that path (or the repository enclosing the current directory) has the\n" +
			"expected .git layout and core config values. Stops at the first problem.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				r   *repo.Repo
				err error
			)
			if len(args) == 1 {
				path := args[0]
				if !filepath.IsAbs(path) {
					path = filepath.Join(opts.dir, path)
				}
				r, err = repo.Open(path)
			} else {
				r, err = repo.Discover(opts.dir)
			}
			if err != nil {
				return err
			}

			head, err := r.Head()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok %s (HEAD -> %s)\n", r.WorktreeDir, head)
			return nil
		},
	}
}
