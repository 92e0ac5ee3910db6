package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0-dev"

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	dir        string
	verbose    bool
	configPath string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "grit:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "grit",
		Short:         "Git-compatible loose object store and repository plumbing",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd.ErrOrStderr(), opts)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVarP(&opts.dir, "directory", "C", ".", "run as if started in `dir`")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&opts.configPath, "config", "", "settings `file` (default $XDG_CONFIG_HOME/grit/config.toml)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(opts))
	root.AddCommand(newLocateCmd(opts))
	root.AddCommand(newVerifyCmd(opts))
	root.AddCommand(newHashObjectCmd(opts))
	root.AddCommand(newCatFileCmd(opts))
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "grit %s\n", version)
		},
	}
}
