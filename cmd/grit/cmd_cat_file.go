package main

import (
	"fmt"
	"log/slog"

	"github.com/odvcencio/grit/pkg/object"
	"github.com/odvcencio/grit/pkg/repo"
	"github.com/spf13/cobra"
)

func newCatFileCmd(opts *globalOptions) *cobra.Command {
	var showType, showSize, pretty bool
	cmd := &cobra.Command{
		Use:   "cat-file (-t | -s | -p) <object>",
		Short: "Print the type, size or content of an object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := object.ParseHash(args[0])
			if err != nil {
				return err
			}
			r, err := repo.Discover(opts.dir)
			if err != nil {
				return err
			}
			obj, err := r.Store.Read(h)
			if err != nil {
				return err
			}
			slog.Debug("read object", "hash", h, "type", obj.Type(), "size", len(obj.Payload()))

			out := cmd.OutOrStdout()
			switch {
			case showType:
				fmt.Fprintln(out, obj.Type())
			case showSize:
				fmt.Fprintln(out, len(obj.Payload()))
			case pretty:
				_, err = out.Write(obj.Payload())
			}
			return err
		},
	}
	cmd.Flags().BoolVarP(&showType, "type", "t", false, "print the object type")
	cmd.Flags().BoolVarP(&showSize, "size", "s", false, "print the payload size")
	cmd.Flags().BoolVarP(&pretty, "print", "p", false, "print the payload")
	cmd.MarkFlagsMutuallyExclusive("type", "size", "print")
	cmd.MarkFlagsOneRequired("type", "size", "print")
	return cmd
}
