package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/odvcencio/grit/pkg/object"
	"github.com/odvcencio/grit/pkg/repo"
	"github.com/spf13/cobra"
)

func newHashObjectCmd(opts *globalOptions) *cobra.Command {
	var (
		write   bool
		objType string
	)
	cmd := &cobra.Command{
		Use:   "hash-object [-w] [-t type] <file>",
		Short: "Compute an object id and optionally store the object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ := object.ObjectType(objType)
			if typ != object.TypeBlob {
				return fmt.Errorf("hash-object: %w %q", object.ErrUnsupported, objType)
			}

			path := args[0]
			if !filepath.IsAbs(path) {
				path = filepath.Join(opts.dir, path)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("hash-object: %w", err)
			}

			h := object.HashObject(typ, data)
			if write {
				r, err := repo.Discover(opts.dir)
				if err != nil {
					return err
				}
				if h, err = r.Store.Write(typ, data); err != nil {
					return err
				}
				slog.Debug("stored object", "hash", h, "type", typ, "size", len(data))
			}

			fmt.Fprintln(cmd.OutOrStdout(), h)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the object into the object store")
	cmd.Flags().StringVarP(&objType, "type", "t", string(object.TypeBlob), "object type")
	return cmd
}
