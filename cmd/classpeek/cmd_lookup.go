package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/classpeek/classpath"
	"github.com/dhamidi/classpeek/format"
)

func newLookupCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <binary-name>...",
		Short: "Resolve classes by dotted name on the classpath",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ix, err := classpath.Open(opts.cfg.Classpath)
			if err != nil {
				return err
			}
			defer ix.Close()

			enc, err := format.NewEncoder(opts.cfg.Format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			for _, name := range args {
				td, err := ix.Lookup(name)
				if err != nil {
					return fmt.Errorf("lookup %s: %w", name, err)
				}
				if err := enc.Encode(td); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every class name on the classpath",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ix, err := classpath.Open(opts.cfg.Classpath)
			if err != nil {
				return err
			}
			defer ix.Close()

			names, err := ix.Names()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
