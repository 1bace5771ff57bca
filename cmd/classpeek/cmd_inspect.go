package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dhamidi/classpeek/classfile"
	"github.com/dhamidi/classpeek/classpath"
	"github.com/dhamidi/classpeek/format"
)

func newInspectCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <path>...",
		Short: "Print the header of .class files, directories, jars or zips",
		Long: `Print the declaration header of every class file found at the given paths.

A .class file is parsed directly. Directories, .jar and .zip files are
searched for .class entries.

Examples:
  classpeek inspect out/com/example/Main.class
  classpeek inspect -f json lib/guava.jar`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.OutOrStdout(), opts.cfg.Format, args)
		},
	}
}

func runInspect(w io.Writer, formatName string, paths []string) error {
	enc, err := format.NewEncoder(formatName, w)
	if err != nil {
		return err
	}

	var errs []error
	for _, p := range paths {
		if err := inspectPath(enc, p); err != nil {
			fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d paths had errors", len(errs), len(paths))
	}
	return nil
}

func inspectPath(enc format.Encoder, p string) error {
	if filepath.Ext(p) == ".class" {
		td, err := classfile.ParseHeaderFile(p)
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		return enc.Encode(td)
	}

	src, err := classpath.OpenSource(p)
	if err != nil {
		return err
	}
	ix := classpath.NewIndex(src)
	defer ix.Close()

	all, parseErr := ix.All()
	for _, td := range all {
		if err := enc.Encode(td); err != nil {
			return err
		}
	}
	return parseErr
}
