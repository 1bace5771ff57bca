package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/classpeek/config"
)

type options struct {
	format    string
	classpath []string
	verbose   int

	cfg *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "classpeek",
		Short:         "Read class names, supertypes and kinds from JVM class files",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "", "output format (line, json)")
	rootCmd.PersistentFlags().StringArrayVarP(&opts.classpath, "classpath", "c", nil, "classpath entry (directory, .jar or .zip); repeatable")
	rootCmd.PersistentFlags().CountVarP(&opts.verbose, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newInspectCmd(opts))
	rootCmd.AddCommand(newLookupCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))

	return rootCmd
}

// load reads classpeek.toml and applies flag overrides on top of it.
func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.FindAndLoad(".")
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = o.format
	}
	if len(o.classpath) > 0 {
		cfg.Classpath = o.classpath
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Log.Verbosity = o.verbose
	}
	commonlog.Configure(cfg.Log.Verbosity, nil)
	o.cfg = cfg
	return nil
}
