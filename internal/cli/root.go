// Package cli wires the issame command line.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
}

// Logger builds the CLI logger. The library itself is silent by contract;
// only the command line reports progress.
func (o *RootOptions) Logger() zerolog.Logger {
	level := zerolog.InfoLevel
	if o.Verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// NewRootCommand creates the root command for the issame CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:          "issame",
		Short:        "issame derives change-detection comparisons for struct types",
		Long:         "issame emits IsSame methods that compare struct fields with the github.com/go-leo/issame protocol.",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewGenCommand(opts))

	return cmd
}
