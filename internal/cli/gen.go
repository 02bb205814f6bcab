package cli

import (
	"errors"
	"strings"

	"github.com/go-leo/gox/slicex"
	"github.com/spf13/cobra"

	"github.com/go-leo/issame/internal/gen"
)

// NewGenCommand creates the gen subcommand.
func NewGenCommand(root *RootOptions) *cobra.Command {
	var (
		typeList string
		suffix   string
	)

	cmd := &cobra.Command{
		Use:   "gen --type T1,T2 [dir]",
		Short: "generate IsSame methods for the named types",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := root.Logger()

			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			trimmed := slicex.Map[[]string, []string](
				strings.Split(typeList, ","),
				func(i int, s string) string { return strings.TrimSpace(s) },
			)
			typeNames := make([]string, 0, len(trimmed))
			for _, name := range trimmed {
				if name != "" {
					typeNames = append(typeNames, name)
				}
			}
			if slicex.IsEmpty(typeNames) {
				return errors.New("gen: --type names no types")
			}

			cfg, err := gen.LoadConfig(dir)
			if err != nil {
				logger.Error().Err(err).Msg("config")
				return err
			}
			if suffix != "" {
				cfg.Suffix = suffix
			}

			pkg, err := gen.LoadPackage(dir)
			if err != nil {
				logger.Error().Err(err).Msg("load")
				return err
			}
			logger.Debug().Str("package", pkg.PkgPath).Strs("types", typeNames).Msg("loaded")

			files, err := gen.New(pkg, cfg, logger).Generate(typeNames)
			if err != nil {
				logger.Error().Err(err).Msg("derivation failed")
				return err
			}
			for _, file := range files {
				if err := file.Gen(); err != nil {
					logger.Error().Err(err).Str("file", file.AbsFilename).Msg("write")
					return err
				}
				logger.Info().Str("file", file.AbsFilename).Msg("wrote")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&typeList, "type", "", "comma-separated list of type names (required)")
	cmd.Flags().StringVar(&suffix, "suffix", "", "generated file name suffix (default _issame.go, or from issame.toml)")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
