package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mapping-generator/internal/config"
	"mapping-generator/internal/logger"
)

// env is what every command works with once flags are parsed.
type env struct {
	cfg *config.Config
	log *zap.SugaredLogger
	out io.Writer
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mapping-generator",
		Short: "Generate mapping code for a type graph",
		Long: `mapping-generator walks the types reachable from a set of root types,
writes one mapping per type to an editable mapping file and renders C#,
TypeScript and Go sources (plus optional templates) from it.

Without a subcommand it generates from the mapping file, running discovery
first when --generate-mapping is set.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}

			if e.cfg.GenerateMapping {
				if err := e.cfg.ValidateDiscover(); err != nil {
					return err
				}
			}

			if err := e.cfg.ValidateGenerate(); err != nil {
				return err
			}

			if e.cfg.GenerateMapping {
				if _, err := runDiscover(cmd.Context(), e, nil); err != nil {
					return err
				}
			}

			_, err = runGenerate(cmd.Context(), e, nil)

			return err
		},
	}

	config.RegisterGlobalFlags(root.PersistentFlags())
	config.RegisterDiscoverFlags(root.Flags())
	config.RegisterGenerateFlags(root.Flags())
	root.Flags().Bool(config.KeyGenerateMapping, false, "run discovery and rewrite the mapping file first")

	root.AddCommand(
		newDiscoverCmd(),
		newGenerateCmd(),
		newGeneratorsCmd(),
		newInspectCmd(),
	)

	return root
}

// setup loads the configuration of cmd and builds its logger.
func setup(cmd *cobra.Command) (*env, error) {
	v, err := config.NewViper(cmd.Flags())
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		return nil, err
	}

	log.Debugw("configuration loaded", "config_file", cfg.ConfigFile, "mapping_file", cfg.MappingFile)

	return &env{cfg: cfg, log: log, out: cmd.OutOrStdout()}, nil
}
