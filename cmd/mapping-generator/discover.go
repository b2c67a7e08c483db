package main

import (
	"context"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"mapping-generator/internal/config"
	"mapping-generator/internal/discover"
	"mapping-generator/internal/mapping"
)

func newDiscoverCmd() *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Build the mapping file from the root types",
		Long: `Load the type sources, walk every complex type reachable from the root
types and write the resulting mappings to the mapping file.

Examples:
  mapping-generator discover -s shop.yaml -t Order -m out/mapping.yaml
  mapping-generator discover -s ./store -t Order,Shipment --references Customer -m out/mapping.json
  mapping-generator discover -s shop.yaml -t Order -m out/mapping.yaml --dump`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}

			if err := e.cfg.ValidateDiscover(); err != nil {
				return err
			}

			var w io.Writer
			if dump {
				w = e.out
			}

			res, err := runDiscover(cmd.Context(), e, w)
			if err != nil {
				return err
			}

			pterm.Success.Printf("%d mappings written to %s\n", res.Mappings.Len(), e.cfg.MappingFile)

			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "print the closure before writing the mapping file")
	config.RegisterDiscoverFlags(cmd.Flags())

	return cmd
}

// runDiscover loads the sources, builds the mappings and writes the mapping
// file. The closure is dumped to dump when it is not nil.
func runDiscover(ctx context.Context, e *env, dump io.Writer) (*discover.Result, error) {
	set, err := discover.LoadSources(ctx, e.cfg.Sources, e.log)
	if err != nil {
		return nil, err
	}

	res, err := discover.NewBuilder(set, e.cfg.DiscoverOptions(), e.log).Build()
	if err != nil {
		return nil, err
	}

	if dump != nil {
		discover.DumpClosure(dump, res.Closure)
	}

	if err := mapping.WriteFile(res.Mappings, e.cfg.MappingFile); err != nil {
		return nil, err
	}

	e.log.Infow("mapping file written", "path", e.cfg.MappingFile, "mappings", res.Mappings.Len())

	if !e.cfg.NoReplay {
		if err := writeReplay(e.cfg.MappingFile, os.Args); err != nil {
			e.log.Warnw("replay script not written", "error", err)
		}
	}

	return res, nil
}
