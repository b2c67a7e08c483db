package main

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"mapping-generator/internal/config"
	"mapping-generator/internal/errors"
	"mapping-generator/internal/gen"
	"mapping-generator/internal/gen/builtin"
	"mapping-generator/internal/gen/tmpl"
	"mapping-generator/internal/mapping"
)

func newGenerateCmd() *cobra.Command {
	var watch, dryRun bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate sources from the mapping file",
		Long: `Run the selected generators and templates over every mapping of the
mapping file. Artifacts land in <output dir>/<type>/<generator><ext>.

Examples:
  mapping-generator generate -m out/mapping.yaml
  mapping-generator generate -m out/mapping.yaml -g 'typescript.*' --prefix Api
  mapping-generator generate -m out/mapping.yaml --template-dir templates --watch
  mapping-generator generate -m out/mapping.yaml --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}

			if err := e.cfg.ValidateGenerate(); err != nil {
				return err
			}

			var sink gen.Sink
			if dryRun {
				sink = gen.NewMemorySink()
			}

			_, err = runGenerate(cmd.Context(), e, sink)
			if !watch {
				return err
			}

			if err != nil {
				pterm.Error.Printf("%v\n", err)
			}

			paths := []string{e.cfg.MappingFile}
			if e.cfg.TemplateDir != "" {
				paths = append(paths, e.cfg.TemplateDir)
			}

			pterm.Info.Printf("Watching %v, press Ctrl+C to stop\n", paths)

			return gen.Watch(cmd.Context(), paths, e.cfg.Debounce, e.log, func(ctx context.Context) error {
				_, err := runGenerate(ctx, e, sink)
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "regenerate when the mapping file or templates change")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "render everything but write nothing")
	config.RegisterGenerateFlags(cmd.Flags())

	return cmd
}

// loadGenerators returns the selected built-in generators followed by every
// template of the template directory.
func loadGenerators(cfg *config.Config) ([]gen.Generator, error) {
	selected, err := builtin.Registry().Select(cfg.Generators)
	if err != nil {
		return nil, err
	}

	if cfg.TemplateDir == "" {
		return selected, nil
	}

	templates, err := tmpl.Load(cfg.TemplateDir)
	if err != nil {
		return nil, err
	}

	return append(selected, tmpl.Generators(templates)...), nil
}

// runGenerate loads and validates the mapping file and runs the generators.
// A nil sink writes to disk.
func runGenerate(ctx context.Context, e *env, sink gen.Sink) (*gen.Report, error) {
	set, err := mapping.LoadFile(e.cfg.MappingFile)
	if err != nil {
		return nil, err
	}

	diags := mapping.Validate(set)
	diags.Log(e.log)

	if err := diags.Err(errors.ErrMappingFile); err != nil {
		return nil, errors.Wrapf(err, "mapping file %s", e.cfg.MappingFile)
	}

	generators, err := loadGenerators(e.cfg)
	if err != nil {
		return nil, err
	}

	report, err := gen.NewRunner(e.cfg.RunnerConfig(), generators, sink, e.log).
		Run(ctx, gen.NewContext(e.cfg.Naming, set))
	if err != nil {
		return report, err
	}

	printSummary(report, sink)

	return report, report.Err()
}

func printSummary(report *gen.Report, sink gen.Sink) {
	if _, dry := sink.(*gen.MemorySink); dry {
		pterm.Warning.Println("DRY RUN: nothing was written")

		for _, a := range report.Artifacts {
			fmt.Printf("  %s (%d bytes)\n", a.Path, len(a.Content))
		}
	}

	written := len(report.Artifacts) - len(report.WriteErrors)
	pterm.Success.Printf("%d artifacts generated, %d not applicable\n", written, report.Skipped)

	for _, f := range report.Faults {
		pterm.Warning.Printf("%s\n", f)
	}

	for _, we := range report.WriteErrors {
		pterm.Error.Printf("%v\n", we)
	}
}
