package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mapping-generator/internal/config"
	"mapping-generator/internal/gen/builtin"
	"mapping-generator/internal/gen/tmpl"
)

func newGeneratorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generators",
		Short: "List the available generators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := cmd.Flags().GetString(config.KeyTemplateDir)
			if err != nil {
				return err
			}

			var templates []*tmpl.Template
			if dir != "" {
				if templates, err = tmpl.Load(dir); err != nil {
					return err
				}
			}

			for _, name := range builtin.Registry(tmpl.Generators(templates)...).Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}

	cmd.Flags().String(config.KeyTemplateDir, "", "also list the templates of this directory")

	return cmd
}
