package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"mapping-generator/internal/errors"
	"mapping-generator/internal/mapping"
	"mapping-generator/internal/match"
)

func newInspectCmd() *cobra.Command {
	var typeName string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the contents of a mapping file",
		Long: `Print the mappings of a mapping file as a table, or the properties of one
mapping with --type.

Examples:
  mapping-generator inspect -m out/mapping.yaml
  mapping-generator inspect -m out/mapping.yaml --type Order`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}

			if e.cfg.MappingFile == "" {
				return errors.WithHint(errors.Wrap(errors.ErrConfig, "no mapping file given"), "pass --mapping-file")
			}

			set, err := mapping.LoadFile(e.cfg.MappingFile)
			if err != nil {
				return err
			}

			data := mappingsTable(set)

			if typeName != "" {
				m, ok := set.ByName(typeName)
				if !ok {
					err := errors.Wrapf(errors.ErrConfig, "no mapping named %q", typeName)
					if s := match.Suggest(typeName, set.Names(), 3); len(s) > 0 {
						err = errors.WithHintf(err, "did you mean %s?", strings.Join(s, ", "))
					}

					return err
				}

				data = propertiesTable(m)
			}

			out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return err
			}

			fmt.Fprintln(e.out, out)

			return nil
		},
	}

	cmd.Flags().StringVar(&typeName, "type", "", "show the properties of this mapping")

	return cmd
}

func mappingsTable(set *mapping.Set) pterm.TableData {
	data := pterm.TableData{{"Name", "Kind", "Assembly", "Properties"}}

	for _, m := range set.All() {
		data = append(data, []string{m.Name, kind(m), m.Assembly, strconv.Itoa(len(m.Mappings))})
	}

	return data
}

func kind(m *mapping.Mapping) string {
	var parts []string

	switch {
	case m.IsEnum:
		parts = append(parts, "enum")
	case m.IsAReference:
		parts = append(parts, "reference")
	default:
		parts = append(parts, "class")
	}

	if m.IsMainType {
		parts = append(parts, "root")
	}

	return strings.Join(parts, ", ")
}

func propertiesTable(m *mapping.Mapping) pterm.TableData {
	data := pterm.TableData{{"Property", "Generated as", "Type", "Flags"}}

	if m.IsEnum {
		data = pterm.TableData{{"Member"}}
		for _, member := range m.EnumMembers {
			data = append(data, []string{member})
		}

		return data
	}

	for i := range m.Mappings {
		p := &m.Mappings[i]
		data = append(data, []string{p.Name, p.LocalName(), propertyType(p), flags(p)})
	}

	return data
}

func propertyType(p *mapping.PropertyMapping) string {
	switch {
	case p.IsDictionary:
		return "Dictionary<" + strings.Join(p.DictionaryTypes, ", ") + ">"
	case p.IsSquashedType:
		return p.SquashedType + "." + p.SquashedValue + " (" + p.Type + ")"
	default:
		return p.Type
	}
}

func flags(p *mapping.PropertyMapping) string {
	var out []string

	for _, f := range []struct {
		set  bool
		name string
	}{
		{p.IsGeneric, "generic"},
		{p.IsList, "list"},
		{p.IsDictionary, "dictionary"},
		{p.IsNullable, "nullable"},
		{p.IsEnum, "enum"},
		{p.IsSquashedType, "squashed"},
		{p.IsReadOnly, "read-only"},
	} {
		if f.set {
			out = append(out, f.name)
		}
	}

	return strings.Join(out, " ")
}
