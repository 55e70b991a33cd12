package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/timoconnellaus/eb/dsl"
	gen "github.com/timoconnellaus/eb/internal/gen"
	"github.com/timoconnellaus/eb/manifest"
)

func flattenedFor(path, id string) (dsl.Flattened, error) {
	res, err := manifest.LoadAndBuild(path)
	if err != nil {
		return dsl.Flattened{}, fmt.Errorf("loading %s: %w", path, err)
	}
	d, ok := res.Definition(id)
	if !ok {
		return dsl.Flattened{}, fmt.Errorf("no definition %q in %s", id, path)
	}
	m, err := d.Materialize()
	if err != nil {
		return dsl.Flattened{}, fmt.Errorf("materializing %s: %w", id, err)
	}
	return dsl.Flattened{Descriptors: m.Schema, Values: m.Values}, nil
}

func valuesSchemaCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "values-schema <manifest> <id>",
		Short: "Print the JSON Schema of a definition's values",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fl, err := flattenedFor(args[0], args[1])
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(dsl.ValuesSchema(fl), "", "  ")
			if err != nil {
				return fmt.Errorf("encoding schema: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		},
	}
}

func genCmd(o *options) *cobra.Command {
	var pkg, typeName, out string
	cmd := &cobra.Command{
		Use:   "gen <manifest> <id>",
		Short: "Generate a Go values struct for a definition",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fl, err := flattenedFor(args[0], args[1])
			if err != nil {
				return err
			}
			if typeName == "" {
				typeName = gen.TypeName(args[1])
			}
			code, err := gen.RenderValues(pkg, typeName, args[0], fl)
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(code)
				return err
			}
			if err := os.WriteFile(out, code, 0o644); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			o.log.Info("values struct written", "path", out, "type", typeName)
			return nil
		},
	}
	cmd.Flags().StringVar(&pkg, "package", "main", "package name of the generated file")
	cmd.Flags().StringVar(&typeName, "type", "", "type name (default derived from the id)")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	return cmd
}
