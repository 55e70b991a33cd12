package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	eb "github.com/timoconnellaus/eb"
	"github.com/timoconnellaus/eb/codec"
	"github.com/timoconnellaus/eb/manifest"
)

func compileCmd(o *options) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "compile <manifest>",
		Short: "Compile a manifest into a bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return compile(o, args[0], out, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	return cmd
}

func compile(o *options, path, out string, stdout io.Writer) error {
	o.log.Debug("compiling", "manifest", path, "format", o.format)
	b, err := loadBundle(path)
	if err != nil {
		return err
	}
	data, err := codec.EncodeBundle(b, o.outFormat())
	if err != nil {
		return fmt.Errorf("encoding bundle: %w", err)
	}
	if out == "" {
		_, err = io.Copy(stdout, bytes.NewReader(data))
		return err
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	o.log.Info("bundle written", "path", out, "components", len(b.Components))
	return nil
}

func loadBundle(path string) (eb.Bundle, error) {
	res, err := manifest.LoadAndBuild(path)
	if err != nil {
		return eb.Bundle{}, fmt.Errorf("loading %s: %w", path, err)
	}
	b, err := res.Bundle()
	if err != nil {
		return eb.Bundle{}, fmt.Errorf("building bundle: %w", err)
	}
	return b, nil
}

func validateCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <manifest>",
		Short: "Report every configuration issue in a manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := loadBundle(args[0])
			if err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
				return nil
			}
			iss, ok := eb.AsIssues(err)
			if !ok {
				return err
			}
			w := cmd.OutOrStdout()
			for _, it := range iss {
				fmt.Fprintf(w, "%s\t%s\t%s\n", it.Location(), it.Code, it.Message)
			}
			return fmt.Errorf("%d issue(s) in %s", len(iss), args[0])
		},
	}
}

func devicesCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "devices <manifest>",
		Short: "Print the resolved device ranges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := manifest.LoadAndBuild(args[0])
			if err != nil {
				return fmt.Errorf("loading %s: %w", args[0], err)
			}
			return codec.Encode(cmd.OutOrStdout(), res.Config.Devices(), o.outFormat())
		},
	}
}

func tokensCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <manifest> [set]",
		Short: "Print token sets, or one set",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := manifest.LoadAndBuild(args[0])
			if err != nil {
				return fmt.Errorf("loading %s: %w", args[0], err)
			}
			if len(args) == 2 {
				return codec.Encode(cmd.OutOrStdout(), res.Config.Tokens(args[1]), o.outFormat())
			}
			all := map[string][]eb.ConfigToken{}
			for _, s := range res.Config.TokenSets() {
				all[s] = res.Config.Tokens(s)
			}
			return codec.Encode(cmd.OutOrStdout(), all, o.outFormat())
		},
	}
}
