// Command eb compiles component manifests into bundles for the page builder.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/timoconnellaus/eb/codec"
	"github.com/timoconnellaus/eb/i18n"
)

var version = "0.1.0"

type options struct {
	verbose bool
	format  string
	log     *slog.Logger
}

func main() {
	// A missing .env is fine; flags and the environment still apply.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "eb",
		Short:         "Build and check no-code component definitions",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if o.verbose {
				level = slog.LevelDebug
			}
			o.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			if lang := os.Getenv("EB_LANG"); lang != "" {
				i18n.SetLanguage(lang)
			}
			if _, err := codec.ParseFormat(o.format); err != nil {
				return err
			}
			return nil
		},
	}
	defFormat := os.Getenv("EB_FORMAT")
	if defFormat == "" {
		defFormat = string(codec.JSON)
	}
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&o.format, "format", "f", defFormat, "output format: json, yaml or msgpack")

	root.AddCommand(
		compileCmd(o),
		validateCmd(o),
		devicesCmd(o),
		tokensCmd(o),
		valuesSchemaCmd(o),
		genCmd(o),
		watchCmd(o),
	)
	return root
}

func (o *options) outFormat() codec.Format {
	f, _ := codec.ParseFormat(o.format)
	return f
}
