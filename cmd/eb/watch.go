package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

const debounce = 200 * time.Millisecond

func watchCmd(o *options) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "watch <manifest>",
		Short: "Recompile a manifest whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return fmt.Errorf("watch requires --output")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watch(ctx, o, args[0], out)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file")
	return cmd
}

func watch(ctx context.Context, o *options, path, out string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer w.Close()

	// Editors replace files on save; watching the directory survives renames.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	rebuild := func() {
		if err := compile(o, path, out, os.Stdout); err != nil {
			o.log.Error("compile failed", "manifest", path, "err", err)
		}
	}
	rebuild()

	target := filepath.Clean(path)
	var timer <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			o.log.Debug("manifest changed", "op", ev.Op.String())
			timer = time.After(debounce)
		case <-timer:
			timer = nil
			rebuild()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			o.log.Warn("watcher error", "err", err)
		}
	}
}
