package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"typemap-resolver/internal/check"
	"typemap-resolver/internal/diagnostic"
	"typemap-resolver/internal/mapping"
)

func registerCheckCmd(parent *cobra.Command, a *app) {
	var watch bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Lint the mapping file",
		Long: `Check validates the mapping file and asks every query for the global scope
and each endpoint. Ambiguous rules are reported as errors.`,
		Example: `  # Lint once
  typemap-resolver check -m api/typemap.yaml

  # Lint on every save
  typemap-resolver check -m api/typemap.yaml --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if watch {
				return a.watchCheck(cmd.Context(), cmd.OutOrStdout())
			}

			return a.runCheck(cmd.Context(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "check again whenever the mapping file changes")

	parent.AddCommand(cmd)
}

func (a *app) runCheck(ctx context.Context, out io.Writer) error {
	mf, err := mapping.LoadFile(a.cfg.MappingFile)
	if err != nil {
		return err
	}

	diags, err := check.Run(ctx, mf, check.Options{Logger: a.logger})
	if err != nil {
		return err
	}

	printDiagnostics(out, a.cfg.MappingFile, diags)

	if diags.HasErrors() {
		return fmt.Errorf("%s: %d error(s)", a.cfg.MappingFile, len(diags.Errors))
	}

	return nil
}

func printDiagnostics(out io.Writer, file string, diags *diagnostic.Diagnostics) {
	all := diags.All()
	if len(all) == 0 {
		_, _ = fmt.Fprintf(out, "%s: ok\n", file)
		return
	}

	for _, d := range all {
		_, _ = fmt.Fprintf(out, "%s: %s: %s\n", file, d.Severity, d)
	}
}

// watchCheck checks the mapping file now and after every change until ctx is
// done. Failed checks are logged, not returned.
func (a *app) watchCheck(ctx context.Context, out io.Writer) error {
	target, err := filepath.Abs(a.cfg.MappingFile)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	defer func() {
		_ = w.Close()
	}()

	// Editors replace the file on save, which drops a watch on the file
	// itself.
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	a.recheck(ctx, out)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			name, err := filepath.Abs(ev.Name)
			if err != nil || name != target {
				continue
			}

			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				a.logger.Debug("watch.changed", slog.String("file", ev.Name), slog.String("op", ev.Op.String()))
				a.recheck(ctx, out)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}

			a.logger.Warn("watch.error", slog.String("err", err.Error()))
		}
	}
}

func (a *app) recheck(ctx context.Context, out io.Writer) {
	if err := a.runCheck(ctx, out); err != nil {
		a.logger.Error("check.fail", slog.String("err", err.Error()))
	}
}
