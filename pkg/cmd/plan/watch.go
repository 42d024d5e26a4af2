package plan

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	otlpruntime "go.opentelemetry.io/contrib/instrumentation/runtime"

	"github.com/mpapenbr/diveplanner-go/log"
	"github.com/mpapenbr/diveplanner-go/pkg/config"
	"github.com/mpapenbr/diveplanner-go/pkg/planner"
)

func NewWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch file",
		Short: "recalculates the dive whenever the file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.EnableTelemetry {
				err := otlpruntime.Start(otlpruntime.WithMinimumReadMemStatsInterval(time.Second))
				if err != nil {
					log.Warn("Could not start runtime metrics", log.ErrorField(err))
				}
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return newPlanWatcher(ctx, args[0], cmd.OutOrStdout()).run(ctx)
		},
	}
}

type planWatcher struct {
	file    string
	out     io.Writer
	planner *planner.Planner
	log     *log.Logger
}

func newPlanWatcher(ctx context.Context, file string, out io.Writer) *planWatcher {
	return &planWatcher{
		file:    filepath.Clean(file),
		out:     out,
		planner: newPlanner(),
		log:     log.GetFromContext(ctx).Named("plan.watch"),
	}
}

// run blocks until ctx is done. Invalid files are reported and skipped.
//
//nolint:gocognit // by design
func (w *planWatcher) run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	// editors often replace the file, so the directory is watched
	if err := watcher.Add(filepath.Dir(w.file)); err != nil {
		return err
	}
	w.calculate(ctx)
	for {
		select {
		case <-ctx.Done():
			w.log.Info("context done, stopping watch")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				w.log.Info("watcher events channel closed, stopping watch")
				return nil
			}
			if filepath.Clean(event.Name) != w.file {
				continue
			}
			w.log.Debug("change detected",
				log.String("file", event.Name), log.Any("event", event))
			if event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Create == fsnotify.Create {

				w.calculate(ctx)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				w.log.Info("watcher errors channel closed, stopping watch")
				return nil
			}
			w.log.Error("watcher error", log.ErrorField(err))
		}
	}
}

func (w *planWatcher) calculate(ctx context.Context) {
	task, err := loadTask(w.file)
	if err != nil {
		w.log.Error("could not load plan", log.String("file", w.file), log.ErrorField(err))
		return
	}
	result, err := w.planner.Plan(ctx, task)
	if err != nil {
		w.log.Error("could not calculate plan", log.ErrorField(err))
		return
	}
	renderResult(w.out, result)
}
