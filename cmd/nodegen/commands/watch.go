package commands

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/teranos/nodegen/config"
	"github.com/teranos/nodegen/errors"
	"github.com/teranos/nodegen/logger"
)

// debouncePeriod coalesces the burst of fsnotify events editors produce for
// a single save.
const debouncePeriod = 500 * time.Millisecond

// WatchCmd regenerates the bindings whenever the schema document changes.
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate bindings when the node schema changes",
	Long: `Watch the node schema document and regenerate the bindings on change.

Write and create events are debounced so a single editor save triggers one
regeneration. Schema errors are logged and watching continues; fix the
schema and save again. Stop with Ctrl-C.

Examples:
  nodegen watch -o src/generated.rs`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig()
	if err != nil {
		return err
	}
	if cfg.Output == "" {
		return errors.New("watch requires an output file (use --output or set output in nodegen.toml)")
	}

	// Generate once up front so the output exists before the first change.
	if err := regenerate(cfg); err != nil {
		logger.Errorw("Initial generation failed", "error", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create fsnotify watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(cfg.Schema); err != nil {
		return errors.Wrapf(err, "failed to watch schema file %s", cfg.Schema)
	}

	logger.Infow("Watching schema", "schema", cfg.Schema, "output", cfg.Output)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var debounce *time.Timer
	regen := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				logger.Debugw("Schema change detected", "file", event.Name, "op", event.Op.String())
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(debouncePeriod, func() {
					select {
					case regen <- struct{}{}:
					default:
					}
				})
			}

		case <-regen:
			if err := regenerate(cfg); err != nil {
				logger.Errorw("Regeneration failed", "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Errorw("Watcher error", "error", err)

		case <-stop:
			logger.Infow("Stopping watch")
			return nil
		}
	}
}

// regenerate runs one load-validate-emit-write cycle.
func regenerate(cfg *config.Config) error {
	output, s, err := generateOnce(cfg)
	if err != nil {
		return err
	}
	if err := writeOutput(cfg.Output, output); err != nil {
		return err
	}
	logger.Infow("Regenerated bindings", "output", cfg.Output, "nodes", len(s.Nodes))
	return nil
}
