package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/ecruz165/fsattr/pkg/fsattr"
	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var watchCount int

func init() {
	watchCmd.Flags().IntVar(&watchCount, "count", 0, "Stop after this many status changes (0 means run until interrupted)")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <path>",
	Short: "Print the status of a path every time it changes",
	Long: `Print the status of a path, then print it again after every filesystem
event that touches it. The path does not need to exist yet; its parent
directory is watched so creation and removal are seen too.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := filepath.Clean(args[0])

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("creating file watcher: %w", err)
		}
		defer func() { _ = watcher.Close() }()

		if err := watcher.Add(filepath.Dir(target)); err != nil {
			return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (Ctrl+C to stop)...\n", target)
		return followStatus(ctx, watcher.Events, watcher.Errors, target, watchCount, statusPrinter(cmd.OutOrStdout(), target))
	},
}

// statusPrinter re-queries target and prints its status when it differs
// from the last one printed. It reports whether a line was written.
func statusPrinter(w io.Writer, target string) func() (bool, error) {
	last, printed := uint64(0), false
	return func() (bool, error) {
		status, err := fsattr.GetStat([]byte(target))
		if err != nil {
			return false, fmt.Errorf("querying %s: %w", target, err)
		}
		if printed && status == last {
			return false, nil
		}
		last, printed = status, true
		if _, err := fmt.Fprintf(w, "%s\t%s\n", formatStatus(status), fsattr.Describe(status)); err != nil {
			return false, err
		}
		return true, nil
	}
}

// followStatus emits the current status once, then again for every event
// naming target, until ctx is done, the event stream closes, or limit status
// changes have been emitted after the initial one.
func followStatus(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, target string, limit int, emit func() (bool, error)) error {
	if _, err := emit(); err != nil {
		return err
	}

	changes := 0
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			log.WithFields(log.Fields{"path": target, "op": event.Op.String()}).Debug("Filesystem event")

			changed, err := emit()
			if err != nil {
				return err
			}
			if !changed {
				continue
			}
			changes++
			if limit > 0 && changes >= limit {
				return nil
			}

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}
