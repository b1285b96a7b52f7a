package cmd

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/jsphweid/mid2text/util"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	watchInstruments instrumentFlags
	watchRelative    bool
	watchCopy        bool
	watchDelay       time.Duration
)

func init() {
	watchCmd.Flags().Bool("help", false, "help for watch")
	watchInstruments = newInstrumentFlags(watchCmd.Flags())
	watchCmd.Flags().BoolVarP(&watchRelative, "relative", "r", false, "move out of range notes into range by octaves")
	watchCmd.Flags().BoolVarP(&watchCopy, "copy", "c", false, "copy every new song to the clipboard")
	watchCmd.Flags().DurationVar(&watchDelay, "delay", 300*time.Millisecond, "quiet time before a change is rendered")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Recreates a song whenever its midi files change",
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := watchInstruments.paths()
		if len(paths) == 0 {
			return cmd.Help()
		}
		fold := boolFlag(cmd, "relative", watchRelative, cfg.Relative)
		toClipboard := boolFlag(cmd, "copy", watchCopy, cfg.Copy)
		out := cmd.OutOrStdout()

		render := func() {
			if err := watchRender(out, fold, toClipboard); err != nil {
				logrus.Errorf("%v", err)
			}
		}
		render()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return watchFiles(ctx, paths, watchDelay, render)
	},
}

func watchRender(out io.Writer, fold, toClipboard bool) error {
	s, sources, err := buildSong(watchInstruments)
	if err != nil {
		return err
	}
	res, err := renderSong(s, sources, fold)
	if err != nil {
		return err
	}
	if res.Macro == "" {
		fmt.Fprintln(out, "Midi file is empty")
		return nil
	}
	fmt.Fprintln(out, res.Macro)
	return maybeCopy(toClipboard, res.Macro)
}

// watchDirs returns the sorted parent directories of paths. Directories are
// watched instead of the files so editors that replace a file on save are
// still seen.
func watchDirs(paths []string) []string {
	dirs := make(map[string]bool)
	for _, p := range paths {
		dirs[filepath.Dir(p)] = true
	}
	return util.GetSortedKeys(dirs)
}

// watchFiles calls render, at most once per delay, after any of paths is
// written, created, renamed or removed. It returns when ctx is done; a
// render still pending then is dropped.
func watchFiles(ctx context.Context, paths []string, delay time.Duration, render func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "could not start file watcher")
	}
	defer watcher.Close()

	watched := make(map[string]bool, len(paths))
	for _, p := range paths {
		watched[filepath.Clean(p)] = true
	}
	for _, dir := range watchDirs(paths) {
		if err := watcher.Add(dir); err != nil {
			return errors.Wrapf(err, "could not watch %s", dir)
		}
	}

	debounced := debounce.New(delay)
	defer debounced(func() {})

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(event.Name)] || (event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write)) {
				continue
			}
			logrus.Debugf("changed: %s", event)
			debounced(render)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logrus.Warnf("file watcher: %v", err)
		}
	}
}
