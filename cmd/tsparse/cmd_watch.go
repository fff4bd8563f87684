package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tdewolff/tsparse/cache"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file|dir>...",
		Short: "Check files and check them again whenever they change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return a.watch(ctx, cmd, args)
		},
	}
}

func (a *app) watch(ctx context.Context, cmd *cobra.Command, args []string) error {
	c, err := cache.New(cache.DefaultSize)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "could not create watcher")
	}
	defer watcher.Close()

	filenames, dirs, err := a.walkSources(args)
	if err != nil {
		return err
	}
	for _, filename := range filenames {
		if _, err := a.check(cmd, c, filename); err != nil {
			return err
		}
	}

	// fsnotify does not recurse, every directory is watched on its own
	targets := dirs
	for _, arg := range args {
		if info, err := a.fs.Stat(arg); err == nil && !info.IsDir() {
			targets = append(targets, arg)
		}
	}
	for _, target := range targets {
		if err := watcher.Add(target); err != nil {
			return errors.Wrapf(err, "could not watch %s", target)
		}
	}
	log.Infof("watching %d files in %d directories", len(filenames), len(dirs))

	return a.watchLoop(ctx, cmd, c, watcher.Add, watcher.Events, watcher.Errors)
}

// watchLoop checks every written or created source file until ctx is done or the watcher closes. A created directory
// is passed to add together with its subdirectories, and the sources inside it are checked.
func (a *app) watchLoop(ctx context.Context, cmd *cobra.Command, c *cache.Cache, add func(string) error, events <-chan fsnotify.Event, errs <-chan error) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := a.fs.Stat(event.Name); err == nil && info.IsDir() {
					if !skipDir(info.Name()) {
						a.watchDir(cmd, c, add, event.Name)
					}
					continue
				}
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 || !isSource(event.Name) {
				continue
			}
			log.Debugf("%s: %s", event.Op, event.Name)
			if n, err := a.check(cmd, c, event.Name); err != nil {
				log.Errorf("%s", err)
			} else if n == 0 {
				log.Infof("%s: ok", event.Name)
			}
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			log.Errorf("watch: %s", err)
		}
	}
}

func (a *app) watchDir(cmd *cobra.Command, c *cache.Cache, add func(string) error, dir string) {
	filenames, dirs, err := a.walkSources([]string{dir})
	if err != nil {
		log.Errorf("%s", err)
		return
	}
	for _, sub := range dirs {
		if err := add(sub); err != nil {
			log.Errorf("could not watch %s: %s", sub, err)
		}
	}
	for _, filename := range filenames {
		if _, err := a.check(cmd, c, filename); err != nil {
			log.Errorf("%s", err)
		}
	}
}
