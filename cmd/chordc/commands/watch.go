package commands

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/pipit-keyboard/chordc/am"
	"github.com/pipit-keyboard/chordc/errors"
	"github.com/pipit-keyboard/chordc/logger"
)

// WatchCmd represents the watch command
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Recompile whenever the settings or a kmap file changes",
	Long: `Compile once, then watch the settings file, every kmap file it references
and chordc.toml, recompiling after each change. Errors are reported and
watching continues. Stop with Ctrl+C.

Examples:
  chordc watch
  chordc watch -s keyboard/settings.toml`,
	RunE: runWatch,
}

func init() {
	addBuildFlags(WatchCmd)
}

// watchSession rebuilds on change. It serializes rebuilds and adds new
// kmap files to the watcher as the settings start referencing them.
type watchSession struct {
	cmd     *cobra.Command
	watcher *am.Watcher
	mu      sync.Mutex
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
	paths := []string{cfg.SettingsPath()}
	if cfg.ConfigFile != "" {
		paths = append(paths, cfg.ConfigFile)
	}
	w, err := am.NewWatcher(paths, debounce)
	if err != nil {
		return err
	}

	s := &watchSession{cmd: cmd, watcher: w}
	s.rebuild("")

	w.OnChange(func(path string) error {
		s.rebuild(path)
		return nil
	})
	w.Start()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pterm.Fprintln(cmd.OutOrStdout(), pterm.Gray("Watching for changes. Press Ctrl+C to stop."))
	<-ctx.Done()

	if err := w.Stop(); err != nil {
		return errors.Wrap(err, "failed to stop watcher")
	}
	if errors.Is(ctx.Err(), context.Canceled) {
		return nil
	}
	return ctx.Err()
}

// rebuild compiles and writes. changed is the file that triggered it, empty
// for the first build.
func (s *watchSession) rebuild(changed string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.cmd.OutOrStdout()
	if changed != "" {
		pterm.Fprintln(out, pterm.Gray("Changed: "+filepath.Base(changed)))
		if filepath.Base(changed) == am.ConfigFileName {
			am.Reset()
		}
	}

	cfg, err := loadConfig(s.cmd)
	if err != nil {
		PrintError(s.cmd.ErrOrStderr(), err)
		return
	}
	b, err := runBuild(cfg, time.Now)
	if err != nil {
		PrintError(s.cmd.ErrOrStderr(), err)
		return
	}

	for _, p := range b.Inputs {
		if err := s.watcher.Add(p); err != nil {
			logger.Warnw("Cannot watch input", logger.FieldFile, p, logger.FieldError, err)
		}
	}

	b.Report.Print(s.cmd.ErrOrStderr())
	if _, err := b.write(); err != nil {
		PrintError(s.cmd.ErrOrStderr(), err)
		return
	}
	pterm.Fprintln(out, pterm.Green("✓")+" Compiled "+b.OutputDir+" at "+time.Now().Format(time.TimeOnly))
}
