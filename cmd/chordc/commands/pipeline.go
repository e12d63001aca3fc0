package commands

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pipit-keyboard/chordc/am"
	"github.com/pipit-keyboard/chordc/checker"
	"github.com/pipit-keyboard/chordc/errors"
	"github.com/pipit-keyboard/chordc/firmware"
	"github.com/pipit-keyboard/chordc/logger"
	"github.com/pipit-keyboard/chordc/registry"
	"github.com/pipit-keyboard/chordc/settings"
	"github.com/pipit-keyboard/chordc/tutor"
)

// build is one run of the compiler, held in memory until written.
type build struct {
	Settings *settings.Settings
	Data     *registry.AllData
	Files    []firmware.File
	Tutor    *tutor.Data // nil when the tutor export is off
	Report   *checker.Report

	OutputDir string
	TutorDir  string
	// Inputs are the settings file and every kmap file it references.
	Inputs []string
}

// runBuild loads the keyboard settings named by cfg and compiles them.
// Nothing is written to disk.
func runBuild(cfg *am.Config, now func() time.Time) (*build, error) {
	log := logger.ComponentLogger("compile")
	start := time.Now()

	settingsPath := cfg.SettingsPath()
	dir := filepath.Dir(settingsPath)
	fsys := os.DirFS(dir)

	s, err := settings.Load(fsys, filepath.Base(settingsPath))
	if err != nil {
		return nil, errors.WithHintf(err, "settings file: %s", settingsPath)
	}
	log.Debugw("Loaded settings",
		logger.FieldFile, settingsPath,
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	d, err := registry.Load(s, fsys)
	if err != nil {
		return nil, err
	}

	files, err := firmware.Compile(d, firmware.Options{
		WithBanner: cfg.Output.Banner,
		FileBase:   cfg.FileBase(),
		Now:        now,
	})
	if err != nil {
		return nil, err
	}

	b := &build{
		Settings:  s,
		Data:      d,
		Files:     files,
		Report:    checker.Check(d),
		OutputDir: cfg.OutputDirectory(s.Options.OutputDirectory),
		TutorDir:  cfg.TutorDirectory(s.Options.TutorDirectory),
		Inputs:    []string{settingsPath},
	}
	for _, p := range d.KmapPaths() {
		b.Inputs = append(b.Inputs, filepath.Join(dir, filepath.FromSlash(string(p))))
	}

	if cfg.Output.Tutor {
		if b.Tutor, err = tutor.Export(d, s); err != nil {
			return nil, errors.Wrap(err, "failure to export tutor data")
		}
	}

	log.Infow("Compiled keyboard",
		logger.FieldCount, len(files),
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return b, nil
}

// write saves the build's files and returns every path written.
func (b *build) write() ([]string, error) {
	paths, err := firmware.Write(b.OutputDir, b.Files)
	if err != nil {
		return nil, err
	}
	if b.Tutor != nil {
		p, err := tutor.Save(b.TutorDir, b.Tutor)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}
