package firmware

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/pipit-keyboard/chordc/errors"
	"github.com/pipit-keyboard/chordc/logger"
)

// CheckResult holds the result of comparing generated files with the ones
// on disk.
type CheckResult struct {
	UpToDate    bool
	Differences []string // file names, with a reason when not a plain mismatch
}

// Compare checks whether dir already holds files, ignoring the banner's
// timestamp.
func Compare(dir string, files []File) (*CheckResult, error) {
	var diffs []string
	for _, f := range files {
		existing, err := os.ReadFile(filepath.Join(dir, f.Name))
		if os.IsNotExist(err) {
			diffs = append(diffs, f.Name+" (missing)")
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", f.Name)
		}
		if filterBanner(string(existing)) != filterBanner(f.Text) {
			diffs = append(diffs, f.Name)
		}
	}
	return &CheckResult{
		UpToDate:    len(diffs) == 0,
		Differences: diffs,
	}, nil
}

// filterBanner drops the generation timestamp line.
// Returns empty string if the scanner fails, so the comparison fails too.
func filterBanner(content string) string {
	var result strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, bannerPrefix) {
			continue
		}
		result.WriteString(line)
		result.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return ""
	}
	return result.String()
}

// Write saves files into dir, creating it if needed, and returns the paths
// written.
func Write(dir string, files []File) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create output directory %s", dir)
	}
	var paths []string
	for _, f := range files {
		p := filepath.Join(dir, f.Name)
		if err := os.WriteFile(p, []byte(f.Text), 0o644); err != nil {
			return nil, errors.Wrapf(err, "failed to write %s", p)
		}
		paths = append(paths, p)
	}
	logger.ComponentLogger("firmware").Infow("Saved keyboard configuration",
		logger.FieldDir, dir,
		logger.FieldCount, len(paths))
	return paths, nil
}
