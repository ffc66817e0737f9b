package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	idMu      sync.Mutex
	lastIDTs  string
	idCounter int
)

// NextConversionID returns an ID of the form "YYYYMMDD-HHMMSS-NN" for the
// given timestamp. Copies made within the same second get increasing
// counters; the counter restarts at 01 on the next second.
func NextConversionID(ts time.Time) string {
	idMu.Lock()
	defer idMu.Unlock()
	tsStr := ts.Format("20060102-150405")
	if tsStr == lastIDTs {
		idCounter++
	} else {
		lastIDTs = tsStr
		idCounter = 1
	}
	return fmt.Sprintf("%s-%02d", tsStr, idCounter)
}

// DateSuffix returns the date portion in "02.01.2006" format.
func DateSuffix(t time.Time) string {
	return t.Format("02.01.2006")
}

// BuildPath returns a file path of the form base + suffix + "_" + date + ext.
// CSV exports append to an existing file, so the same day always maps to the
// same path.
func BuildPath(base, suffix, ext string, t time.Time) string {
	date := DateSuffix(t)
	return fmt.Sprintf("%s%s_%s%s", base, suffix, date, ext)
}

// BuildLogPath returns a file path of the form base + suffix + ext with no date component.
// Used for the append-only CLI history (e.g. conversions_log.csv).
func BuildLogPath(base, suffix, ext string) string {
	return fmt.Sprintf("%s%s%s", base, suffix, ext)
}

// EnsureDir creates the directory component of path (equivalent to mkdir -p)
// with mode 0755. It is a no-op if the directory already exists.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}

// hasContent reports whether path is a regular, non-empty file. A file
// created empty by a save dialog still needs the CSV header.
func hasContent(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir() && info.Size() > 0
}
