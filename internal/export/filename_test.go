package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var testDate = time.Date(2026, 10, 19, 9, 41, 5, 0, time.UTC)

func TestDateSuffix(t *testing.T) {
	if got := DateSuffix(testDate); got != "19.10.2026" {
		t.Errorf("DateSuffix() = %q, want 19.10.2026", got)
	}
}

func TestBuildPath(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "conversions")

	tests := []struct {
		name   string
		suffix string
		ext    string
		want   string
	}{
		{"csv", "", ".csv", "conversions_19.10.2026.csv"},
		{"txt", "", ".txt", "conversions_19.10.2026.txt"},
		{"with suffix", "_log", ".csv", "conversions_log_19.10.2026.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildPath(base, tt.suffix, tt.ext, testDate)
			if want := filepath.Join(dir, tt.want); got != want {
				t.Errorf("BuildPath() = %q, want %q", got, want)
			}
		})
	}
}

// An existing export for the same day is reused so CSV rows are appended.
func TestBuildPath_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "conversions_19.10.2026.csv")
	if err := os.WriteFile(existing, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if got := BuildPath(filepath.Join(dir, "conversions"), "", ".csv", testDate); got != existing {
		t.Errorf("BuildPath() = %q, want %q", got, existing)
	}
}

func TestBuildLogPath(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "conversions")

	if got, want := BuildLogPath(base, "_log", ".csv"), filepath.Join(dir, "conversions_log.csv"); got != want {
		t.Errorf("BuildLogPath() = %q, want %q", got, want)
	}
	if got, want := BuildLogPath(base, "", ".csv"), filepath.Join(dir, "conversions.csv"); got != want {
		t.Errorf("BuildLogPath(no suffix) = %q, want %q", got, want)
	}
}

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exports", "2026", "conversions.csv")
	if err := EnsureDir(path); err != nil {
		t.Fatalf("EnsureDir() error: %v", err)
	}
	info, err := os.Stat(filepath.Dir(path))
	if err != nil {
		t.Fatalf("directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}

	// second call on an existing directory is a no-op
	if err := EnsureDir(path); err != nil {
		t.Fatalf("EnsureDir() on existing dir error: %v", err)
	}
}

func TestNextConversionID(t *testing.T) {
	ts := time.Date(2031, 1, 2, 3, 4, 5, 0, time.UTC)

	first := NextConversionID(ts)
	second := NextConversionID(ts)
	if first != "20310102-030405-01" {
		t.Errorf("first ID = %q, want 20310102-030405-01", first)
	}
	if second != "20310102-030405-02" {
		t.Errorf("second ID = %q, want 20310102-030405-02", second)
	}

	if next := NextConversionID(ts.Add(time.Second)); next != "20310102-030406-01" {
		t.Errorf("ID in next second = %q, want 20310102-030406-01", next)
	}
}
