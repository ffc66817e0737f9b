package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"go.uber.org/zap"
)

func TestControls_ExportTo(t *testing.T) {
	a := test.NewTempApp(t)
	dir := t.TempDir()

	hv := NewHistoryView(10)
	hv.AddConversion(conversionAt(1, "24.0"))
	hv.AddConversion(conversionAt(2, "-2.0"))
	sfl := NewSavedFilesList(dir, zap.NewNop())
	c := NewControls(hv, sfl, a.Preferences(), zap.NewNop())

	paths, err := c.ExportTo(filepath.Join(dir, "conversions"))
	if err != nil {
		t.Fatalf("ExportTo() error: %v", err)
	}
	if len(paths) != 2 || !strings.HasSuffix(paths[0], ".csv") || !strings.HasSuffix(paths[1], ".txt") {
		t.Fatalf("ExportTo() paths = %v, want csv and txt", paths)
	}

	data, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(strings.TrimSpace(string(data)), "\n"); n != 2 {
		t.Errorf("csv has %d data rows, want 2", n)
	}

	if !strings.Contains(c.Status(), "Exported 2 conversions") {
		t.Errorf("status = %q", c.Status())
	}
	if got := a.Preferences().String(prefLastDir); got != dir {
		t.Errorf("last dir = %q, want %q", got, dir)
	}
	if n := len(sfl.Files()); n != 2 {
		t.Errorf("saved files = %d, want 2 after export", n)
	}
}

func TestControls_ExportEmpty(t *testing.T) {
	test.NewTempApp(t)
	c := NewControls(NewHistoryView(10), nil, nil, zap.NewNop())

	paths, err := c.ExportTo(filepath.Join(t.TempDir(), "x.csv"))
	if err != nil || paths != nil {
		t.Errorf("ExportTo() = %v, %v; want nothing written", paths, err)
	}
	if c.Status() != "No conversions to export." {
		t.Errorf("status = %q", c.Status())
	}
}

func TestControls_Clear(t *testing.T) {
	test.NewTempApp(t)
	hv := NewHistoryView(10)
	hv.AddConversion(conversionAt(1, "1.0"))
	c := NewControls(hv, nil, nil, zap.NewNop())

	c.clearBtn.OnTapped()
	if len(hv.Conversions()) != 0 {
		t.Error("history should be empty after Clear")
	}
}

func TestScanExports(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "old.csv")
	for name, content := range map[string]string{"old.csv": "a", "new.txt": "bb", "notes.md": "c"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.csv"), 0755); err != nil {
		t.Fatal(err)
	}
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(old, past, past); err != nil {
		t.Fatal(err)
	}

	files, err := scanExports(dir)
	if err != nil {
		t.Fatalf("scanExports() error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("found %d files, want 2: %+v", len(files), files)
	}
	if files[0].Name != "new.txt" || files[1].Name != "old.csv" {
		t.Errorf("order = %s, %s; want newest first", files[0].Name, files[1].Name)
	}
}

func TestFormatFileItem(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	fi := FileInfo{Name: "conversions.csv", Size: 2048, Modified: now.Add(-5 * time.Minute)}

	got := formatFileItem(fi, now)
	want := "conversions.csv  (2.0 kB, 5 minutes ago)"
	if got != want {
		t.Errorf("formatFileItem() = %q, want %q", got, want)
	}
}

func TestSavedFilesList_MissingDir(t *testing.T) {
	test.NewTempApp(t)
	sfl := NewSavedFilesList(filepath.Join(t.TempDir(), "missing"), zap.NewNop())
	if n := len(sfl.Files()); n != 0 {
		t.Errorf("files = %d, want 0", n)
	}
}
