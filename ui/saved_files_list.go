package ui

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// FileInfo holds metadata about an exported file.
type FileInfo struct {
	Name     string
	Path     string
	Size     int64
	Modified time.Time
}

// SavedFilesList shows the CSV and TXT exports found in the export directory.
type SavedFilesList struct {
	mu        sync.Mutex
	dir       string
	files     []FileInfo
	log       *zap.Logger
	list      *widget.List
	container *fyne.Container
}

// NewSavedFilesList creates the list and scans dir.
func NewSavedFilesList(dir string, log *zap.Logger) *SavedFilesList {
	sfl := &SavedFilesList{dir: dir, log: log}

	sfl.list = widget.NewList(
		func() int {
			sfl.mu.Lock()
			defer sfl.mu.Unlock()
			return len(sfl.files)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("template")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			sfl.mu.Lock()
			defer sfl.mu.Unlock()
			if id >= len(sfl.files) {
				return
			}
			obj.(*widget.Label).SetText(formatFileItem(sfl.files[id], time.Now()))
		},
	)

	sfl.list.OnSelected = func(id widget.ListItemID) {
		sfl.mu.Lock()
		if id >= len(sfl.files) {
			sfl.mu.Unlock()
			return
		}
		path := sfl.files[id].Path
		sfl.mu.Unlock()

		go sfl.openFile(path)

		// allow selecting the same file again
		sfl.list.UnselectAll()
	}

	header := widget.NewLabelWithStyle("Exports", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	refresh := widget.NewButton("Refresh", sfl.Refresh)

	sfl.container = container.NewBorder(
		container.NewVBox(container.NewBorder(nil, nil, nil, refresh, header), widget.NewSeparator()),
		nil, nil, nil,
		sfl.list,
	)

	sfl.Refresh()
	return sfl
}

// Container returns the container widget.
func (sfl *SavedFilesList) Container() *fyne.Container {
	return sfl.container
}

// Dir returns the scanned directory.
func (sfl *SavedFilesList) Dir() string {
	sfl.mu.Lock()
	defer sfl.mu.Unlock()
	return sfl.dir
}

// Files returns a copy of the listed files.
func (sfl *SavedFilesList) Files() []FileInfo {
	sfl.mu.Lock()
	defer sfl.mu.Unlock()
	out := make([]FileInfo, len(sfl.files))
	copy(out, sfl.files)
	return out
}

// Refresh rescans the directory and updates the list.
func (sfl *SavedFilesList) Refresh() {
	files, err := scanExports(sfl.Dir())
	if err != nil && !os.IsNotExist(err) {
		sfl.log.Warn("Unable to scan exports", zap.String("dir", sfl.Dir()), zap.Error(err))
		return
	}

	sfl.mu.Lock()
	sfl.files = files
	sfl.mu.Unlock()

	sfl.list.Refresh()
}

// scanExports lists CSV and TXT files directly inside dir, newest first.
func scanExports(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".csv" && ext != ".txt" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Name:     e.Name(),
			Path:     filepath.Join(dir, e.Name()),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Modified.After(files[j].Modified)
	})
	return files, nil
}

func formatFileItem(fi FileInfo, now time.Time) string {
	return fmt.Sprintf("%s  (%s, %s)", fi.Name, humanize.Bytes(uint64(fi.Size)), humanize.RelTime(fi.Modified, now, "ago", "from now"))
}

// openFile opens a file with the system default application.
func (sfl *SavedFilesList) openFile(path string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", path)
	default:
		sfl.log.Warn("Unsupported platform for opening files", zap.String("os", runtime.GOOS))
		return
	}

	if err := cmd.Start(); err != nil {
		sfl.log.Warn("Unable to open file", zap.String("file", path), zap.Error(err))
	}
}
