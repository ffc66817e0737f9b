package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"figma-px/internal/export"
)

var nowFunc = time.Now

// Controls manages the Export/Clear buttons of the history tab.
type Controls struct {
	exportBtn   *widget.Button
	clearBtn    *widget.Button
	statusLabel *widget.Label

	historyView *HistoryView
	savedFiles  *SavedFilesList
	prefs       fyne.Preferences
	log         *zap.Logger

	container *fyne.Container
}

// NewControls creates the history controls wired to the given views.
func NewControls(hv *HistoryView, sfl *SavedFilesList, prefs fyne.Preferences, log *zap.Logger) *Controls {
	c := &Controls{
		historyView: hv,
		savedFiles:  sfl,
		prefs:       prefs,
		log:         log,
	}

	c.exportBtn = widget.NewButton("Export", c.onExport)
	c.clearBtn = widget.NewButton("Clear", c.onClear)
	c.statusLabel = widget.NewLabel("")

	c.container = container.NewHBox(c.exportBtn, c.clearBtn, c.statusLabel)
	return c
}

// Container returns the controls container.
func (c *Controls) Container() *fyne.Container {
	return c.container
}

// Status returns the text of the status label.
func (c *Controls) Status() string {
	return c.statusLabel.Text
}

// ExportTo writes the history to path (CSV, appended) and to a TXT file next
// to it. It returns the paths written.
func (c *Controls) ExportTo(path string) ([]string, error) {
	conversions := c.historyView.Conversions()
	if len(conversions) == 0 {
		c.statusLabel.SetText("No conversions to export.")
		return nil, nil
	}

	if filepath.Ext(path) != ".csv" {
		path += ".csv"
	}
	txtPath := strings.TrimSuffix(path, ".csv") + ".txt"

	var err error
	if e := export.EnsureDir(path); e != nil {
		err = multierr.Append(err, e)
	} else {
		err = multierr.Append(err, export.WriteCSV(path, conversions))
		err = multierr.Append(err, export.WriteTXT(txtPath, conversions))
	}
	if err != nil {
		c.log.Error("Export failed", zap.String("file", path), zap.Error(err))
		c.statusLabel.SetText(fmt.Sprintf("Export error: %v", err))
		return nil, err
	}

	c.log.Info("Exported history", zap.Int("conversions", len(conversions)), zap.String("file", path))
	c.statusLabel.SetText(fmt.Sprintf("Exported %d conversions to %s", len(conversions), filepath.Base(path)))
	if c.prefs != nil {
		c.prefs.SetString(prefLastDir, filepath.Dir(path))
	}
	if c.savedFiles != nil {
		c.savedFiles.Refresh()
	}
	return []string{path, txtPath}, nil
}

func (c *Controls) onExport() {
	if len(c.historyView.Conversions()) == 0 {
		c.statusLabel.SetText("No conversions to export.")
		return
	}

	win := fyne.CurrentApp().Driver().AllWindows()
	if len(win) == 0 {
		return
	}

	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		c.ExportTo(path)
	}, win[0])

	save.SetFileName(filepath.Base(export.BuildPath("conversions", "", ".csv", nowFunc())))
	if dir := c.lastDir(); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			save.SetLocation(lister)
		}
	}
	save.Show()
}

func (c *Controls) onClear() {
	c.historyView.Clear()
	c.statusLabel.SetText("")
}

func (c *Controls) lastDir() string {
	if c.prefs != nil {
		if dir := c.prefs.String(prefLastDir); dir != "" {
			return dir
		}
	}
	if c.savedFiles != nil {
		return c.savedFiles.Dir()
	}
	return ""
}
