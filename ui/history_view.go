package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"figma-px/internal/format"
	"figma-px/internal/model"
)

var historyColumns = []string{"Time", "Metric", "Font size", "Percent", "Result"}

// HistoryView displays a table of copied conversions, newest last. It keeps
// at most limit entries.
type HistoryView struct {
	mu          sync.Mutex
	limit       int
	conversions []model.Conversion
	table       *widget.Table
}

// NewHistoryView creates a new history table view.
func NewHistoryView(limit int) *HistoryView {
	if limit < 1 {
		limit = 1
	}
	hv := &HistoryView{limit: limit}

	hv.table = widget.NewTable(
		hv.tableSize,
		hv.createCell,
		hv.updateCell,
	)

	hv.table.SetColumnWidth(0, 160) // Time
	hv.table.SetColumnWidth(1, 120) // Metric
	hv.table.SetColumnWidth(2, 90)  // Font size
	hv.table.SetColumnWidth(3, 90)  // Percent
	hv.table.SetColumnWidth(4, 100) // Result

	return hv
}

// Container returns the table widget.
func (hv *HistoryView) Container() *widget.Table {
	return hv.table
}

// AddConversion appends a conversion, dropping the oldest one when the
// history is full.
func (hv *HistoryView) AddConversion(c model.Conversion) {
	hv.mu.Lock()
	hv.conversions = append(hv.conversions, c)
	if n := len(hv.conversions) - hv.limit; n > 0 {
		hv.conversions = append([]model.Conversion(nil), hv.conversions[n:]...)
	}
	hv.mu.Unlock()
	hv.table.Refresh()
}

// Conversions returns a copy of all stored conversions.
func (hv *HistoryView) Conversions() []model.Conversion {
	hv.mu.Lock()
	defer hv.mu.Unlock()
	out := make([]model.Conversion, len(hv.conversions))
	copy(out, hv.conversions)
	return out
}

// Clear removes all conversions.
func (hv *HistoryView) Clear() {
	hv.mu.Lock()
	hv.conversions = nil
	hv.mu.Unlock()
	hv.table.Refresh()
}

func (hv *HistoryView) tableSize() (rows int, cols int) {
	hv.mu.Lock()
	defer hv.mu.Unlock()
	return len(hv.conversions) + 1, len(historyColumns) // +1 for header
}

func (hv *HistoryView) createCell() fyne.CanvasObject {
	return widget.NewLabel("")
}

func (hv *HistoryView) updateCell(id widget.TableCellID, obj fyne.CanvasObject) {
	label := obj.(*widget.Label)

	if id.Row == 0 {
		label.TextStyle = fyne.TextStyle{Bold: true}
		label.SetText(historyColumns[id.Col])
		return
	}

	hv.mu.Lock()
	defer hv.mu.Unlock()

	idx := id.Row - 1
	if idx >= len(hv.conversions) {
		label.SetText("")
		return
	}

	c := hv.conversions[idx]
	label.TextStyle = fyne.TextStyle{}

	switch id.Col {
	case 0:
		label.SetText(c.Timestamp.Format("2006-01-02 15:04:05"))
	case 1:
		label.SetText(c.Metric.Label())
	case 2:
		label.SetText(format.Number(c.BaseSizePx) + " px")
	case 3:
		label.SetText(format.Number(c.Percent) + " %")
	case 4:
		label.SetText(c.Pixels())
	}
}
