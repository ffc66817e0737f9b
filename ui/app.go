package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"go.uber.org/zap"

	"figma-px/internal/config"
	"figma-px/internal/model"
)

// MainWindow groups the views of the application window.
type MainWindow struct {
	Window     fyne.Window
	Form       *ConverterForm
	History    *HistoryView
	Controls   *Controls
	SavedFiles *SavedFilesList
}

// BuildMainWindow creates and configures the main application window.
func BuildMainWindow(app fyne.App, cfg *config.Config, log *zap.Logger) *MainWindow {
	win := app.NewWindow("Convert Figma percent letter spacing to px")
	win.Resize(NewWindowSize())

	prefs := app.Preferences()

	historyView := NewHistoryView(cfg.History.Limit)
	savedFiles := NewSavedFilesList(cfg.History.Dir, log)
	controls := NewControls(historyView, savedFiles, prefs, log)

	form := NewConverterForm(FormDeps{
		Clipboard: app.Clipboard(),
		Log:       log,
		OnCopied: func(c model.Conversion) {
			historyView.AddConversion(c)
		},
	})
	form.LoadPreferences(prefs, cfg.Defaults.BaseSizePx, cfg.Metric())

	historyTab := container.NewBorder(controls.Container(), nil, nil, nil, historyView.Container())

	tabs := container.NewAppTabs(
		container.NewTabItem("Convert", container.NewPadded(form.Container())),
		container.NewTabItem("History", historyTab),
		container.NewTabItem("Exports", savedFiles.Container()),
	)
	tabs.OnSelected = func(ti *container.TabItem) {
		if ti.Text == "Exports" {
			savedFiles.Refresh()
		}
	}

	win.SetContent(tabs)

	win.SetCloseIntercept(func() {
		form.SavePreferences(prefs)
		log.Debug("Window closed")
		win.Close()
	})

	return &MainWindow{
		Window:     win,
		Form:       form,
		History:    historyView,
		Controls:   controls,
		SavedFiles: savedFiles,
	}
}
