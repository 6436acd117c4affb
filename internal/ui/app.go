package ui

import (
	"context"

	"cowriter/internal/config"
	"cowriter/internal/session"
	"cowriter/internal/ui/cwidget"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	AppID       = "io.cowriter.desktop"
	WindowTitle = "AI Co-Writer"
)

type CoWriterApp struct {
	fyneApp fyne.App
	mainWin fyne.Window

	config  *config.Config
	session *session.Session

	input  *cwidget.TextPane
	output *cwidget.TextPane

	submitBtn   *widget.Button
	acceptBtn   *widget.Button
	rejectBtn   *widget.Button
	statusLabel *widget.Label
}

func CreateApp(r session.Rewriter, cfg *config.Config) *CoWriterApp {
	return newCoWriterApp(app.NewWithID(AppID), r, cfg)
}

func newCoWriterApp(a fyne.App, r session.Rewriter, cfg *config.Config) *CoWriterApp {
	w := a.NewWindow(WindowTitle)
	w.Resize(fyne.NewSize(cfg.GetWindowSize()))

	ca := &CoWriterApp{
		fyneApp: a,
		mainWin: w,
		config:  cfg,
	}
	ca.session = session.New(r, ca)

	ca.build()

	return ca
}

func (a *CoWriterApp) Run() {
	a.mainWin.CenterOnScreen()
	a.mainWin.ShowAndRun()
}

func (a *CoWriterApp) build() {
	a.input = cwidget.NewTextPane("Your Text", "Start writing here...", false)

	a.submitBtn = widget.NewButton("Get AI Suggestions", a.submit)
	a.submitBtn.Importance = widget.HighImportance

	left := container.NewBorder(
		nil,
		container.NewCenter(a.submitBtn),
		nil, nil,
		a.input,
	)

	a.output = cwidget.NewTextPane("AI Suggestions", "AI suggestions will appear here...", true)

	// placeholders; they have no behaviour yet
	a.acceptBtn = widget.NewButton("Accept Changes", nil)
	a.acceptBtn.Importance = widget.SuccessImportance
	a.rejectBtn = widget.NewButton("Reject Changes", nil)
	a.rejectBtn.Importance = widget.DangerImportance

	right := container.NewBorder(
		nil,
		container.NewCenter(container.NewHBox(a.acceptBtn, a.rejectBtn)),
		nil, nil,
		a.output,
	)

	split := container.NewHSplit(
		container.NewPadded(left),
		container.NewPadded(right),
	)
	split.SetOffset(0.5)

	a.statusLabel = widget.NewLabel(session.StatusReady)

	a.mainWin.SetContent(container.NewBorder(
		nil,
		container.NewVBox(widget.NewSeparator(), a.statusLabel),
		nil, nil,
		split,
	))

	a.mainWin.SetMainMenu(a.buildMainMenu())
}

func shortcut(key fyne.KeyName) fyne.Shortcut {
	return &desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierShortcutDefault}
}

func (a *CoWriterApp) buildMainMenu() *fyne.MainMenu {
	newItem := fyne.NewMenuItem("New", nil)
	newItem.Shortcut = shortcut(fyne.KeyN)

	saveItem := fyne.NewMenuItem("Save", nil)
	saveItem.Shortcut = shortcut(fyne.KeyS)

	exitItem := fyne.NewMenuItem("Exit", a.fyneApp.Quit)
	exitItem.Shortcut = shortcut(fyne.KeyQ)
	exitItem.IsQuit = true

	undoItem := fyne.NewMenuItem("Undo", nil)
	undoItem.Shortcut = shortcut(fyne.KeyZ)

	redoItem := fyne.NewMenuItem("Redo", nil)
	redoItem.Shortcut = shortcut(fyne.KeyY)

	styleItem := fyne.NewMenuItem("Writing Style Preferences", nil)

	return fyne.NewMainMenu(
		fyne.NewMenu("File", newItem, saveItem, fyne.NewMenuItemSeparator(), exitItem),
		fyne.NewMenu("Edit", undoItem, redoItem),
		fyne.NewMenu("Settings", styleItem),
	)
}

// submit runs on the UI goroutine and blocks it until the server answers.
func (a *CoWriterApp) submit() {
	a.session.Submit(context.Background(), a.input.Text())
}

func (a *CoWriterApp) SetStatus(text string) {
	a.statusLabel.SetText(text)
}

func (a *CoWriterApp) SetSuggestion(text string) {
	a.output.SetText(text)
}

func (a *CoWriterApp) ShowWarning(title, message string) {
	dialog.ShowInformation(title, message, a.mainWin)
}

func (a *CoWriterApp) ShowCritical(title, message string) {
	content := container.NewBorder(nil, nil, widget.NewIcon(theme.ErrorIcon()), nil, widget.NewLabel(message))

	d := dialog.NewCustom(title, "OK", content, a.mainWin)
	d.Show()
}
