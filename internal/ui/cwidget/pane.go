package cwidget

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type editor interface {
	fyne.CanvasObject
	fyne.Focusable
}

// TextPane is a bold caption over a word-wrapped multi-line entry that
// fills the remaining space.
type TextPane struct {
	widget.BaseWidget

	labelWidget *widget.Label
	entryWidget *widget.Entry
	editor      editor

	LabelText   string
	Placeholder string
	ReadOnly    bool
}

func NewTextPane(label, placeholder string, readOnly bool) *TextPane {
	pane := &TextPane{
		LabelText:   label,
		Placeholder: placeholder,
		ReadOnly:    readOnly,
	}

	pane.labelWidget = widget.NewLabelWithStyle(label, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	if readOnly {
		ro := newReadOnlyEntry()
		pane.entryWidget = &ro.Entry
		pane.editor = ro
	} else {
		pane.entryWidget = widget.NewMultiLineEntry()
		pane.entryWidget.Wrapping = fyne.TextWrapWord
		pane.editor = pane.entryWidget
	}
	pane.entryWidget.SetPlaceHolder(placeholder)

	pane.ExtendBaseWidget(pane)

	return pane
}

func (item *TextPane) CreateRenderer() fyne.WidgetRenderer {
	c := container.NewBorder(
		item.labelWidget,
		nil, nil, nil,
		item.editor,
	)

	return widget.NewSimpleRenderer(c)
}

func (item *TextPane) SetText(text string) {
	item.entryWidget.SetText(text)
}

func (item *TextPane) Text() string {
	return item.entryWidget.Text
}

func (item *TextPane) Entry() *widget.Entry {
	return item.entryWidget
}

// Editor is the object that receives keyboard input.
func (item *TextPane) Editor() fyne.Focusable {
	return item.editor
}
