package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Widget ids shared by all code-built dialogs. Each dialog is its own Engine,
// so the ids cannot clash with the main window.
const (
	DialogOK      = "dialog_ok"
	DialogCancel  = "dialog_cancel"
	DialogMessage = "dialog_message"
)

// FormRow describes one labeled input of a code-built dialog. Kind selects
// the input widget: KindField (Value is the initial text), KindCheckbox
// (Checked is the initial state), or KindButton for cycle-style choices
// (Value is the caption).
type FormRow struct {
	Label   string
	ID      string
	Kind    Kind
	Value   string
	Checked bool
}

const (
	dialogWidth   = 460
	dialogPad     = 16
	dialogRowH    = 30
	dialogRowGap  = 6
	dialogLabelW  = 180
	dialogInputW  = dialogWidth - dialogLabelW - 3*dialogPad
	dialogTitleH  = 40
	dialogFooterH = 84
	buttonW       = 100
	buttonH       = 32
)

// NewFormDialog builds a modal dialog: title, labeled input rows, a message
// line for validation errors, and OK/Cancel buttons, centered in the window.
// Widget positions are computed here; the stylesheet contributes colors via
// the dialog classes.
func NewFormDialog(sheet *Stylesheet, winW, winH int32, title string, rows []FormRow) (*Engine, error) {
	height := float32(dialogTitleH + dialogFooterH + len(rows)*(dialogRowH+dialogRowGap) + dialogPad)
	panel := NewNode(KindPanel, "dialog", "", "")
	panel.Bounds = rl.NewRectangle(
		float32(winW-dialogWidth)/2,
		float32(winH)/2-height/2,
		dialogWidth,
		height,
	)

	titleNode := NewNode(KindLabel, "dialog-title", "", title)
	titleNode.Bounds = rl.NewRectangle(dialogPad, 8, dialogWidth-2*dialogPad, dialogRowH)
	panel.Children = append(panel.Children, titleNode)

	y := float32(dialogTitleH + dialogPad)
	for _, row := range rows {
		label := NewNode(KindLabel, "dialog-label", "", row.Label)
		label.Bounds = rl.NewRectangle(dialogPad, y, dialogLabelW, dialogRowH)
		panel.Children = append(panel.Children, label)

		input := NewNode(row.Kind, "dialog-input", row.ID, row.Value)
		input.Checked = row.Checked
		input.Bounds = rl.NewRectangle(dialogPad+dialogLabelW+dialogPad, y, dialogInputW, dialogRowH)
		panel.Children = append(panel.Children, input)

		y += dialogRowH + dialogRowGap
	}

	panel.Children = append(panel.Children, dialogFooter(y, "OK", "Cancel")...)
	return NewEngine(sheet, []*Node{dimmer(winW, winH), panel}, winW, winH)
}

// NewNotice builds a message dialog with a single OK button.
func NewNotice(sheet *Stylesheet, winW, winH int32, message string) (*Engine, error) {
	return messageDialog(sheet, winW, winH, message, "OK", "")
}

// NewConfirm builds a Yes/No question dialog. Yes fires DialogOK, No fires
// DialogCancel.
func NewConfirm(sheet *Stylesheet, winW, winH int32, message string) (*Engine, error) {
	return messageDialog(sheet, winW, winH, message, "Yes", "No")
}

func messageDialog(sheet *Stylesheet, winW, winH int32, message, okText, cancelText string) (*Engine, error) {
	height := float32(dialogTitleH + dialogFooterH)
	panel := NewNode(KindPanel, "dialog", "", "")
	panel.Bounds = rl.NewRectangle(
		float32(winW-dialogWidth)/2,
		float32(winH)/2-height/2,
		dialogWidth,
		height,
	)

	text := NewNode(KindLabel, "dialog-label", "", message)
	text.Bounds = rl.NewRectangle(dialogPad, dialogPad, dialogWidth-2*dialogPad, dialogRowH)
	panel.Children = append(panel.Children, text)

	panel.Children = append(panel.Children, dialogFooter(dialogTitleH+dialogPad, okText, cancelText)...)
	return NewEngine(sheet, []*Node{dimmer(winW, winH), panel}, winW, winH)
}

// dialogFooter builds the message line and the OK/Cancel row below y. An
// empty cancelText omits the cancel button.
func dialogFooter(y float32, okText, cancelText string) []*Node {
	msg := NewNode(KindLabel, "dialog-error", DialogMessage, "")
	msg.Bounds = rl.NewRectangle(dialogPad, y, dialogWidth-2*dialogPad, dialogRowH)

	by := y + dialogRowH + dialogRowGap
	ok := NewNode(KindButton, "dialog-button", DialogOK, okText)
	if cancelText == "" {
		ok.Bounds = rl.NewRectangle(dialogWidth-dialogPad-buttonW, by, buttonW, buttonH)
		return []*Node{msg, ok}
	}
	cancel := NewNode(KindButton, "dialog-button", DialogCancel, cancelText)
	cancel.Bounds = rl.NewRectangle(dialogWidth-dialogPad-buttonW, by, buttonW, buttonH)
	ok.Bounds = rl.NewRectangle(dialogWidth-2*dialogPad-2*buttonW, by, buttonW, buttonH)
	return []*Node{msg, ok, cancel}
}

// dimmer covers the whole window under a modal dialog so the main window
// reads as inactive.
func dimmer(winW, winH int32) *Node {
	n := NewNode(KindPanel, "dialog-dim", "", "")
	n.Bounds = rl.NewRectangle(0, 0, float32(winW), float32(winH))
	return n
}
