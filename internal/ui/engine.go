package ui

import (
	"fmt"
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize       = 20
	listRowHeight  = 24
	checkboxSquare = 16
)

// Engine owns one window-layer of widgets: the node tree, the stylesheet, the
// keyboard focus, and the registered event handlers. The main window and each
// dialog are separate engines; the application decides which one receives
// input (modality).
type Engine struct {
	sheet *Stylesheet
	nodes []*Node
	byID  map[string]*Node
	font  rl.Font

	winW, winH int32

	focus   *Node
	pressed *Node

	onClick  map[*Node]func()
	onToggle map[*Node]func(bool)
	onSubmit map[*Node]func(string)
	onSelect map[*Node]func(int)
}

// NewEngine resolves styles and bounds for the node tree and indexes nodes by
// id. Bounds come from the stylesheet; bounds preset on nodes built in code
// are kept where the stylesheet is silent. Duplicate ids are a startup error.
func NewEngine(sheet *Stylesheet, nodes []*Node, winW, winH int32) (*Engine, error) {
	e := &Engine{
		sheet:    sheet,
		nodes:    nodes,
		byID:     make(map[string]*Node),
		winW:     winW,
		winH:     winH,
		onClick:  make(map[*Node]func()),
		onToggle: make(map[*Node]func(bool)),
		onSubmit: make(map[*Node]func(string)),
		onSelect: make(map[*Node]func(int)),
	}
	if err := e.index(nodes); err != nil {
		return nil, err
	}
	for _, n := range nodes {
		e.layoutNode(n, 0, 0)
	}
	return e, nil
}

func (e *Engine) index(nodes []*Node) error {
	for _, n := range nodes {
		if n.Kind == KindList && len(n.Items) == 0 {
			n.Selected = -1
		}
		if n.ID != "" {
			if _, dup := e.byID[n.ID]; dup {
				return fmt.Errorf("duplicate widget id %q", n.ID)
			}
			e.byID[n.ID] = n
		}
		if err := e.index(n.Children); err != nil {
			return err
		}
	}
	return nil
}

// layoutNode computes absolute bounds: stylesheet position wins, preset
// (code-built) bounds are relative to the parent, percentages are relative to
// the window.
func (e *Engine) layoutNode(n *Node, px, py float32) {
	st := e.sheet.Resolve(n)
	n.style = st

	w, h := n.Bounds.Width, n.Bounds.Height
	if st.Width > 0 {
		w = float32(st.Width)
	}
	if st.Height > 0 {
		h = float32(st.Height)
	}
	x, y := px+n.Bounds.X, py+n.Bounds.Y
	if st.HasLeft {
		x = px + float32(st.Left)
	}
	if st.HasTop {
		y = py + float32(st.Top)
	}
	if st.LeftPct >= 0 {
		x = float32(e.winW-int32(w)) * float32(st.LeftPct) / 100
	}
	if st.TopPct >= 0 {
		y = float32(e.winH-int32(h)) * float32(st.TopPct) / 100
	}
	n.Bounds = rl.NewRectangle(x, y, w, h)
	for _, c := range n.Children {
		e.layoutNode(c, x, y)
	}
}

// SetFont sets the font used for all text. Zero texture ID = raylib default.
func (e *Engine) SetFont(font rl.Font) {
	e.font = font
}

// Lookup returns the node with the given id. Resolve every handle once at
// startup and fail fast on the error instead of looking up per event.
func (e *Engine) Lookup(id string) (*Node, error) {
	n, ok := e.byID[id]
	if !ok {
		return nil, fmt.Errorf("widget %q not found in layout", id)
	}
	return n, nil
}

// OnClick registers the handler fired when the button with the given id is
// clicked (press and release inside its bounds).
func (e *Engine) OnClick(id string, fn func()) error {
	n, err := e.Lookup(id)
	if err != nil {
		return err
	}
	e.onClick[n] = fn
	return nil
}

// OnToggle registers the handler fired with the new state when the checkbox
// with the given id is toggled.
func (e *Engine) OnToggle(id string, fn func(bool)) error {
	n, err := e.Lookup(id)
	if err != nil {
		return err
	}
	e.onToggle[n] = fn
	return nil
}

// OnSubmit registers the handler fired with the field's text when editing
// finishes (Enter or focus loss).
func (e *Engine) OnSubmit(id string, fn func(string)) error {
	n, err := e.Lookup(id)
	if err != nil {
		return err
	}
	e.onSubmit[n] = fn
	return nil
}

// OnSelect registers the handler fired with the row index when a list item is
// clicked.
func (e *Engine) OnSelect(id string, fn func(int)) error {
	n, err := e.Lookup(id)
	if err != nil {
		return err
	}
	e.onSelect[n] = fn
	return nil
}

// hit returns the topmost interactive node under the point. Later nodes draw
// on top, so iterate in reverse.
func (e *Engine) hit(nodes []*Node, p rl.Vector2) *Node {
	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		if child := e.hit(n.Children, p); child != nil {
			return child
		}
		if n.interactive() && n.contains(p) {
			return n
		}
	}
	return nil
}

// Update handles one frame of input: mouse presses and releases, focus
// changes, and typing into the focused field. Call once per frame on the
// engine that currently owns input.
func (e *Engine) Update() {
	mouse := rl.GetMousePosition()

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		target := e.hit(e.nodes, mouse)
		if e.focus != nil && e.focus != target {
			e.blur()
		}
		switch {
		case target == nil:
		case target.Kind == KindButton:
			e.pressed = target
			target.pressed = true
		case target.Kind == KindField:
			e.focus = target
		case target.Kind == KindCheckbox:
			target.Checked = !target.Checked
			if fn := e.onToggle[target]; fn != nil {
				fn(target.Checked)
			}
		case target.Kind == KindList:
			e.clickList(target, mouse)
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) && e.pressed != nil {
		n := e.pressed
		e.pressed = nil
		n.pressed = false
		if n.contains(mouse) {
			if fn := e.onClick[n]; fn != nil {
				fn()
			}
		}
	}

	if e.focus != nil {
		e.editFocused()
	}
}

// clickList updates the selection from the clicked row and fires OnSelect.
func (e *Engine) clickList(n *Node, mouse rl.Vector2) {
	pad := float32(n.style.Padding)
	row := int((mouse.Y - n.Bounds.Y - pad) / listRowHeight)
	if row < 0 || row >= len(n.Items) {
		return
	}
	n.Selected = row
	if fn := e.onSelect[n]; fn != nil {
		fn(row)
	}
}

// editFocused handles typing in the focused field: printable characters,
// backspace (UTF-8 aware), Enter to submit, Escape to drop focus.
func (e *Engine) editFocused() {
	n := e.focus
	for {
		c := rl.GetCharPressed()
		if c == 0 {
			break
		}
		if c >= 32 {
			n.Text += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(n.Text) > 0 {
		_, size := utf8.DecodeLastRuneInString(n.Text)
		n.Text = n.Text[:len(n.Text)-size]
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		e.blur()
		return
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		e.focus = nil
	}
}

// blur submits the focused field and clears focus.
func (e *Engine) blur() {
	n := e.focus
	e.focus = nil
	if n == nil {
		return
	}
	if fn := e.onSubmit[n]; fn != nil {
		fn(n.Text)
	}
}

// Blur forces any pending field edit to submit, e.g. before reading form
// values on OK.
func (e *Engine) Blur() {
	e.blur()
}

// Draw renders all nodes in order (parents before children, later siblings on
// top).
func (e *Engine) Draw() {
	for _, n := range e.nodes {
		e.drawNode(n)
	}
}

func (e *Engine) drawNode(n *Node) {
	st := n.style
	x := int32(n.Bounds.X)
	y := int32(n.Bounds.Y)
	w := int32(n.Bounds.Width)
	h := int32(n.Bounds.Height)

	switch n.Kind {
	case KindPanel, KindViewport:
		if st.Background.A > 0 {
			rl.DrawRectangle(x, y, w, h, st.Background)
		}
		if st.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, st.Border)
		}
	case KindLabel:
		e.drawText(n.Text, x+st.Padding, y+st.Padding, st.Color)
	case KindButton:
		bg := st.Background
		if n.pressed {
			bg = darken(bg)
		} else if n.contains(rl.GetMousePosition()) {
			bg = lighten(bg)
		}
		rl.DrawRectangle(x, y, w, h, bg)
		if st.HasBorder {
			rl.DrawRectangleLines(x, y, w, h, st.Border)
		}
		tw := e.measureText(n.Text)
		e.drawText(n.Text, x+(w-tw)/2, y+(h-fontSize)/2, st.Color)
	case KindField:
		rl.DrawRectangle(x, y, w, h, st.Background)
		border := st.Border
		if e.focus == n {
			border = st.Accent
		}
		rl.DrawRectangleLines(x, y, w, h, border)
		text := n.Text
		if e.focus == n {
			text += "|"
		}
		e.drawText(text, x+st.Padding, y+(h-fontSize)/2, st.Color)
	case KindCheckbox:
		box := int32(checkboxSquare)
		by := y + (h-box)/2
		rl.DrawRectangleLines(x, by, box, box, st.Color)
		if n.Checked {
			rl.DrawRectangle(x+3, by+3, box-6, box-6, st.Accent)
		}
		e.drawText(n.Text, x+box+st.Padding*2, y+(h-fontSize)/2, st.Color)
	case KindList:
		rl.DrawRectangle(x, y, w, h, st.Background)
		if st.HasBorder {
			rl.DrawRectangleLines(x, y, w, h, st.Border)
		}
		pad := st.Padding
		maxRows := int((h - 2*pad) / listRowHeight)
		for i, item := range n.Items {
			if i >= maxRows {
				break
			}
			ry := y + pad + int32(i)*listRowHeight
			if i == n.Selected {
				rl.DrawRectangle(x+1, ry, w-2, listRowHeight, st.Accent)
			}
			e.drawText(item, x+pad, ry+(listRowHeight-fontSize)/2, st.Color)
		}
	}

	for _, c := range n.Children {
		e.drawNode(c)
	}
}

func (e *Engine) drawText(text string, x, y int32, color rl.Color) {
	if text == "" {
		return
	}
	if e.font.Texture.ID != 0 {
		rl.DrawTextEx(e.font, text, rl.NewVector2(float32(x), float32(y)), fontSize, 1, color)
		return
	}
	rl.DrawText(text, x, y, fontSize, color)
}

func (e *Engine) measureText(text string) int32 {
	if e.font.Texture.ID != 0 {
		return int32(rl.MeasureTextEx(e.font, text, fontSize, 1).X)
	}
	return rl.MeasureText(text, fontSize)
}

func lighten(c rl.Color) rl.Color {
	return rl.NewColor(bump(c.R, 25), bump(c.G, 25), bump(c.B, 25), c.A)
}

func darken(c rl.Color) rl.Color {
	sub := func(v uint8) uint8 {
		if v < 25 {
			return 0
		}
		return v - 25
	}
	return rl.NewColor(sub(c.R), sub(c.G), sub(c.B), c.A)
}

func bump(v uint8, by uint8) uint8 {
	if v > 255-by {
		return 255
	}
	return v + by
}
