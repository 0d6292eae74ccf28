package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Kind names a widget type in a layout file.
type Kind string

const (
	KindPanel    Kind = "panel"
	KindLabel    Kind = "label"
	KindButton   Kind = "button"
	KindField    Kind = "field"
	KindCheckbox Kind = "checkbox"
	KindList     Kind = "list"
	KindViewport Kind = "viewport"
)

// Node is one widget from a layout file. Class and ID drive stylesheet
// matching and handle resolution; Bounds are computed from the style when the
// layout is resolved (children relative to their parent). Text is the label,
// button caption, or current field content depending on the kind.
type Node struct {
	Kind     Kind    `yaml:"kind"`
	ID       string  `yaml:"id,omitempty"`
	Class    string  `yaml:"class,omitempty"`
	Text     string  `yaml:"text,omitempty"`
	Checked  bool    `yaml:"checked,omitempty"`
	Children []*Node `yaml:"children,omitempty"`

	// List state.
	Items    []string `yaml:"-"`
	Selected int      `yaml:"-"`

	Bounds rl.Rectangle `yaml:"-"`

	style   ComputedStyle
	pressed bool
}

// NewNode creates a node of the given kind with optional class, id, and text.
// Used for panels built in code (dialog forms, notices); layout files produce
// nodes via YAML decoding.
func NewNode(kind Kind, class, id, text string) *Node {
	return &Node{Kind: kind, Class: class, ID: id, Text: text, Selected: -1}
}

// SetItems replaces a list node's items, clamping the selection to the new
// length; -1 when the list is empty.
func (n *Node) SetItems(items []string) {
	n.Items = items
	if n.Selected >= len(items) {
		n.Selected = len(items) - 1
	}
	if len(items) == 0 {
		n.Selected = -1
	}
}

// contains reports whether the point is inside the node's bounds.
func (n *Node) contains(p rl.Vector2) bool {
	return p.X >= n.Bounds.X && p.X < n.Bounds.X+n.Bounds.Width &&
		p.Y >= n.Bounds.Y && p.Y < n.Bounds.Y+n.Bounds.Height
}

// interactive reports whether the node reacts to mouse input.
func (n *Node) interactive() bool {
	switch n.Kind {
	case KindButton, KindField, KindCheckbox, KindList:
		return true
	}
	return false
}
