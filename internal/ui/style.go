package ui

import (
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rule is a single stylesheet rule: one selector and raw property values.
type Rule struct {
	Selector string            // e.g. ".panel" or "#btn_add_step"
	Props    map[string]string // e.g. "background" -> "#333"
}

// Stylesheet is a list of rules; later rules override earlier ones.
type Stylesheet struct {
	Rules []Rule
}

// ComputedStyle holds resolved values used for drawing. LeftPct/TopPct are
// 0–100 for percentage positioning; -1 means Left/Top are pixels. Accent is
// used for checkbox marks, list selection, and the focused-field border.
type ComputedStyle struct {
	Background rl.Color
	Color      rl.Color
	Border     rl.Color
	Accent     rl.Color
	HasBorder  bool
	Width      int32
	Height     int32
	Left       int32
	Top        int32
	HasLeft    bool // stylesheet set left/x in pixels
	HasTop     bool // stylesheet set top/y in pixels
	LeftPct    int32 // -1 = not set
	TopPct     int32 // -1 = not set
	Padding    int32
}

// DefaultComputedStyle returns the base style: transparent background, white
// text, steel-blue accent, no border, zero size.
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{
		Background: rl.NewColor(0, 0, 0, 0),
		Color:      rl.White,
		Border:     rl.Black,
		Accent:     rl.NewColor(70, 130, 180, 255),
		LeftPct:    -1,
		TopPct:     -1,
		Padding:    4,
	}
}

// Resolve merges all rules matching the node (class and id, later rules win)
// into a ComputedStyle.
func (s *Stylesheet) Resolve(n *Node) ComputedStyle {
	merged := make(map[string]string)
	if s != nil {
		for _, rule := range s.Rules {
			sel := rule.Selector
			match := (sel[0] == '.' && n.Class == sel[1:]) ||
				(sel[0] == '#' && n.ID == sel[1:])
			if match {
				for k, v := range rule.Props {
					merged[k] = v
				}
			}
		}
	}
	return resolveProps(merged)
}

func resolveProps(props map[string]string) ComputedStyle {
	out := DefaultComputedStyle()
	for k, v := range props {
		v = strings.TrimSpace(v)
		switch k {
		case "background":
			if c, ok := ParseHexColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseHexColor(v); ok {
				out.Color = c
			}
		case "border":
			if c, ok := ParseHexColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "accent":
			if c, ok := ParseHexColor(v); ok {
				out.Accent = c
			}
		case "width":
			if n, ok := ParsePx(v); ok {
				out.Width = n
			}
		case "height":
			if n, ok := ParsePx(v); ok {
				out.Height = n
			}
		case "left", "x":
			if pct, ok := ParsePct(v); ok {
				out.LeftPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Left = n
				out.HasLeft = true
			}
		case "top", "y":
			if pct, ok := ParsePct(v); ok {
				out.TopPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Top = n
				out.HasTop = true
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		}
	}
	return out
}

// ParseHexColor parses #RGB, #RRGGBB, or #RRGGBBAA into rl.Color. Without an
// alpha component the color is opaque.
func ParseHexColor(s string) (rl.Color, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return rl.Black, false
	}
	hex := s[1:]
	var r, g, b uint8
	a := uint8(255)
	switch len(hex) {
	case 3:
		r = hexByte(hex[0]) * 17
		g = hexByte(hex[1]) * 17
		b = hexByte(hex[2]) * 17
	case 8:
		a = hexByte(hex[6])<<4 + hexByte(hex[7])
		fallthrough
	case 6:
		r = hexByte(hex[0])<<4 + hexByte(hex[1])
		g = hexByte(hex[2])<<4 + hexByte(hex[3])
		b = hexByte(hex[4])<<4 + hexByte(hex[5])
	default:
		return rl.Black, false
	}
	return rl.NewColor(r, g, b, a), true
}

func hexByte(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// ParsePx parses a number with optional "px" suffix. Unitless is pixels.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParsePct parses "N%" into 0–100.
func ParsePct(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[len(s)-1] != '%' {
		return 0, false
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}
