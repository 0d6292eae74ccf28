package ui

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Layout is the decoded form of a window-layout file: window metadata plus the
// widget tree. Layout files describe WHICH widgets exist and how they nest;
// position and size come from the stylesheet.
type Layout struct {
	Window WindowSpec `yaml:"window"`
	Nodes  []*Node    `yaml:"nodes"`
}

// WindowSpec is the window block of a layout file.
type WindowSpec struct {
	Title  string `yaml:"title"`
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
}

// ParseLayout decodes a layout document. Unknown YAML fields are an error so a
// typo in a layout file fails at startup rather than silently dropping a
// widget.
func ParseLayout(data []byte) (*Layout, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var l Layout
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	if len(l.Nodes) == 0 {
		return nil, fmt.Errorf("layout: no nodes")
	}
	if err := validateNodes(l.Nodes, map[string]bool{}); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	return &l, nil
}

// LoadLayout reads and decodes a layout file from the first path that exists.
// Layout files live under assets/ui/; candidates allow running from the repo
// root or from cmd/buildstudio.
func LoadLayout(paths ...string) (*Layout, error) {
	var firstErr error
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		l, err := ParseLayout(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		return l, nil
	}
	return nil, fmt.Errorf("no layout file found: %w", firstErr)
}

func validateNodes(nodes []*Node, ids map[string]bool) error {
	for _, n := range nodes {
		switch n.Kind {
		case KindPanel, KindLabel, KindButton, KindField, KindCheckbox, KindList, KindViewport:
		case "":
			return fmt.Errorf("node %q: missing kind", n.ID)
		default:
			return fmt.Errorf("node %q: unknown kind %q", n.ID, n.Kind)
		}
		if n.ID != "" {
			if ids[n.ID] {
				return fmt.Errorf("duplicate node id %q", n.ID)
			}
			ids[n.ID] = true
		}
		if err := validateNodes(n.Children, ids); err != nil {
			return err
		}
	}
	return nil
}
