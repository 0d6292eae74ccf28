// Package fonts locates an optional UI font under assets/fonts. When no font
// file is present, widgets fall back to raylib's default font.
package fonts

import (
	"os"
	"path/filepath"
	"strings"
)

// Exts are the font file types considered.
var Exts = []string{".ttf", ".otf"}

// baseDirs are tried in order so a font is found whether the tool runs from
// the repo root or from cmd/buildstudio.
var baseDirs = []string{"assets/fonts", "../../assets/fonts"}

// Find returns the path of the first font file under the asset directories,
// or "" when none exists.
func Find() string {
	for _, dir := range baseDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			ext := strings.ToLower(filepath.Ext(entry.Name()))
			for _, e := range Exts {
				if ext == e {
					return filepath.Join(dir, entry.Name())
				}
			}
		}
	}
	return ""
}
