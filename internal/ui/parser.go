package ui

import (
	"fmt"
	"strings"
)

// ParseCSS parses a primitive stylesheet: selectors ".class" or "#id" with
// blocks of "key: value;" declarations. No combinators, no @rules. Later rules
// override earlier ones for the same selector. An unterminated block is an
// error so a broken stylesheet fails at startup instead of styling nothing.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	rest := stripComments(content)
	for {
		rest = strings.TrimSpace(rest)
		if rest == "" {
			return sheet, nil
		}
		open := strings.IndexByte(rest, '{')
		if open == -1 {
			return nil, fmt.Errorf("stylesheet: stray text %q outside a rule", truncate(rest))
		}
		selector := strings.TrimSpace(rest[:open])
		close := strings.IndexByte(rest[open:], '}')
		if close == -1 {
			return nil, fmt.Errorf("stylesheet: unterminated block for %q", selector)
		}
		close += open
		if validSelector(selector) {
			sheet.Rules = append(sheet.Rules, Rule{
				Selector: selector,
				Props:    parseDeclarations(rest[open+1 : close]),
			})
		}
		rest = rest[close+1:]
	}
}

// validSelector accepts ".class" and "#id"; anything else is skipped so a
// stylesheet can carry selectors this renderer does not know about.
func validSelector(s string) bool {
	return len(s) >= 2 && (s[0] == '.' || s[0] == '#')
}

func truncate(s string) string {
	if len(s) > 40 {
		return s[:40] + "..."
	}
	return s
}

func stripComments(s string) string {
	var b strings.Builder
	for {
		open := strings.Index(s, "/*")
		if open == -1 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:open])
		end := strings.Index(s[open+2:], "*/")
		if end == -1 {
			return b.String()
		}
		s = s[open+2+end+2:]
	}
}

func parseDeclarations(body string) map[string]string {
	props := make(map[string]string)
	for _, part := range strings.Split(body, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		colon := strings.IndexByte(part, ':')
		if colon == -1 {
			continue
		}
		k := strings.TrimSpace(part[:colon])
		v := strings.TrimSpace(part[colon+1:])
		if k != "" {
			props[k] = v
		}
	}
	return props
}
