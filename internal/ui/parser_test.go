package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSS(t *testing.T) {
	sheet, err := ParseCSS(`
/* main panels */
.panel {
	background: #333;
	border: #555;
}
#btn_add_step { width: 120px; height: 32; }
.panel { padding: 8; }
`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 3)
	assert.Equal(t, ".panel", sheet.Rules[0].Selector)
	assert.Equal(t, "#333", sheet.Rules[0].Props["background"])
	assert.Equal(t, "120px", sheet.Rules[1].Props["width"])
}

func TestParseCSSUnterminatedBlock(t *testing.T) {
	_, err := ParseCSS(".panel { background: #333;")
	assert.Error(t, err)
}

func TestParseCSSSkipsUnknownSelectors(t *testing.T) {
	sheet, err := ParseCSS(`
body { margin: 0; }
.panel { padding: 2; }
`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)
	assert.Equal(t, ".panel", sheet.Rules[0].Selector)
}

func TestResolveLaterRulesWin(t *testing.T) {
	sheet, err := ParseCSS(`
.panel { background: #111; width: 100; }
#main { background: #222; }
`)
	require.NoError(t, err)
	n := NewNode(KindPanel, "panel", "main", "")
	st := sheet.Resolve(n)
	assert.Equal(t, rl.NewColor(0x22, 0x22, 0x22, 255), st.Background)
	assert.Equal(t, int32(100), st.Width)
}

func TestParseHexColor(t *testing.T) {
	c, ok := ParseHexColor("#fff")
	require.True(t, ok)
	assert.Equal(t, rl.NewColor(255, 255, 255, 255), c)

	c, ok = ParseHexColor("#1a2b3c")
	require.True(t, ok)
	assert.Equal(t, rl.NewColor(0x1a, 0x2b, 0x3c, 255), c)

	c, ok = ParseHexColor("#00000080")
	require.True(t, ok)
	assert.Equal(t, rl.NewColor(0, 0, 0, 0x80), c)

	_, ok = ParseHexColor("red")
	assert.False(t, ok)
	_, ok = ParseHexColor("#12345")
	assert.False(t, ok)
}

func TestParsePxAndPct(t *testing.T) {
	n, ok := ParsePx("24px")
	require.True(t, ok)
	assert.Equal(t, int32(24), n)

	n, ok = ParsePx(" 16 ")
	require.True(t, ok)
	assert.Equal(t, int32(16), n)

	_, ok = ParsePx("wide")
	assert.False(t, ok)

	p, ok := ParsePct("50%")
	require.True(t, ok)
	assert.Equal(t, int32(50), p)

	_, ok = ParsePct("150%")
	assert.False(t, ok)
	_, ok = ParsePct("50")
	assert.False(t, ok)
}
