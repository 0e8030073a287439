package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/brandpipe/core"
)

func TestIsCDNStylesheet(t *testing.T) {
	t.Parallel()

	assert.True(t, IsCDNStylesheet("https://cdn.jsdelivr.net/npm/bootstrap/dist/css/bootstrap.min.css"))
	assert.True(t, IsCDNStylesheet("https://fonts.googleapis.com/css2?family=Inter"))
	assert.False(t, IsCDNStylesheet("https://example.com/assets/main.css"))
}

func TestMineStylesheetVariablesComeFirst(t *testing.T) {
	t.Parallel()

	css := `
		.footer { color: #00FF00; }
		:root { --brand-primary: #FF0000; --brand-accent: #00c; }
		.btn { background: rgb(74, 144, 217); }
	`
	colors, _ := MineStylesheet(css)
	require.GreaterOrEqual(t, len(colors), 4)

	// Custom-property colors lead the list with root weight even when
	// they appear later in the sheet.
	assert.Equal(t, core.ColorCandidate{Hex: "#FF0000", Weight: core.WeightRoot}, colors[0])
	assert.Equal(t, core.ColorCandidate{Hex: "#0000CC", Weight: core.WeightRoot}, colors[1])
	assert.Equal(t, core.ColorCandidate{Hex: "#00FF00", Weight: core.WeightBody}, colors[2])
	assert.Contains(t, colors, core.ColorCandidate{Hex: "#4A90D9", Weight: core.WeightBody})
}

func TestMineStylesheetFormats(t *testing.T) {
	t.Parallel()

	css := `a { color: #fff; border-color: hsl(210, 50%, 50%); }`
	colors, _ := MineStylesheet(css)

	hexes := make([]string, len(colors))
	for i, c := range colors {
		hexes[i] = c.Hex
	}
	assert.Contains(t, hexes, "#FFFFFF")
	assert.Contains(t, hexes, "#4080BF")
}

func TestMineStylesheetDeduplicates(t *testing.T) {
	t.Parallel()

	css := `a { color: #FF0000; } b { color: #ff0000; } c { color: rgb(255, 0, 0); }`
	colors, _ := MineStylesheet(css)
	assert.Len(t, colors, 1)
}

func TestMineStylesheetFonts(t *testing.T) {
	t.Parallel()

	css := `body { font-family: "Source Serif Pro", Georgia, serif; }`
	_, fonts := MineStylesheet(css)
	require.Len(t, fonts, 1)
	assert.Equal(t, "Source Serif Pro", fonts[0].Family)
	assert.Equal(t, core.FontSourceCSS, fonts[0].Source)
}

func TestPageColorsHeroWeight(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<header><a style="color: #112233">Home</a></header>
		<div class="hero-banner"><span style="background: #445566">x</span></div>
		<p style="color: #778899">body text</p>
	</body></html>`

	colors := PageColors(parseDoc(t, html))
	byHex := make(map[string]int)
	for _, c := range colors {
		byHex[c.Hex] = c.Weight
	}
	assert.Equal(t, core.WeightHero, byHex["#112233"])
	assert.Equal(t, core.WeightHero, byHex["#445566"])
	assert.Equal(t, core.WeightBody, byHex["#778899"])
}

func TestPromoteRootVars(t *testing.T) {
	t.Parallel()

	in := []core.ColorCandidate{
		{Hex: "#111111", Weight: core.WeightBody},
		{Hex: "#222222", Weight: core.WeightRoot},
		{Hex: "#333333", Weight: core.WeightHero},
		{Hex: "#444444", Weight: core.WeightRoot},
	}
	out := PromoteRootVars(in)
	require.Len(t, out, 4)
	assert.Equal(t, "#222222", out[0].Hex)
	assert.Equal(t, "#444444", out[1].Hex)
	assert.Equal(t, "#111111", out[2].Hex)
	assert.Equal(t, "#333333", out[3].Hex)
}
