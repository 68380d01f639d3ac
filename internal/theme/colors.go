package theme

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// HexToColor converts a hex color string (#RRGGBB or #RGB) to tcell.Color
func HexToColor(hexColor string) tcell.Color {
	c, ok := parseHex(hexColor)
	if !ok {
		return tcell.ColorDefault
	}
	return toTcell(c)
}

// Blend mixes two hex colors in Lab space; t=0 gives from, t=1 gives to
func Blend(from, to string, t float64) tcell.Color {
	a, ok1 := parseHex(from)
	b, ok2 := parseHex(to)
	if !ok1 || !ok2 {
		return tcell.ColorDefault
	}
	return toTcell(a.BlendLab(b, t).Clamped())
}

// ParseColorString handles #RRGGBB, #RGB and rgb(r,g,b)
func ParseColorString(colorStr string) tcell.Color {
	colorStr = strings.TrimSpace(colorStr)

	if strings.HasPrefix(colorStr, "#") {
		return HexToColor(colorStr)
	}

	inner, ok := strings.CutPrefix(colorStr, "rgb(")
	if !ok || !strings.HasSuffix(inner, ")") {
		return tcell.ColorDefault
	}

	parts := strings.Split(strings.TrimSuffix(inner, ")"), ",")
	if len(parts) != 3 {
		return tcell.ColorDefault
	}

	var rgb [3]int32
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return tcell.ColorDefault
		}
		rgb[i] = int32(v)
	}
	return tcell.NewRGBColor(rgb[0], rgb[1], rgb[2])
}

func parseHex(hexColor string) (colorful.Color, bool) {
	hexColor = strings.TrimPrefix(strings.TrimSpace(hexColor), "#")

	// Handle short form (#RGB)
	if len(hexColor) == 3 {
		hexColor = string([]byte{hexColor[0], hexColor[0], hexColor[1], hexColor[1], hexColor[2], hexColor[2]})
	}
	if len(hexColor) != 6 {
		return colorful.Color{}, false
	}

	c, err := colorful.Hex("#" + hexColor)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
