// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/theme.go
// Summary: TOML themes with hex colours resolved to tcell colours.
// Usage: Widgets call Theme.Style with their state and semantic layer.

package theme

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// File is the on-disk shape of a theme.
type File struct {
	Name        string         `toml:"name"`
	Mode        string         `toml:"mode"`
	Margin      int            `toml:"margin"`
	Spacing     int            `toml:"spacing"`
	BorderWidth int            `toml:"border_width"`
	IconSize    int            `toml:"icon_size"`
	Colors      map[string]any `toml:"colors"`
}

// Theme is a parsed theme, optionally scaled for a pixel density.
type Theme struct {
	Name        string
	Dark        bool
	Margin      int
	Spacing     int
	BorderWidth int
	IconSize    int

	colors map[string]tcell.Color
	fill   []tcell.Color
	border []tcell.Color
}

// Parse decodes a TOML theme.
func Parse(data []byte) (*Theme, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("theme: decode: %w", err)
	}
	if f.Name == "" {
		return nil, fmt.Errorf("theme: missing name")
	}
	t := &Theme{
		Name:        f.Name,
		Dark:        f.Mode != "light",
		Margin:      f.Margin,
		Spacing:     f.Spacing,
		BorderWidth: f.BorderWidth,
		IconSize:    f.IconSize,
		colors:      make(map[string]tcell.Color),
	}
	for key, raw := range f.Colors {
		switch v := raw.(type) {
		case string:
			c, err := ParseColor(v)
			if err != nil {
				return nil, fmt.Errorf("theme %s: colors.%s: %w", f.Name, key, err)
			}
			t.colors[key] = c
		case []any:
			ladder, err := parseLadder(v)
			if err != nil {
				return nil, fmt.Errorf("theme %s: colors.%s: %w", f.Name, key, err)
			}
			switch key {
			case "fill":
				t.fill = ladder
			case "border":
				t.border = ladder
			}
		default:
			return nil, fmt.Errorf("theme %s: colors.%s: unsupported value %T", f.Name, key, raw)
		}
	}
	return t, nil
}

func parseLadder(values []any) ([]tcell.Color, error) {
	out := make([]tcell.Color, 0, len(values))
	for _, raw := range values {
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected colour string, got %T", raw)
		}
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// ParseColor parses "#rrggbb" (or "#rgb") into a true colour.
func ParseColor(s string) (tcell.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		if len(s) == 4 && s[0] == '#' {
			c, err = colorful.Hex("#" + string([]byte{s[1], s[1], s[2], s[2], s[3], s[3]}))
		}
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("bad colour %q: %w", s, err)
		}
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}

// GetColor returns a named colour or def when the theme does not define it.
func (t *Theme) GetColor(key string, def tcell.Color) tcell.Color {
	if c, ok := t.colors[key]; ok {
		return c
	}
	return def
}

// Fill returns the fill colour for a semantic layer. The ladder repeats.
func (t *Theme) Fill(layer int) tcell.Color {
	if len(t.fill) == 0 {
		return t.GetColor("background", tcell.ColorDefault)
	}
	return t.fill[layer%len(t.fill)]
}

// Border returns the border colour for a semantic layer.
func (t *Theme) Border(layer int) tcell.Color {
	if len(t.border) == 0 {
		return t.GetColor("foreground", tcell.ColorDefault)
	}
	return t.border[layer%len(t.border)]
}

// Transform returns a copy of the theme with sizes scaled by the pixel
// density. Non-zero sizes never scale below one cell.
func (t *Theme) Transform(pixelDensity float32) *Theme {
	if pixelDensity <= 0 {
		pixelDensity = 1
	}
	out := *t
	scale := func(v int) int {
		if v == 0 {
			return 0
		}
		return max(1, int(math.Round(float64(v)*float64(pixelDensity))))
	}
	out.Margin = scale(t.Margin)
	out.Spacing = scale(t.Spacing)
	out.BorderWidth = scale(t.BorderWidth)
	out.IconSize = scale(t.IconSize)
	return &out
}
