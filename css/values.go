package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// namedColors is the CSS basic palette plus the extended names that show up
// in real-world documents all the time.
var namedColors = map[string]color.RGBA{
	"black":   {0x00, 0x00, 0x00, 0xff},
	"silver":  {0xc0, 0xc0, 0xc0, 0xff},
	"gray":    {0x80, 0x80, 0x80, 0xff},
	"grey":    {0x80, 0x80, 0x80, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"maroon":  {0x80, 0x00, 0x00, 0xff},
	"red":     {0xff, 0x00, 0x00, 0xff},
	"purple":  {0x80, 0x00, 0x80, 0xff},
	"fuchsia": {0xff, 0x00, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"green":   {0x00, 0x80, 0x00, 0xff},
	"lime":    {0x00, 0xff, 0x00, 0xff},
	"olive":   {0x80, 0x80, 0x00, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"navy":    {0x00, 0x00, 0x80, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"teal":    {0x00, 0x80, 0x80, 0xff},
	"aqua":    {0x00, 0xff, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"orange":  {0xff, 0xa5, 0x00, 0xff},
	"brown":   {0xa5, 0x2a, 0x2a, 0xff},
	"pink":    {0xff, 0xc0, 0xcb, 0xff},
	"gold":    {0xff, 0xd7, 0x00, 0xff},
	"indigo":  {0x4b, 0x00, 0x82, 0xff},
	"violet":  {0xee, 0x82, 0xee, 0xff},
	"crimson": {0xdc, 0x14, 0x3c, 0xff},
	"beige":   {0xf5, 0xf5, 0xdc, 0xff},
	"ivory":   {0xff, 0xff, 0xf0, 0xff},
	"khaki":   {0xf0, 0xe6, 0x8c, 0xff},
	"salmon":  {0xfa, 0x80, 0x72, 0xff},
	"coral":   {0xff, 0x7f, 0x50, 0xff},
	"tomato":  {0xff, 0x63, 0x47, 0xff},
}

// ParseColor parses a CSS color literal: a named color, the #rgb / #rrggbb /
// #rrggbbaa hex forms, or the rgb()/rgba() functional form.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return nil, fmt.Errorf("empty color")
	case s == "transparent":
		return color.Transparent, nil
	case s[0] == '#':
		return parseHexColor(s)
	case strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba("):
		return parseRGBColor(s)
	}
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown color %q", s)
}

func parseHexColor(s string) (color.Color, error) {
	hex := s[1:]
	if len(hex) == 3 { // #rgb => #rrggbb
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 && len(hex) != 8 {
		return nil, fmt.Errorf("malformed hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed hex color %q", s)
	}
	c := color.RGBA{A: 0xff}
	if len(hex) == 8 {
		c.A = uint8(v & 0xff)
		v >>= 8
	}
	c.R = uint8(v >> 16)
	c.G = uint8(v >> 8 & 0xff)
	c.B = uint8(v & 0xff)
	return c, nil
}

func parseRGBColor(s string) (color.Color, error) {
	open := strings.IndexByte(s, '(')
	closing := strings.IndexByte(s, ')')
	if open < 0 || closing < open {
		return nil, fmt.Errorf("malformed color %q", s)
	}
	args := strings.Split(s[open+1:closing], ",")
	if len(args) != 3 && len(args) != 4 {
		return nil, fmt.Errorf("expected 3 or 4 color channels in %q", s)
	}
	c := color.RGBA{A: 0xff}
	for i, arg := range args[:3] {
		ch, err := parseColorChannel(arg)
		if err != nil {
			return nil, fmt.Errorf("color %q: %v", s, err)
		}
		switch i {
		case 0:
			c.R = ch
		case 1:
			c.G = ch
		case 2:
			c.B = ch
		}
	}
	if len(args) == 4 { // alpha is a fraction 0…1
		a, err := strconv.ParseFloat(strings.TrimSpace(args[3]), 64)
		if err != nil {
			return nil, fmt.Errorf("color %q: %v", s, err)
		}
		c.A = uint8(clamp255(math.Round(a * 255)))
	}
	return c, nil
}

// parseColorChannel accepts 0…255 numbers and percentages.
func parseColorChannel(arg string) (uint8, error) {
	arg = strings.TrimSpace(arg)
	if strings.HasSuffix(arg, "%") {
		p, err := strconv.ParseFloat(strings.TrimSuffix(arg, "%"), 64)
		if err != nil {
			return 0, err
		}
		return uint8(clamp255(math.Round(p / 100 * 255))), nil
	}
	n, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, err
	}
	return uint8(clamp255(math.Round(n))), nil
}

func clamp255(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return f
}
