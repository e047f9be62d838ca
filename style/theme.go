package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "image/color"

// Theme carries ambient styling defaults which are resolved at build time
// only, not baked into contribution queues. Context-dependent contributions
// (anchors, code fragments, marked text) read the theme of the Context they
// are built with, so queues never pin theme values at parse time.
type Theme struct {
	LinkColor    color.Color // anchor text color
	MarkColor    color.Color // background tint for marked/highlighted text
	MonoFamilies []string    // font families for code and preformatted text
}

// DefaultTheme returns the classic user agent values: link blue, highlight
// yellow, Courier-style monospace.
func DefaultTheme() *Theme {
	return &Theme{
		LinkColor:    color.RGBA{R: 0x00, G: 0x00, B: 0xee, A: 0xff},
		MarkColor:    color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff},
		MonoFamilies: []string{"Courier New", "Courier", "monospace"},
	}
}

// Context is the ambient context style resolution happens in. It is handed
// to Builder.Build and forwarded to context-dependent contributions.
type Context struct {
	Theme *Theme
}

// Styling returns the context's theme, falling back to the default theme
// for a nil one.
func (ctx Context) Styling() *Theme {
	if ctx.Theme == nil {
		return DefaultTheme()
	}
	return ctx.Theme
}
