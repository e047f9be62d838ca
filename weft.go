/*
Package weft converts HTML markup into a styled render tree.

Status

Early draft—API may change frequently. Please stay patient.

Overview

weft reads HTML and produces a tree of render nodes: blocks, list items,
table parts, text runs, breaks, dividers and images (package render).
Inline markup does not survive the conversion; its styling is resolved
onto the text runs it covers. Clients hand the tree to a layouter, walk
it with package tree, or dump it with package renderdbg.

	nodes, err := weft.ConvertString("<p>Hello <b>world</b></p>")

Conversion is configured with options. Styling starts from a root text
style plus a set of typed style values (package style); a theme provides
the colors and font families for links, marks and monospaced text.

	nodes, err := weft.Convert(input,
	    weft.WithTextStyle(style.TextStyle{Size: css.JustDimen(10 * dimen.PT)}),
	    weft.WithScale(1.2),
	    weft.WithTagStyles("blockquote", "font-style: italic"),
	)

Embedded stylesheets of the document are honored for rules with plain tag
name selectors. Selector matching beyond that is out of scope, as is
layout: the render tree carries styled content plus box spacing, nothing
is positioned.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package weft

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/weft/css"
	"github.com/npillmayer/weft/dom"
	"github.com/npillmayer/weft/render"
	"github.com/npillmayer/weft/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer will return a tracer. We are tracing to 'weft'.
func tracer() tracing.Trace {
	return tracing.Select("weft")
}

type config struct {
	text      style.TextStyle
	values    style.ValueSet
	theme     *style.Theme
	tagRules  dom.TagRules
	docStyles bool
}

func defaults() *config {
	return &config{
		text:      style.TextStyle{Size: css.JustDimen(12 * dimen.PT)},
		tagRules:  make(dom.TagRules),
		docStyles: true,
	}
}

// Option configures a conversion. Options are applied in order, a later
// option overrides an earlier one.
type Option func(*config)

// WithTextStyle sets the root text style of the document. It replaces the
// default of a plain 12pt style.
func WithTextStyle(text style.TextStyle) Option {
	return func(cfg *config) {
		cfg.text = text
	}
}

// WithScale scales all absolute font sizes of the document, the root size
// as well as sizes from stylesheets. 1.0 is neutral.
func WithScale(factor float64) Option {
	return func(cfg *config) {
		cfg.values = cfg.values.With(style.ScaleFactor(factor))
	}
}

// WithDirection sets the document's base text direction.
func WithDirection(dir style.Direction) Option {
	return func(cfg *config) {
		cfg.values = cfg.values.With(dir)
	}
}

// WithLeading sets the document's line height as a multiplier of the font
// size.
func WithLeading(leading float64) Option {
	return func(cfg *config) {
		cfg.values = cfg.values.With(style.Leading(leading))
	}
}

// WithWhiteSpace sets the document's whitespace policy. The default is
// style.WhiteSpaceNormal, i.e., collapsing.
func WithWhiteSpace(ws style.WhiteSpace) Option {
	return func(cfg *config) {
		cfg.values = cfg.values.With(ws)
	}
}

// WithTheme sets the theme for styling that is not carried by the markup:
// link and mark colors, monospace font families.
func WithTheme(theme *style.Theme) Option {
	return func(cfg *config) {
		cfg.theme = theme
	}
}

// WithValues adds typed style values to the document root. Client-defined
// values (style.KindUser and up) ride along unharmed and may be read back
// from any snapshot in the resulting tree.
func WithValues(values ...style.Value) Option {
	return func(cfg *config) {
		for _, v := range values {
			cfg.values = cfg.values.With(v)
		}
	}
}

// WithTagStyles declares CSS for every element with the given tag, as if
// from a stylesheet rule. Declarations use the usual notation:
//
//	weft.WithTagStyles("h2", "color: navy; margin-top: 2em")
//
// Unknown tags and malformed declarations are traced and ignored.
func WithTagStyles(tag string, declarations string) Option {
	return func(cfg *config) {
		a := atom.Lookup([]byte(strings.ToLower(strings.TrimSpace(tag))))
		if a == 0 {
			tracer().Errorf("unknown tag %q in tag styles", tag)
			return
		}
		decls, err := css.ParseDeclarations(declarations)
		if err != nil {
			tracer().Errorf("tag styles for %s: %v", tag, err)
			return
		}
		cfg.tagRules.Add(a, decls...)
	}
}

// WithoutDocumentStyles ignores the document's embedded stylesheets.
// Styling then comes from user agent defaults, tag styles given by option,
// and style attributes only.
func WithoutDocumentStyles() Option {
	return func(cfg *config) {
		cfg.docStyles = false
	}
}

// Convert reads HTML markup and produces a render tree. The returned node
// is the document node; it carries the root styling snapshot.
//
// Errors from the reader abort the conversion. Malformed markup does not:
// HTML parsing is error-correcting, and styling defects are traced and
// repaired, following the principle that broken input yields a usable tree
// rather than no tree.
func Convert(input io.Reader, opts ...Option) (*render.Node, error) {
	cfg := defaults()
	for _, opt := range opts {
		opt(cfg)
	}
	doc, err := html.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("weft: cannot parse HTML input: %w", err)
	}
	body := findElement(doc, atom.Body)
	if body == nil {
		return nil, fmt.Errorf("weft: HTML input has no body")
	}
	rules := cfg.tagRules
	if cfg.docStyles {
		if sheets := css.ExtractStyleElements(doc); len(sheets) > 0 {
			// document styles go last, they override option-given tag styles
			for a, decls := range dom.RulesFromStylesheets(sheets) {
				rules.Add(a, decls...)
			}
		}
	}
	anchor := style.NewBuilder(style.Root(cfg.values, cfg.text))
	ctx := style.Context{Theme: cfg.theme}
	return dom.BuildRenderTree(body, anchor, ctx, rules), nil
}

// ConvertString converts HTML markup given as a string. See Convert.
func ConvertString(input string, opts ...Option) (*render.Node, error) {
	return Convert(strings.NewReader(input), opts...)
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if found := findElement(ch, a); found != nil {
			return found
		}
	}
	return nil
}
