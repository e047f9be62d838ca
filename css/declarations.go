package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Declaration is a single CSS property declaration, e.g. "color: red".
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// Rule is a style rule with a list of selectors and the declarations
// applying to elements matched by one of the selectors.
type Rule struct {
	Selectors    []string
	Declarations []Declaration
}

// Stylesheet is a simple list of style rules.
type Stylesheet struct {
	Rules []Rule
}

// ParseDeclarations parses the contents of an inline style attribute,
// i.e. a sequence of declarations without any selector:
//
//	color: red; font-size: 12pt
//
// Parsing is done by the douceur package; we convert to our own
// declaration type at the boundary.
func ParseDeclarations(style string) ([]Declaration, error) {
	dd, err := parser.ParseDeclarations(style)
	if err != nil {
		return nil, err
	}
	decls := make([]Declaration, 0, len(dd))
	for _, d := range dd {
		decls = append(decls, Declaration{
			Property:  strings.ToLower(strings.TrimSpace(d.Property)),
			Value:     strings.TrimSpace(d.Value),
			Important: d.Important,
		})
	}
	return decls, nil
}

// ParseStylesheet parses the textual content of a stylesheet. Selectors
// are split from the rule's prelude at commas, but otherwise left
// uninterpreted. Rules without declarations are dropped.
func ParseStylesheet(source string) (Stylesheet, error) {
	var sheet Stylesheet
	parsed, err := parser.Parse(source)
	if err != nil {
		return sheet, err
	}
	for _, r := range parsed.Rules {
		if len(r.Declarations) == 0 {
			continue
		}
		rule := Rule{Selectors: splitSelectors(r.Prelude)}
		for _, d := range r.Declarations {
			rule.Declarations = append(rule.Declarations, Declaration{
				Property:  strings.ToLower(strings.TrimSpace(d.Property)),
				Value:     strings.TrimSpace(d.Value),
				Important: d.Important,
			})
		}
		sheet.Rules = append(sheet.Rules, rule)
	}
	return sheet, nil
}

func splitSelectors(prelude string) []string {
	var sels []string
	for _, s := range strings.Split(prelude, ",") {
		if s = strings.TrimSpace(s); s != "" {
			sels = append(sels, s)
		}
	}
	return sels
}

// ExtractStyleElements collects the stylesheets from all <style> elements
// of an HTML document. Style elements which fail to parse are traced and
// skipped.
func ExtractStyleElements(doc *html.Node) []Stylesheet {
	var sheets []Stylesheet
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Style {
			if source := textContent(n); source != "" {
				sheet, err := ParseStylesheet(source)
				if err != nil {
					tracer().Errorf("CSS parsing error: %s", err.Error())
				} else if len(sheet.Rules) > 0 {
					sheets = append(sheets, sheet)
				}
			}
			return
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	walk(doc)
	return sheets
}

func textContent(n *html.Node) string {
	var b strings.Builder
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.TextNode {
			b.WriteString(ch.Data)
		}
	}
	return b.String()
}
