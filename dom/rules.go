package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/weft/css"
	"golang.org/x/net/html/atom"
)

// TagRules maps HTML tags onto CSS declarations applying to every element
// with that tag. Declarations are kept in source order; for clashing
// properties the one declared later wins.
type TagRules map[atom.Atom][]css.Declaration

// Add appends declarations for a tag.
func (r TagRules) Add(a atom.Atom, decls ...css.Declaration) {
	if a == 0 || len(decls) == 0 {
		return
	}
	r[a] = append(r[a], decls...)
}

// RulesFromStylesheets collects the rules with plain tag name selectors
// from parsed stylesheets. Selector matching beyond tag names (classes,
// ids, combinators) is not supported; such selectors are traced and their
// rules skipped. Sheets contribute in the given order, so a later sheet
// overrides an earlier one.
func RulesFromStylesheets(sheets []css.Stylesheet) TagRules {
	rules := make(TagRules)
	for _, sheet := range sheets {
		for _, rule := range sheet.Rules {
			for _, sel := range rule.Selectors {
				name := strings.ToLower(strings.TrimSpace(sel))
				a := atom.Lookup([]byte(name))
				if a == 0 {
					tracer().Infof("selector %q not supported, rule skipped", sel)
					continue
				}
				rules.Add(a, rule.Declarations...)
			}
		}
	}
	return rules
}
