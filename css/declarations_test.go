package css_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/weft/css"
	"golang.org/x/net/html"
)

func TestParseDeclarations(t *testing.T) {
	decls, err := css.ParseDeclarations("color: red; font-size: 12pt !important")
	if err != nil {
		t.Fatalf("cannot parse declarations: %s", err.Error())
	}
	if len(decls) != 2 {
		t.Fatalf("expected 2 declarations, have %d", len(decls))
	}
	if decls[0].Property != "color" || decls[0].Value != "red" {
		t.Errorf("expected color:red, is %v", decls[0])
	}
	if decls[1].Property != "font-size" || !decls[1].Important {
		t.Errorf("expected font-size to be important, is %v", decls[1])
	}
}

func TestParseStylesheet(t *testing.T) {
	sheet, err := css.ParseStylesheet(`
		p, li { color: green }
		em    { font-style: italic; }
	`)
	if err != nil {
		t.Fatalf("cannot parse stylesheet: %s", err.Error())
	}
	if len(sheet.Rules) != 2 {
		t.Fatalf("expected 2 rules, have %d", len(sheet.Rules))
	}
	r := sheet.Rules[0]
	if len(r.Selectors) != 2 || r.Selectors[0] != "p" || r.Selectors[1] != "li" {
		t.Errorf("expected selectors [p li], is %v", r.Selectors)
	}
	if len(r.Declarations) != 1 || r.Declarations[0].Value != "green" {
		t.Errorf("expected a green color declaration, is %v", r.Declarations)
	}
}

func TestExtractStyleElements(t *testing.T) {
	input := `<html><head>
		<style></style>
		<style>b { font-weight: bold }</style>
	</head><body><b>T</b></body></html>`
	doc, err := html.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("cannot parse test document: %s", err.Error())
	}
	sheets := css.ExtractStyleElements(doc)
	if len(sheets) != 1 {
		t.Fatalf("expected 1 non-empty stylesheet, have %d", len(sheets))
	}
	if len(sheets[0].Rules) != 1 {
		t.Fatalf("expected 1 rule, have %d", len(sheets[0].Rules))
	}
	if sheets[0].Rules[0].Selectors[0] != "b" {
		t.Errorf("expected selector b, is %v", sheets[0].Rules[0].Selectors)
	}
}
