package css_test

import (
	"testing"

	"github.com/npillmayer/weft/css"
)

func TestDisplayModeFlags(t *testing.T) {
	block, err := css.ParseDisplay("block")
	if err != nil {
		t.Fatalf("cannot parse display mode: %s", err.Error())
	}
	if block.Outer() != css.BlockMode {
		t.Errorf("expected outer display of block to be BlockMode, is %s", block.Outer())
	}
	if block.Inner() != css.InnerBlockMode {
		t.Errorf("expected inner display of block to be InnerBlockMode, is %s", block.Inner())
	}
	if !block.IsBlockLevel() {
		t.Errorf("expected block to be block-level, isn't")
	}

	inline, _ := css.ParseDisplay("inline")
	if inline.IsBlockLevel() {
		t.Errorf("expected inline to not be block-level, is")
	}
	if !inline.Contains(css.InlineMode) {
		t.Errorf("expected inline display to contain InlineMode, doesn't")
	}

	li, _ := css.ParseDisplay("list-item")
	if !li.IsBlockLevel() {
		t.Errorf("expected list-item to be block-level, isn't")
	}
}

func TestDisplayModeParseErrors(t *testing.T) {
	mode, err := css.ParseDisplay("run-in")
	if err == nil {
		t.Errorf("expected display mode run-in to be an error, isn't")
	}
	if mode != css.BlockMode {
		t.Errorf("expected unknown display mode to fall back to block, is %s", mode)
	}
	if mode, _ := css.ParseDisplay(""); mode != css.NoMode {
		t.Errorf("expected empty display mode to be NoMode, is %s", mode)
	}
}

func TestDisplayModeString(t *testing.T) {
	if s := css.DisplayNone.String(); s != "none" {
		t.Errorf("expected display mode none to print as none, is %q", s)
	}
	mode, _ := css.ParseDisplay("inline-block")
	if s := mode.String(); s != "inline inner-block" {
		t.Errorf("expected inline-block to print as 'inline inner-block', is %q", s)
	}
}
