package weft_test

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/weft"
	"github.com/npillmayer/weft/render"
	"github.com/npillmayer/weft/render/renderdbg"
	"github.com/npillmayer/weft/style"
)

const scenario = `<html><head>
<style>p { color: navy }</style>
</head><body>
<h1>Title</h1>
<p>salutation <b>world</b></p>
</body></html>`

func TestConvertScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft")
	defer teardown()
	//
	nodes, err := weft.ConvertString(scenario)
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if nodes.Kind() != render.DocumentNode {
		t.Fatalf("expected a document node, is %v", nodes)
	}
	blocks := nodes.Children()
	if len(blocks) != 2 {
		t.Fatalf("expected heading and paragraph, have %d blocks", len(blocks))
	}
	title := blocks[0].Child(0)
	if title.Text() != "Title" || title.TextStyle().Weight != style.WeightBold {
		t.Errorf("expected a bold 'Title' heading, is %v", title)
	}
	if title.TextStyle().Size.DU() != 24*dimen.PT {
		t.Errorf("expected the heading at 24pt, is %v", title.TextStyle().Size)
	}
	navy := color.RGBA{0, 0, 0x80, 0xff}
	runs := blocks[1].Children()
	if len(runs) != 2 {
		t.Fatalf("expected 2 text runs in the paragraph, have %d", len(runs))
	}
	if runs[0].TextStyle().Color != navy {
		t.Errorf("expected the stylesheet to color the paragraph navy, is %v", runs[0].TextStyle().Color)
	}
	if runs[1].TextStyle().Color != navy || runs[1].TextStyle().Weight != style.WeightBold {
		t.Errorf("expected 'world' bold and navy, is %v", runs[1].TextStyle())
	}
}

func TestConvertScale(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft")
	defer teardown()
	//
	nodes, err := weft.ConvertString(scenario, weft.WithScale(1.5))
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if nodes.TextStyle().Size.DU() != 18*dimen.PT {
		t.Errorf("expected the root size scaled to 18pt, is %v", nodes.TextStyle().Size)
	}
	title := nodes.Child(0).Child(0)
	if title.TextStyle().Size.DU() != 36*dimen.PT {
		t.Errorf("expected the heading scaled to 36pt, is %v", title.TextStyle().Size)
	}
}

func TestConvertWithoutDocumentStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft")
	defer teardown()
	//
	nodes, err := weft.ConvertString(scenario, weft.WithoutDocumentStyles())
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	run := nodes.Child(1).Child(0)
	if run.TextStyle().Color != nil {
		t.Errorf("expected document styles to be ignored, paragraph is %v", run.TextStyle().Color)
	}
}

func TestConvertTagStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft")
	defer teardown()
	//
	teal := color.RGBA{0, 0x80, 0x80, 0xff}
	nodes, err := weft.ConvertString("<p>x</p>", weft.WithTagStyles("p", "color: teal"))
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if nodes.Child(0).Child(0).TextStyle().Color != teal {
		t.Errorf("expected teal paragraph text, is %v", nodes.Child(0).Child(0).TextStyle().Color)
	}
	// an embedded stylesheet overrides tag styles given by option
	nodes, err = weft.ConvertString(scenario, weft.WithTagStyles("p", "color: teal"))
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	navy := color.RGBA{0, 0, 0x80, 0xff}
	if nodes.Child(1).Child(0).TextStyle().Color != navy {
		t.Errorf("expected the document stylesheet to win, is %v", nodes.Child(1).Child(0).TextStyle().Color)
	}
}

// docClass is a client-defined style value carried through conversion.
type docClass uint8

func (docClass) StyleKind() style.Kind { return style.KindUser }

func TestConvertUserValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft")
	defer teardown()
	//
	nodes, err := weft.ConvertString("<p>x</p>", weft.WithValues(docClass(7)))
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	run := nodes.Child(0).Child(0)
	class, ok := style.ValueFrom[docClass](run.Snapshot())
	if !ok {
		t.Fatalf("expected the client value to ride along to the text run")
	}
	if class != 7 {
		t.Errorf("expected document class 7, is %d", class)
	}
}

func TestConvertTheme(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft")
	defer teardown()
	//
	theme := style.DefaultTheme()
	theme.LinkColor = color.RGBA{0x80, 0, 0x80, 0xff}
	nodes, err := weft.ConvertString(`<p><a href="#x">go</a></p>`, weft.WithTheme(theme))
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	link := nodes.Child(0).Child(0)
	if link.Link() != "#x" {
		t.Errorf("expected the anchor href on the run, is %q", link.Link())
	}
	if link.TextStyle().Color != theme.LinkColor {
		t.Errorf("expected the theme's link color, is %v", link.TextStyle().Color)
	}
}

func TestConvertDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft")
	defer teardown()
	//
	nodes, err := weft.ConvertString(scenario)
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	dump := renderdbg.Dump(nodes)
	t.Logf("\n%s", dump)
	for _, part := range []string{"<h1>", "<p>", "Title", "world"} {
		if !strings.Contains(dump, part) {
			t.Errorf("expected dump to contain %q", part)
		}
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestConvertReaderError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft")
	defer teardown()
	//
	if _, err := weft.Convert(failingReader{}); err == nil {
		t.Errorf("expected a reader error to abort the conversion")
	}
}
