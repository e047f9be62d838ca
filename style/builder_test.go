package style_test

import (
	"image/color"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/weft/css"
	"github.com/npillmayer/weft/style"
)

var (
	red   color.Color = color.RGBA{R: 0xff, A: 0xff}
	blue  color.Color = color.RGBA{B: 0xff, A: 0xff}
	green color.Color = color.RGBA{G: 0xff, A: 0xff}
)

func setColor(snap *style.Snapshot, c color.Color) *style.Snapshot {
	return snap.MergeText(style.TextStyle{Color: c})
}

func setSize(snap *style.Snapshot, d css.DimenT) *style.Snapshot {
	return snap.MergeText(style.TextStyle{Size: d})
}

func setSlant(snap *style.Snapshot, sl style.FontSlant) *style.Snapshot {
	return snap.MergeText(style.TextStyle{Slant: sl})
}

// anchor creates a root snapshot with the given font size and wraps it in
// a builder chain anchor.
func anchor(size dimen.DU) (*style.Builder, *style.Snapshot) {
	root := style.Root(
		style.NewValueSet(style.TextStyle{Size: css.JustDimen(size)}),
		style.TextStyle{},
	)
	return style.NewBuilder(root), root
}

func TestBuildPassThrough(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.style")
	defer teardown()
	//
	rootB, rootSnap := anchor(16 * dimen.PT)
	ctx := style.Context{}
	a := rootB.Sub()
	if a.Build(ctx) != rootSnap {
		t.Errorf("expected uncontributing builder to hand out its parent's snapshot, doesn't")
	}
	deep := a.Sub().Sub().Sub()
	if deep.Build(ctx) != rootSnap {
		t.Errorf("expected a chain of uncontributing builders to pass the root snapshot through, doesn't")
	}
}

func TestBuildOverride(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.style")
	defer teardown()
	//
	rootB, _ := anchor(16 * dimen.PT)
	ctx := style.Context{}
	b := rootB.Sub()
	b.Enqueue(style.Contribute(setSize, css.JustDimen(20*dimen.PT)))
	snap := b.Build(ctx)
	if snap.FontSize().DU() != 20*dimen.PT {
		t.Errorf("expected contributed font size of 20pt to win, is %s", snap.FontSize())
	}
}

func TestBuildCacheStability(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.style")
	defer teardown()
	//
	rootB, _ := anchor(16 * dimen.PT)
	ctx := style.Context{}
	b := rootB.Sub()
	b.Enqueue(style.Contribute(setColor, red))
	first := b.Build(ctx)
	second := b.Build(ctx)
	if first != second {
		t.Errorf("expected repeated builds to return the identical snapshot, don't")
	}
}

func TestBuildCacheInvalidation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.style")
	defer teardown()
	//
	rootB, _ := anchor(16 * dimen.PT)
	ctx := style.Context{}
	p := rootB.Sub()
	p.Enqueue(style.Contribute(setColor, red))
	d := p.Sub()
	d.Enqueue(style.Contribute(setSlant, style.SlantItalic))
	stale := d.Build(ctx)

	p.Enqueue(style.Contribute(setSize, css.JustDimen(18*dimen.PT)))
	fresh := d.Build(ctx)
	if fresh == stale {
		t.Errorf("expected ancestor contribution to invalidate the descendant's build, didn't")
	}
	if fresh.FontSize().DU() != 18*dimen.PT {
		t.Errorf("expected re-built snapshot to carry the new ancestor size, is %s", fresh.FontSize())
	}
	if fresh.TextStyle().Slant != style.SlantItalic {
		t.Errorf("expected re-built snapshot to keep its own slant, is %s", fresh.TextStyle().Slant)
	}
}

func TestBuildOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.style")
	defer teardown()
	//
	rootB, _ := anchor(16 * dimen.PT)
	ctx := style.Context{}
	b := rootB.Sub()
	b.Enqueue(style.Contribute(setColor, red))
	b.Enqueue(style.Contribute(setColor, blue))
	if snap := b.Build(ctx); snap.Color() != blue {
		t.Errorf("expected the later of two clashing contributions to win, color is %v",
			snap.Color())
	}
}

// The canonical inheritance scenario: a chain root → A → B → C where A
// contributes nothing, B sets a color and C sets a font size.
func TestBuildScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.style")
	defer teardown()
	//
	root := style.Root(style.NewValueSet(
		style.TextStyle{Size: css.JustDimen(16 * dimen.PT)},
		style.ScaleFactor(1.0),
	), style.TextStyle{})
	rootB := style.NewBuilder(root)
	ctx := style.Context{}

	a := rootB.Sub()
	b := a.Sub()
	b.Enqueue(style.Contribute(setColor, red))
	c := b.Sub()
	c.Enqueue(style.Contribute(setSize, css.JustDimen(20*dimen.PT)))

	snapA := a.Build(ctx)
	if snapA != root {
		t.Errorf("expected A to share the root snapshot, doesn't")
	}
	if snapA.FontSize().DU() != 16*dimen.PT || snapA.Color() != nil {
		t.Errorf("expected A to be 16pt without color, is %s", snapA)
	}

	snapB := b.Build(ctx)
	if snapB.Color() != red || snapB.FontSize().DU() != 16*dimen.PT {
		t.Errorf("expected B to be red at 16pt, is %s", snapB)
	}

	snapC := c.Build(ctx)
	if snapC.Color() != red {
		t.Errorf("expected C to inherit B's color, is %v", snapC.Color())
	}
	if snapC.FontSize().DU() != 20*dimen.PT {
		t.Errorf("expected C to be 20pt, is %s", snapC.FontSize())
	}
	if snapC.Parent() != snapB {
		t.Errorf("expected C's snapshot to be parented at B's, isn't")
	}
}

func TestBuildWithContext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.style")
	defer teardown()
	//
	rootB, _ := anchor(16 * dimen.PT)
	b := rootB.Sub()
	b.Enqueue(style.ContributeWithContext(func(snap *style.Snapshot, ctx style.Context) *style.Snapshot {
		return snap.MergeText(style.TextStyle{
			Color:      ctx.Styling().LinkColor,
			Decoration: style.Underline,
		})
	}))

	theme := style.DefaultTheme()
	theme.LinkColor = green
	snap := b.Build(style.Context{Theme: theme})
	if snap.Color() != green {
		t.Errorf("expected link color from the ambient theme, is %v", snap.Color())
	}
	if !snap.Decoration().Has(style.Underline) {
		t.Errorf("expected link to be underlined, is %s", snap.Decoration())
	}
}

func TestBuildRepairsContract(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.style")
	defer teardown()
	//
	rootB, rootSnap := anchor(16 * dimen.PT)
	ctx := style.Context{}
	b := rootB.Sub()
	b.Enqueue(style.Contribute(func(snap *style.Snapshot, c color.Color) *style.Snapshot {
		return snap.MergeText(style.TextStyle{Color: c}).WithParent(nil) // malformed
	}, red))
	snap := b.Build(ctx)
	if snap.Parent() != rootSnap {
		t.Errorf("expected re-parenting contribution to be repaired, parent is %v", snap.Parent())
	}
	if snap.Color() != red {
		t.Errorf("expected repaired snapshot to keep the contributed color, is %v", snap.Color())
	}

	dropped := rootB.Sub()
	dropped.Enqueue(style.Contribute(func(snap *style.Snapshot, _ int) *style.Snapshot {
		return nil // malformed
	}, 0))
	snap = dropped.Build(ctx)
	if snap.Parent() != rootSnap {
		t.Errorf("expected nil-returning contribution to be dropped, parent is %v", snap.Parent())
	}
}

func TestBuildStrictContracts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.style")
	defer teardown()
	//
	rootB, _ := anchor(16 * dimen.PT)
	b := rootB.Sub()
	b.Enqueue(style.Contribute(func(snap *style.Snapshot, _ int) *style.Snapshot {
		return snap.WithParent(nil) // malformed
	}, 0))
	style.StrictContracts = true
	defer func() {
		style.StrictContracts = false
		if r := recover(); r == nil {
			t.Errorf("expected malformed contribution to panic under strict contracts, didn't")
		}
	}()
	b.Build(style.Context{})
}

func TestRootAnchorRejectsContributions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.style")
	defer teardown()
	//
	rootB, rootSnap := anchor(16 * dimen.PT)
	rootB.Enqueue(style.Contribute(setColor, red))
	snap := rootB.Build(style.Context{})
	if snap != rootSnap {
		t.Errorf("expected root anchor to ignore contributions, built %s", snap)
	}
	if snap.Color() != nil {
		t.Errorf("expected root snapshot to be unchanged, color is %v", snap.Color())
	}
}

func TestBuilderFork(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.style")
	defer teardown()
	//
	rootB, _ := anchor(16 * dimen.PT)
	ctx := style.Context{}
	p := rootB.Sub()
	p.Enqueue(style.Contribute(setColor, red))
	q := rootB.Sub()
	q.Enqueue(style.Contribute(setSize, css.JustDimen(20*dimen.PT)))

	f := p.Fork(q)
	snap := f.Build(ctx)
	if snap.Color() != red {
		t.Errorf("expected fork to keep its contributions, color is %v", snap.Color())
	}
	if snap.FontSize().DU() != 20*dimen.PT {
		t.Errorf("expected fork to inherit from its new parent, size is %s", snap.FontSize())
	}

	p.Enqueue(style.Contribute(setColor, blue))
	if snap := f.Build(ctx); snap.Color() != red {
		t.Errorf("expected fork's queue to be independent of the original, color is %v",
			snap.Color())
	}
}

func TestSharesStyleWith(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.style")
	defer teardown()
	//
	rootB, _ := anchor(16 * dimen.PT)
	a := rootB.Sub()
	b := rootB.Sub()
	if !a.SharesStyleWith(b) {
		t.Errorf("expected uncontributing siblings to share styling, don't")
	}
	if !a.SharesStyleWith(rootB) {
		t.Errorf("expected uncontributing builder to share styling with the root, doesn't")
	}

	c := rootB.Sub()
	c.Enqueue(style.Contribute(setColor, red))
	if c.SharesStyleWith(a) {
		t.Errorf("expected contributing builder to not share styling with its sibling, does")
	}

	d := c.Sub()
	e := c.Sub()
	if !d.SharesStyleWith(e) {
		t.Errorf("expected uncontributing children of a styled parent to share styling, don't")
	}
	if !d.SharesStyleWith(c) {
		t.Errorf("expected uncontributing child to share styling with its styled parent, doesn't")
	}
	if d.SharesStyleWith(a) {
		t.Errorf("expected styled subtree to not share styling with outside builders, does")
	}
}
