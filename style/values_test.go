package style_test

import (
	"image/color"
	"testing"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/weft/css"
	"github.com/npillmayer/weft/style"
)

func TestValueSetReplace(t *testing.T) {
	var empty style.ValueSet
	set := empty.With(style.ScaleFactor(1.5))
	if f, ok := style.Get[style.ScaleFactor](set); !ok || f != 1.5 {
		t.Errorf("expected scale factor of 1.5 in set, have %v (ok=%v)", f, ok)
	}
	if empty.Len() != 0 {
		t.Errorf("expected receiver of With to be unchanged, has %d entries", empty.Len())
	}

	set = set.With(style.ScaleFactor(2))
	if f, _ := style.Get[style.ScaleFactor](set); f != 2 {
		t.Errorf("expected replacing scale factor to win, have %v", f)
	}
	count := 0
	for _, v := range set.Values() {
		if v.StyleKind() == style.KindScale {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly 1 scale entry to survive replacement, have %d", count)
	}
}

func TestValueSetConstruction(t *testing.T) {
	set := style.NewValueSet(
		style.ScaleFactor(1),
		style.Direction(style.RTL),
		style.ScaleFactor(3),
	)
	if set.Len() != 2 {
		t.Errorf("expected 2 entries (scale, direction), have %d", set.Len())
	}
	if f, _ := style.Get[style.ScaleFactor](set); f != 3 {
		t.Errorf("expected the later scale argument to win, have %v", f)
	}
	if d, ok := style.Get[style.Direction](set); !ok || d != style.RTL {
		t.Errorf("expected direction RTL in set, have %v (ok=%v)", d, ok)
	}
}

func TestValueSetAbsence(t *testing.T) {
	set := style.NewValueSet(style.ScaleFactor(2))
	leading, ok := style.Get[style.Leading](set)
	if ok {
		t.Errorf("expected no leading in set, have %v", leading)
	}
	if leading != 0 {
		t.Errorf("expected absent leading to be the zero value, is %v", leading)
	}
}

func TestTextStyleMerge(t *testing.T) {
	var red color.Color = color.RGBA{R: 0xff, A: 0xff}
	base := style.TextStyle{
		Size:   css.JustDimen(12 * dimen.PT),
		Weight: style.WeightNormal,
		Color:  red,
	}
	merged := base.Merge(style.TextStyle{Weight: style.WeightBold})
	if merged.Weight != style.WeightBold {
		t.Errorf("expected merged weight to be bold, is %s", merged.Weight)
	}
	if merged.Size.DU() != base.Size.DU() || merged.Color != red {
		t.Errorf("expected unset fields to fall through, merged is %s", merged)
	}
	if base.Weight != style.WeightNormal {
		t.Errorf("expected merge to not mutate the receiver, base is %s", base)
	}

	cleared := merged.Merge(style.TextStyle{Decoration: style.DecorationNone})
	if cleared.Decoration != style.DecorationNone {
		t.Errorf("expected explicit no-decoration to win, is %s", cleared.Decoration)
	}
}
