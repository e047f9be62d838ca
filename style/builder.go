package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// StrictContracts makes contract violations by styling contributions panic
// instead of being repaired. Intended for tests; in production style
// resolution never aborts rendering.
var StrictContracts bool

// Contribution is one deferred styling step, queued on a builder and
// applied when the builder resolves. Contributions are created through
// Contribute or ContributeWithContext; the zero Contribution does nothing
// and is not enqueued.
type Contribution struct {
	apply   func(*Snapshot) *Snapshot
	resolve func(*Snapshot, Context) *Snapshot
}

// Contribute creates a contribution from a transform and a fixed input,
// captured now and applied at build time. The transform receives the
// snapshot under construction and returns a modified copy (snapshots are
// immutable; Snapshot.MergeText, WithValue etc. do the copying). It must
// not change the snapshot's parent.
func Contribute[T any](transform func(*Snapshot, T) *Snapshot, input T) Contribution {
	if transform == nil {
		return Contribution{}
	}
	return Contribution{
		apply: func(snap *Snapshot) *Snapshot { return transform(snap, input) },
	}
}

// ContributeWithContext creates a contribution which is resolved at build
// time against the ambient Context. This is the variant for styling that
// depends on the theme (link colors, monospace families): the queue stores
// the dependency, not a value pinned at parse time.
func ContributeWithContext(transform func(*Snapshot, Context) *Snapshot) Contribution {
	if transform == nil {
		return Contribution{}
	}
	return Contribution{resolve: transform}
}

func (c Contribution) isNoop() bool {
	return c.apply == nil && c.resolve == nil
}

// Builder accumulates styling contributions for one element of a document
// tree. Builders form a chain mirroring the element hierarchy: resolving a
// builder resolves its ancestors first, then applies the builder's own
// contributions on top of the parent's snapshot.
//
// A builder is mutable until built. The zero Builder is not usable; chains
// start with NewBuilder and grow with Sub.
type Builder struct {
	parent *Builder
	root   *Snapshot // set on the root anchor only
	queue  []Contribution

	// single-slot build cache, valid while the parent resolves to the
	// identical snapshot
	lastParent *Snapshot
	lastBuilt  *Snapshot
}

// NewBuilder creates the root anchor of a builder chain, wrapping a
// pre-built snapshot (usually from Root). The anchor accepts no
// contributions.
func NewBuilder(root *Snapshot) *Builder {
	if root == nil {
		tracer().Errorf("builder chain anchored on a nil snapshot, substituting an empty one")
		root = &Snapshot{}
	}
	return &Builder{root: root}
}

// Sub creates a builder for a child element, with b as its parent and an
// empty contribution queue.
func (b *Builder) Sub() *Builder {
	return &Builder{parent: b}
}

// Fork clones b's queued contributions into a new builder under the given
// parent. It re-parents styling for a relocated subtree without collecting
// the contributions again. Forking a root anchor yields an uncontributing
// pass-through builder.
func (b *Builder) Fork(parent *Builder) *Builder {
	forked := &Builder{parent: parent}
	if len(b.queue) > 0 {
		forked.queue = make([]Contribution, len(b.queue))
		copy(forked.queue, b.queue)
	}
	return forked
}

// Enqueue appends a contribution to b's queue. Contributions are applied
// in enqueue order at build time, so for clashing styling the last one
// enqueued wins. Enqueueing invalidates a previously built result of b, it
// will be re-computed on the next Build.
//
// The root anchor wraps a finished snapshot; enqueueing on it is a client
// defect, traced and ignored.
func (b *Builder) Enqueue(c Contribution) {
	if b.root != nil {
		tracer().Errorf("styling contribution on a root anchor will be ignored")
		return
	}
	if c.isNoop() {
		tracer().Debugf("empty styling contribution will be ignored")
		return
	}
	b.queue = append(b.queue, c)
	b.lastParent, b.lastBuilt = nil, nil
}

// Build resolves the builder chain into a snapshot.
//
// The parent chain is resolved first, iteratively with an explicit stack:
// pathologically deep markup must not translate into call stack depth. The
// root anchor resolves to its pre-built snapshot. A builder without
// contributions resolves to its parent's snapshot, the very same object,
// so uncontributing elements share styling with their parent by pointer
// identity. A contributing builder re-uses its previously built snapshot
// as long as its parent resolved to the identical snapshot; otherwise it
// extends the parent snapshot, applies the queue in order and caches the
// result.
func (b *Builder) Build(ctx Context) *Snapshot {
	stack := make([]*Builder, 0, 32)
	cur := b
	var snap *Snapshot
	for {
		if cur == nil {
			tracer().Errorf("builder chain without a root anchor, styling from scratch")
			snap = &Snapshot{}
			break
		}
		if cur.root != nil {
			snap = cur.root
			break
		}
		if len(cur.queue) > 0 {
			stack = append(stack, cur)
		}
		cur = cur.parent
	}
	for i := len(stack) - 1; i >= 0; i-- {
		snap = stack[i].rebuild(snap, ctx)
	}
	return snap
}

// rebuild resolves one contributing builder on top of the already resolved
// parent snapshot.
func (b *Builder) rebuild(parent *Snapshot, ctx Context) *Snapshot {
	if b.lastBuilt != nil && b.lastParent == parent {
		return b.lastBuilt
	}
	built := parent.Extend()
	for _, c := range b.queue {
		built = applyContribution(built, parent, c, ctx)
	}
	b.lastParent, b.lastBuilt = parent, built
	return built
}

// applyContribution applies a single contribution and enforces the
// contract that contributions keep the snapshot under its parent. A
// violation panics under StrictContracts; otherwise it is traced and
// repaired, since styling defects must not abort rendering.
func applyContribution(built, parent *Snapshot, c Contribution, ctx Context) *Snapshot {
	var next *Snapshot
	switch {
	case c.apply != nil:
		next = c.apply(built)
	case c.resolve != nil:
		next = c.resolve(built, ctx)
	default:
		return built
	}
	if next == nil {
		if StrictContracts {
			panic("styling contribution returned a nil snapshot")
		}
		tracer().Errorf("styling contribution returned a nil snapshot, contribution dropped")
		return built
	}
	if next.Parent() != parent {
		if StrictContracts {
			panic("styling contribution re-parented the snapshot")
		}
		tracer().Errorf("styling contribution re-parented the snapshot, re-wiring it")
		next = next.WithParent(parent)
	}
	return next
}

// SharesStyleWith reports whether two builders resolve to the same styling,
// i.e. whether their chains converge on the identical nearest contributing
// ancestor. A contributing ancestor is one with a non-empty queue, or the
// root anchor; builders which only pass their parent's snapshot through do
// not count.
func (b *Builder) SharesStyleWith(other *Builder) bool {
	return b.nearestContributor() == other.nearestContributor()
}

func (b *Builder) nearestContributor() *Builder {
	for cur := b; cur != nil; cur = cur.parent {
		if cur.root != nil || len(cur.queue) > 0 {
			return cur
		}
	}
	return nil
}

func (b *Builder) String() string {
	if b == nil {
		return "Builder(nil)"
	}
	if b.root != nil {
		return fmt.Sprintf("Builder(root %s)", b.root)
	}
	return fmt.Sprintf("Builder(#contrib=%d)", len(b.queue))
}
