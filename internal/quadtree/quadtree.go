// Package quadtree implements the linear, Morton-friendly, pointer-free
// quadtree used for Barnes-Hut gravity and collision broad-phase queries.
//
// Nodes live in a single growable slice rather than as heap objects linked
// by pointers. Each node additionally carries a "next" index: the node to
// resume at when a subtree is skipped (opening criterion satisfied, bounds
// don't overlap a query) or fully consumed. That threading is what turns
// both tree walks in this package into a flat loop instead of recursion.
// Index 0 is the root and doubles as the walk-terminated sentinel; real
// walks start at index 1, the root's first child, once it has subdivided.
// A tree holding 0 or 1 particles never subdivides, so the walk starts at
// the root itself in that case (see GravityForce, QueryBound).
package quadtree

import (
	"math"

	"gravsim/internal/vecmath"
)

// MaxDepth bounds subdivision. Two particles landing on (or extremely near)
// the same point would otherwise force unbounded subdivision and eventual
// floating-point degeneracy in the bound arithmetic; past this depth a
// newly-inserted particle silently displaces whatever already occupies the
// leaf.
const MaxDepth = 18

// Theta and ThetaSquared parameterize the Barnes-Hut opening criterion: a
// node is accepted as a single mass point once its size is small relative
// to its distance from the query position.
const (
	Theta        = 1.0
	ThetaSquared = Theta * Theta
)

// Eps and EpsSquared soften the gravity denominator and guard the
// self-interaction singularity.
const (
	Eps        = 1e-6
	EpsSquared = Eps * Eps
)

// QNode is one slot of the linear tree. A leaf holds at most one particle
// (ParticleContained, or -1 when empty). An internal node's Children index
// is the first of four contiguous child slots in fixed SW/SE/NW/NE order;
// Next is the escape pointer a threaded walk follows when this node (leaf)
// or this whole subtree (internal, opening criterion met) is done with.
type QNode struct {
	Bound Bound
	Depth uint32

	Children int // index of first of 4 child slots, or 0 if leaf
	Next     int // escape index; 0 means traversal complete

	IsLeaf            bool
	ParticleContained int // index into the particle slice, or -1

	TotalMass  float32
	CenterMass vecmath.Vec2
}

func newNode(botLeft, dim vecmath.Vec2, depth uint32, next int) QNode {
	return QNode{
		Bound:             NewBound(botLeft, botLeft.Add(dim)),
		Depth:             depth,
		Next:              next,
		IsLeaf:            true,
		ParticleContained: -1,
	}
}

// setParticle stores pt at this leaf and seeds its mass aggregates from the
// particle directly (a leaf's aggregate is exact, not propagated).
func (n *QNode) setParticle(idx int, pos vecmath.Vec2, mass float32) {
	n.ParticleContained = idx
	n.TotalMass = mass
	n.CenterMass = pos
}

// QuadTree is the linear node store. Root is always nodes[0], covering
// [-1,1]^2.
type QuadTree struct {
	Nodes []QNode
}

// New returns a freshly-rooted tree.
func New() *QuadTree {
	t := &QuadTree{}
	t.Reset()
	return t
}

// Reset discards every node and re-pushes a fresh root. Called at the start
// of every sub-step's tree build; no heap churn beyond the slice's
// amortized regrowth is required.
func (t *QuadTree) Reset() {
	t.Nodes = t.Nodes[:0]
	t.Nodes = append(t.Nodes, newNode(vecmath.New(-1, -1), vecmath.New(2, 2), 0, 0))
}

// subdivide turns the leaf at nodeIdx into an internal node with four fresh
// child leaves, threading their Next pointers: SW/SE/NW point at the next
// sibling in order, and NE inherits the parent's own Next (the escape
// pointer for the whole subtree).
func (t *QuadTree) subdivide(nodeIdx int) {
	t.Nodes[nodeIdx].IsLeaf = false
	t.Nodes[nodeIdx].ParticleContained = -1
	t.Nodes[nodeIdx].TotalMass = 0
	t.Nodes[nodeIdx].CenterMass = vecmath.Zero

	half := t.Nodes[nodeIdx].Bound.dim().Scale(0.5)
	botLeft := t.Nodes[nodeIdx].Bound.BotLeft
	childDepth := t.Nodes[nodeIdx].Depth + 1
	parentNext := t.Nodes[nodeIdx].Next

	firstChild := len(t.Nodes)

	t.Nodes = append(t.Nodes,
		newNode(botLeft, half, childDepth, firstChild+1),                           // SW
		newNode(botLeft.Add(vecmath.New(half.X, 0)), half, childDepth, firstChild+2), // SE
		newNode(botLeft.Add(vecmath.New(0, half.Y)), half, childDepth, firstChild+3), // NW
		newNode(botLeft.Add(half), half, childDepth, parentNext),                   // NE
	)

	t.Nodes[nodeIdx].Children = firstChild
}

// leafFor descends from root to the leaf whose bound contains pos.
func (t *QuadTree) leafFor(pos vecmath.Vec2) int {
	cur := 0
	for !t.Nodes[cur].IsLeaf {
		first := t.Nodes[cur].Children
		for c := first; c < first+4; c++ {
			if t.Nodes[c].Bound.Contains(pos) {
				cur = c
				break
			}
		}
	}
	return cur
}

// childFor descends exactly one level from the (now-internal) node at
// nodeIdx to whichever of its four children contains pos.
func (t *QuadTree) childFor(nodeIdx int, pos vecmath.Vec2) int {
	first := t.Nodes[nodeIdx].Children
	for c := first; c < first+4; c++ {
		if t.Nodes[c].Bound.Contains(pos) {
			return c
		}
	}
	return first
}

// InsertParticle places particle idx (at position pos with mass mass) into
// the tree. If the destination leaf is empty, the particle is stored
// directly. Otherwise the leaf subdivides repeatedly until the two
// particles land in different children, or MaxDepth is reached, in which
// case the new particle silently displaces the previous occupant (see
// MaxDepth). massOfIndex recovers the mass of a particle already resident
// in the tree, needed when re-homing it into a freshly subdivided child.
func (t *QuadTree) InsertParticle(idx int, pos vecmath.Vec2, mass float32, massOfIndex func(int) float32) {
	cur := t.leafFor(pos)

	if t.Nodes[cur].ParticleContained == -1 {
		t.Nodes[cur].setParticle(idx, pos, mass)
		return
	}

	otherIdx := t.Nodes[cur].ParticleContained
	otherPos := t.Nodes[cur].CenterMass
	otherMass := massOfIndex(otherIdx)

	for {
		if otherIdx == -1 || t.Nodes[cur].Depth >= MaxDepth {
			t.Nodes[cur].setParticle(idx, pos, mass)
			return
		}

		t.subdivide(cur)

		roommate := t.childFor(cur, otherPos)
		t.Nodes[roommate].setParticle(otherIdx, otherPos, otherMass)

		cur = t.childFor(cur, pos)
		otherIdx = t.Nodes[cur].ParticleContained
	}
}

// PropagateMass computes every internal node's total mass and
// mass-weighted center of mass from its children. Children always appear
// after their parent in the node slice, so a single reverse pass over
// indices is a valid post-order traversal; leaves already hold correct
// values from insertion and are skipped.
func (t *QuadTree) PropagateMass() {
	for i := len(t.Nodes) - 1; i >= 0; i-- {
		if t.Nodes[i].IsLeaf {
			continue
		}

		first := t.Nodes[i].Children
		var centerMass vecmath.Vec2
		var totalMass float32

		for c := first; c < first+4; c++ {
			centerMass = centerMass.Add(t.Nodes[c].CenterMass.Scale(t.Nodes[c].TotalMass))
			totalMass += t.Nodes[c].TotalMass
		}

		if totalMass > 0 {
			centerMass = centerMass.Div(totalMass)
		}
		t.Nodes[i].CenterMass = centerMass
		t.Nodes[i].TotalMass = totalMass
	}
}

// GravityForce walks the threaded node list from index 1, the root's first
// child, applying the Barnes-Hut opening criterion: a node is accepted as a
// single mass point once it is a leaf or its size is small relative to its
// distance from pos (size^2 < distance^2 * theta^2). The accepted
// contribution uses a softened Plummer-like denominator so near-coincident
// masses don't diverge. The caller is responsible for multiplying the
// result by the gravitational constant.
//
// A tree with 0 or 1 particles never subdivides (see InsertParticle), so
// t.Nodes holds only the root and indices 1-4 don't exist; the walk starts
// at the root itself in that case.
func (t *QuadTree) GravityForce(pos vecmath.Vec2) vecmath.Vec2 {
	var force vecmath.Vec2

	nodeIdx := 1
	if t.Nodes[0].IsLeaf {
		nodeIdx = 0
	}

	for {
		node := &t.Nodes[nodeIdx]

		delta := node.CenterMass.Sub(pos)
		distSquared := delta.LengthSquared()

		switch {
		case distSquared < EpsSquared:
			nodeIdx = node.Next
		case node.IsLeaf || node.Bound.SizeSquared < distSquared*ThetaSquared:
			denom := (distSquared + EpsSquared) * float32(math.Sqrt(float64(distSquared)))
			force = force.Add(delta.Scale(node.TotalMass / denom))
			nodeIdx = node.Next
		default:
			nodeIdx = node.Children
		}

		if nodeIdx == 0 {
			break
		}
	}

	return force
}

// QueryBound walks the threaded node list from index 1, the root's first
// child, collecting the ParticleContained index of every non-empty leaf
// whose bound overlaps b. Subtrees whose bound does not overlap b are
// skipped via Next without descending; overlapping internal nodes descend
// via Children.
//
// A tree with 0 or 1 particles never subdivides (see InsertParticle), so
// t.Nodes holds only the root and indices 1-4 don't exist; the walk starts
// at the root itself in that case.
func (t *QuadTree) QueryBound(b Bound, out []int) []int {
	nodeIdx := 1
	if t.Nodes[0].IsLeaf {
		nodeIdx = 0
	}

	for {
		node := &t.Nodes[nodeIdx]

		switch {
		case !node.Bound.Overlaps(b):
			nodeIdx = node.Next
		case node.IsLeaf:
			if node.ParticleContained != -1 {
				out = append(out, node.ParticleContained)
			}
			nodeIdx = node.Next
		default:
			nodeIdx = node.Children
		}

		if nodeIdx == 0 {
			break
		}
	}
	return out
}
