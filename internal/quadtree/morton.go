package quadtree

import (
	"sort"

	"gravsim/internal/vecmath"
)

// mortonBits is the per-axis quantization width: each coordinate in [-1,1)
// is mapped onto a 16-bit unsigned integer before its bits are interleaved.
const mortonBits = 16

// quantize maps a coordinate in [-1,1) onto [0, 2^mortonBits).  Values
// outside the range clamp to the nearest end rather than wrapping, so a
// particle that has briefly drifted past the boundary (before wall
// collision resolves it) still sorts to one end of Morton order instead of
// aliasing back into the middle.
func quantize(v float32) uint32 {
	if v <= -1 {
		return 0
	}
	if v >= 1 {
		return 1<<mortonBits - 1
	}
	return uint32((v + 1) * 0.5 * (1 << mortonBits))
}

// unquantize is quantize's (lossy) inverse, mapping a quantized integer back
// to the center of the [-1,1) bucket it names.
func unquantize(q uint32) float32 {
	return (float32(q)+0.5)/(1<<mortonBits)*2 - 1
}

// part1by1 spreads the low 16 bits of v so that each original bit i lands at
// bit position 2*i, leaving the interleaved gaps free for the other axis.
func part1by1(v uint32) uint64 {
	x := uint64(v)
	x = (x | (x << 16)) & 0x0000FFFF0000FFFF
	x = (x | (x << 8)) & 0x00FF00FF00FF00FF
	x = (x | (x << 4)) & 0x0F0F0F0F0F0F0F0F
	x = (x | (x << 2)) & 0x3333333333333333
	x = (x | (x << 1)) & 0x5555555555555555
	return x
}

// compact1by1 is part1by1's inverse: it gathers every other bit of v back
// into a contiguous 16-bit value.
func compact1by1(v uint64) uint32 {
	x := v & 0x5555555555555555
	x = (x | (x >> 1)) & 0x3333333333333333
	x = (x | (x >> 2)) & 0x0F0F0F0F0F0F0F0F
	x = (x | (x >> 4)) & 0x00FF00FF00FF00FF
	x = (x | (x >> 8)) & 0x0000FFFF0000FFFF
	x = (x | (x >> 16)) & 0x00000000FFFFFFFF
	return uint32(x)
}

// MortonKey returns the Z-order key of pos: ix and iy are each quantized to
// mortonBits, then interleaved with iy's bits one position higher than ix's
// so that points close in 2D space land close together in the 1D sort
// order particles are built in before tree insertion.
func MortonKey(pos vecmath.Vec2) uint64 {
	ix := quantize(pos.X)
	iy := quantize(pos.Y)
	return part1by1(ix) | (part1by1(iy) << 1)
}

// UnmortonKey recovers the quantization center of the position that
// produced key, i.e. it is the inverse of MortonKey up to the [-1,1)
// quantization bucket. Used only to test the round-trip property of
// MortonKey/quantize; the live insertion path never needs to invert a key.
func UnmortonKey(key uint64) vecmath.Vec2 {
	ix := compact1by1(key)
	iy := compact1by1(key >> 1)
	return vecmath.New(unquantize(ix), unquantize(iy))
}

// SortByMorton sorts idx, a slice of particle indices, in place by the
// Morton key of each particle's position, as reported by posOf. Particles
// inserted into the tree in this order visit nearby quadrants back to back,
// which is what gives the linear tree its cache-friendly access pattern.
func SortByMorton(idx []int, posOf func(int) vecmath.Vec2) {
	keys := make([]uint64, len(idx))
	for i, p := range idx {
		keys[i] = MortonKey(posOf(p))
	}
	sort.Sort(&mortonOrder{idx: idx, keys: keys})
}

// mortonOrder adapts a parallel (idx, keys) pair to sort.Interface so idx
// can be reordered by ascending key without allocating key/index pairs.
type mortonOrder struct {
	idx  []int
	keys []uint64
}

func (m *mortonOrder) Len() int { return len(m.idx) }
func (m *mortonOrder) Less(i, j int) bool { return m.keys[i] < m.keys[j] }
func (m *mortonOrder) Swap(i, j int) {
	m.idx[i], m.idx[j] = m.idx[j], m.idx[i]
	m.keys[i], m.keys[j] = m.keys[j], m.keys[i]
}
