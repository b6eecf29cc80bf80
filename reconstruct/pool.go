// SPDX-License-Identifier: MIT

package reconstruct

import "slices"

// pool is the candidate set: a dense member array plus a position index,
// giving O(1) membership tests and O(1) swap-and-shrink removal.
type pool struct {
	members []int // current candidates, unordered
	pos     []int // pos[u] = index of u in members, or -1
}

// newPool returns a pool over {0..n-1}, minus skip when skip ≥ 0.
func newPool(n, skip int) *pool {
	p := &pool{members: make([]int, 0, n), pos: make([]int, n)}
	for u := 0; u < n; u++ {
		if u == skip {
			p.pos[u] = -1
			continue
		}
		p.pos[u] = len(p.members)
		p.members = append(p.members, u)
	}

	return p
}

// Len returns |C|.
func (p *pool) Len() int { return len(p.members) }

// Has reports whether u is still a candidate.
func (p *pool) Has(u int) bool { return u >= 0 && u < len(p.pos) && p.pos[u] >= 0 }

// Remove deletes u by moving the last member into its slot.
func (p *pool) Remove(u int) bool {
	if !p.Has(u) {
		return false
	}
	i := p.pos[u]
	last := p.members[len(p.members)-1]
	p.members[i] = last
	p.pos[last] = i
	p.members = p.members[:len(p.members)-1]
	p.pos[u] = -1

	return true
}

// Sorted returns the members in ascending unit order (fresh slice).
func (p *pool) Sorted() []int {
	out := slices.Clone(p.members)
	slices.Sort(out)

	return out
}
