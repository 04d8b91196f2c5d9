// Package closures builds the node closures of reference elements: for every
// symmetry of a shape, the permutation of its local node numbering, both
// restricted to one boundary entity (Closures) and over the whole element
// (Full).
package closures

import (
	"errors"
	"fmt"

	"github.com/james-bowman/sparse"

	"github.com/notargets/nodalbasis/shapes"
	"github.com/notargets/nodalbasis/utils"
)

var (
	ErrUnsupportedOrder  = errors.New("closures not implemented for this order")
	ErrInconsistent      = errors.New("inconsistent closure tables")
	ErrGeometricMismatch = errors.New("reference nodes do not match under symmetry")
)

// Closure lists, for one symmetry, the node that occupies each slot after the
// symmetry is applied. Type is the entity the node list spans.
type Closure struct {
	Nodes []int
	Type  shapes.Tag
}

func (c Closure) Len() int { return len(c.Nodes) }

func (c Closure) IsIdentity() bool {
	for i, n := range c.Nodes {
		if n != i {
			return false
		}
	}
	return len(c.Nodes) != 0
}

// IsPermutation reports whether the nodes are a bijection of 0..n-1
func (c Closure) IsPermutation(n int) bool {
	if len(c.Nodes) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range c.Nodes {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// Apply gathers values into closure order, R[s] = values[Nodes[s]]
func (c Closure) Apply(values []float64) (R []float64) {
	R = make([]float64, len(c.Nodes))
	for s, n := range c.Nodes {
		R[s] = values[n]
	}
	return
}

/*
PermutationMatrix returns the sparse gather matrix P of a full closure over n
nodes, P[s][Nodes[s]] = 1, so that P*v == Apply(v)
*/
func (c Closure) PermutationMatrix(n int) *sparse.CSR {
	dok := sparse.NewDOK(len(c.Nodes), n)
	for s, node := range c.Nodes {
		dok.Set(s, node, 1)
	}
	return dok.ToCSR()
}

// Clone returns a deep copy
func (c Closure) Clone() Closure {
	return Closure{Nodes: append([]int{}, c.Nodes...), Type: c.Type}
}

func newClosure(nodes []int, tag shapes.Tag) Closure {
	return Closure{Nodes: nodes, Type: tag}
}

// Set holds the closures of one reference element. Closures[i] and Full[i]
// describe the same symmetry. Ref[i] names the closure Closures[i] is
// expressed against: Closures[i][j] == Full[i][Closures[Ref[i]][j]].
type Set struct {
	Closures []Closure
	Full     []Closure
	Ref      []int
}

type generator func(tag shapes.Tag, pts utils.Matrix) (Set, error)

var generators map[shapes.Shape]generator

func init() {
	generators = map[shapes.Shape]generator{
		shapes.Point:    func(shapes.Tag, utils.Matrix) (Set, error) { return Set{}, nil },
		shapes.Line:     lineSet,
		shapes.Triangle: planarSet,
		shapes.Quad:     planarSet,
		shapes.Tet:      tetSet,
		shapes.Prism:    prismSet,
		shapes.Hex:      hexSet,
		shapes.Pyramid:  pyramidSet,
	}
}

// Generate builds and validates the closures of tag. The reference nodes pts
// are only consulted by shapes matched geometrically (hexahedra).
func Generate(tag shapes.Tag, pts utils.Matrix) (set Set, err error) {
	if err = tag.Validate(); err != nil {
		return
	}
	if set, err = generators[tag.Shape](tag, pts); err != nil {
		return Set{}, err
	}
	if err = set.Validate(tag.NumNodes()); err != nil {
		return Set{}, fmt.Errorf("%s: %w", tag, err)
	}
	return
}

// Validate checks that every full closure is a bijection of the n nodes and
// that every reference index points at a non-empty, self referencing closure
func (s Set) Validate(n int) error {
	if len(s.Ref) != len(s.Closures) || len(s.Full) != len(s.Closures) {
		return fmt.Errorf("%w: %d closures, %d full closures, %d references",
			ErrInconsistent, len(s.Closures), len(s.Full), len(s.Ref))
	}
	for i, cl := range s.Full {
		if cl.Len() == 0 {
			if s.Closures[i].Len() != 0 {
				return fmt.Errorf("%w: closure %d has no full closure", ErrInconsistent, i)
			}
			continue
		}
		if !cl.IsPermutation(n) {
			return fmt.Errorf("%w: full closure %d is not a permutation of %d nodes", ErrInconsistent, i, n)
		}
	}
	for i, cl := range s.Closures {
		if cl.Len() == 0 {
			continue
		}
		r := s.Ref[i]
		switch {
		case r < 0 || r >= len(s.Closures):
			return fmt.Errorf("%w: closure %d references %d", ErrInconsistent, i, r)
		case s.Closures[r].Len() != cl.Len():
			return fmt.Errorf("%w: closure %d references closure %d of another size", ErrInconsistent, i, r)
		case s.Ref[r] != r:
			return fmt.Errorf("%w: reference closure %d is not its own reference", ErrInconsistent, r)
		}
		for _, node := range cl.Nodes {
			if node < 0 || node >= n {
				return fmt.Errorf("%w: closure %d holds node %d", ErrInconsistent, i, node)
			}
		}
	}
	return nil
}

func (s Set) Len() int { return len(s.Full) }

// Slots is the number of closures Generate returns for a shape at any order
func Slots(s shapes.Shape) int {
	switch s {
	case shapes.Line:
		return 2
	case shapes.Triangle, shapes.Quad:
		return 2 * s.NumVertices()
	case shapes.Tet:
		return 24
	case shapes.Prism:
		return prismSlots
	case shapes.Hex:
		return hexSlots
	case shapes.Pyramid:
		return pyramidSlots
	}
	return 0
}

// FindFull returns the index of the first full closure equal to perm
func (s Set) FindFull(perm []int) (int, bool) {
	for i, cl := range s.Full {
		if equal(cl.Nodes, perm) {
			return i, true
		}
	}
	return -1, false
}

// Inverse returns the index of the full closure undoing full closure i
func (s Set) Inverse(i int) (int, bool) {
	fw := s.Full[i].Nodes
	inv := make([]int, len(fw))
	for slot, node := range fw {
		inv[node] = slot
	}
	return s.FindFull(inv)
}

// Compose returns the index of the full closure equal to applying j, then i:
// slot s holds Full[i][Full[j][s]]
func (s Set) Compose(i, j int) (int, bool) {
	a, b := s.Full[i].Nodes, s.Full[j].Nodes
	if len(a) != len(b) {
		return -1, false
	}
	c := make([]int, len(b))
	for slot, node := range b {
		c[slot] = a[node]
	}
	return s.FindFull(c)
}

// MatchVertices finds the symmetry carrying the canonical vertex order onto an
// observed one, observed[k] being the local vertex that sits where vertex k
// is expected
func (s Set) MatchVertices(observed []int) (int, bool) {
	for i, cl := range s.Full {
		if len(cl.Nodes) >= len(observed) && equal(cl.Nodes[:len(observed)], observed) {
			return i, true
		}
	}
	return -1, false
}

func equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// order0 returns n single node closures
func order0(n int, tag shapes.Tag) (cls []Closure) {
	cls = make([]Closure, n)
	for i := range cls {
		cls[i] = newClosure([]int{0}, tag)
	}
	return
}

func zeros(n int) []int { return make([]int, n) }

func wrap(nodes [][]int, tag shapes.Tag) (cls []Closure) {
	cls = make([]Closure, len(nodes))
	for i, n := range nodes {
		cls[i] = newClosure(n, tag)
	}
	return
}
