package closures

import (
	"fmt"

	"github.com/notargets/nodalbasis/types"
)

/*
addEdgeNodes appends the edge interior nodes to full closures that so far only
map vertices. The image of each edge is looked up by its end vertices; when
the symmetry reverses the edge, its interior nodes are read backwards.
Closures that are empty stay empty.
*/
func addEdgeNodes(full [][]int, edges [][2]int, p int) error {
	if p < 2 {
		return nil
	}
	var numNodes int
	index := make(map[types.EdgeKey]int, len(edges))
	for i, e := range edges {
		numNodes = max(numNodes, e[0]+1, e[1]+1)
		index[types.NewEdgeKey(e)] = i
	}
	for ic, cl := range full {
		if len(cl) == 0 {
			continue
		}
		for _, e := range edges {
			image := types.NewEdgeInt([2]int{cl[e[0]], cl[e[1]]})
			oEdge, ok := index[image.GetKey()]
			if !ok {
				return fmt.Errorf("%w: closure %d maps edge %v onto %v, which is not an edge",
					ErrInconsistent, ic, e, image.GetVertices())
			}
			reversed := image.Reversed() != types.NewEdgeInt(edges[oEdge]).Reversed()
			for i := 0; i < p-1; i++ {
				k := i
				if reversed {
					k = p - 2 - i
				}
				cl = append(cl, numNodes+oEdge*(p-1)+k)
			}
		}
		full[ic] = cl
	}
	return nil
}
