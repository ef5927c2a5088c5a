package builder

import (
	"fmt"

	"github.com/nileshpatra/gubbins/core"
)

const (
	methodStar     = "Star"
	minStarNodes   = 2
	centerVertexID = "Center"
)

// Star returns a Constructor building a star topology: one hub "Center"
// and n-1 leaves, with spokes Center->leaf[i] emitted in ascending leaf
// index order.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(centerVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, centerVertexID, err)
		}
		for i := 1; i < n; i++ {
			leafID := cfg.idFn(i)
			if err := g.AddVertex(leafID); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, leafID, err)
			}
			w := cfg.weightFn(i - 1)
			if err := g.AddEdge(centerVertexID, leafID, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodStar, centerVertexID, leafID, err)
			}
		}
		return nil
	}
}
