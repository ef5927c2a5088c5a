package builder

import (
	"fmt"

	"github.com/nileshpatra/gubbins/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor building the complete simple graph K_n
// (n >= 1): vertices 0..n-1 via cfg.idFn, an edge between every pair i<j.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := g.AddVertex(ids[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodComplete, ids[i], err)
			}
		}
		edgeIdx := 0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				w := cfg.weightFn(edgeIdx)
				edgeIdx++
				if err := g.AddEdge(ids[i], ids[j], w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodComplete, ids[i], ids[j], err)
				}
			}
		}
		return nil
	}
}
