package builder

import (
	"fmt"

	"github.com/nileshpatra/gubbins/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor building a simple path P_n: vertices
// 0..n-1 via cfg.idFn, edges (i-1)->i emitted in increasing order.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := g.AddVertex(ids[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodPath, ids[i], err)
			}
		}
		for i := 1; i < n; i++ {
			w := cfg.weightFn(i - 1)
			if err := g.AddEdge(ids[i-1], ids[i], w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodPath, ids[i-1], ids[i], err)
			}
		}
		return nil
	}
}
