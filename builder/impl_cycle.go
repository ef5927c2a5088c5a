package builder

import (
	"fmt"

	"github.com/nileshpatra/gubbins/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor building a simple cycle C_n (n >= 3):
// vertices 0..n-1 via cfg.idFn, edges i->(i+1 mod n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := g.AddVertex(ids[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCycle, ids[i], err)
			}
		}
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			w := cfg.weightFn(i)
			if err := g.AddEdge(ids[i], ids[j], w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodCycle, ids[i], ids[j], err)
			}
		}
		return nil
	}
}
