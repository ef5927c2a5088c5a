package dfs

import (
	"github.com/nileshpatra/gubbins/core"
)

// DFS performs a depth-first traversal of g starting at startID. With
// WithFullTraversal, it also restarts from any vertex left unvisited by
// the first tree, covering disconnected components.
//
// Complexity: O(V+E) plus hook overhead.
func DFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.fullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	visited := make(map[string]bool)
	res := &Result{Parent: make(map[string]string)}

	var walk func(id string) error
	walk = func(id string) error {
		select {
		case <-o.ctx.Done():
			return o.ctx.Err()
		default:
		}
		visited[id] = true
		res.PreOrder = append(res.PreOrder, id)
		if o.onVisit != nil {
			if err := o.onVisit(id); err != nil {
				return err
			}
		}
		nbs, err := g.Neighbors(id)
		if err != nil {
			return err
		}
		for _, e := range nbs {
			if visited[e.To] {
				continue
			}
			res.Parent[e.To] = id
			if err := walk(e.To); err != nil {
				return err
			}
		}
		res.PostOrder = append(res.PostOrder, id)
		if o.onExit != nil {
			if err := o.onExit(id); err != nil {
				return err
			}
		}
		return nil
	}

	if o.fullTraversal {
		for _, id := range g.Vertices() {
			if !visited[id] {
				if err := walk(id); err != nil {
					return res, err
				}
			}
		}
	} else {
		if err := walk(startID); err != nil {
			return res, err
		}
	}

	return res, nil
}
