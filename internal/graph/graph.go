package graph

import (
	"sort"

	"github.com/dpsmith/dpsmith/internal/dp"
)

// Node wraps one prescription with its dependency edges and the execution
// level the leveler resolves for it. Levels start at 1; zero means
// unresolved.
type Node struct {
	DP *dp.Prescription

	// DependsOn holds forward edges: identifiers this node depends on.
	DependsOn map[string]struct{}

	// Dependents holds backward edges: identifiers depending on this node.
	Dependents map[string]struct{}

	Level int
}

// Graph is a node map keyed by prescription identifier.
type Graph map[string]*Node

// Build converts a set of prescriptions into a graph, wiring a forward edge
// on each dependent and the inverse edge on each dependency. Dependency
// identifiers that do not resolve to a known prescription are skipped here;
// dp.Validate is responsible for surfacing them as errors. Build itself
// never fails.
func Build(records []dp.Prescription) Graph {
	g := make(Graph, len(records))
	for i := range records {
		rec := &records[i]
		g[rec.ID] = &Node{
			DP:         rec,
			DependsOn:  make(map[string]struct{}),
			Dependents: make(map[string]struct{}),
		}
	}

	for id, node := range g {
		for _, dep := range node.DP.DependsOn {
			target, ok := g[dep]
			if !ok {
				continue
			}
			node.DependsOn[dep] = struct{}{}
			target.Dependents[id] = struct{}{}
		}
	}

	return g
}

// IDs returns all node identifiers in ascending byte order. Traversals start
// from this order so their results are reproducible across runs.
func (g Graph) IDs() []string {
	ids := make([]string, 0, len(g))
	for id := range g {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
