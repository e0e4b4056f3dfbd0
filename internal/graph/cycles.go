package graph

import (
	"fmt"
	"strings"
)

// CycleResult reports whether the dependency relation is acyclic. An empty
// error list with Valid set signals a DAG.
type CycleResult struct {
	Valid  bool
	Errors []string
}

// DetectCycles searches the graph depth-first for a circular dependency
// chain. It stops at the first cycle found and reports it as a formatted
// chain ("a -> b -> a"); it never enumerates further cycles. The traversal
// uses an explicit stack rather than recursion so pathological graphs cannot
// exhaust the call stack, and visits roots and edges in identifier order so
// the reported chain is stable.
func DetectCycles(g Graph) CycleResult {
	visited := make(map[string]bool, len(g))
	onPath := make(map[string]bool, len(g))

	for _, root := range g.IDs() {
		if visited[root] {
			continue
		}
		if chain, found := findCycleFrom(g, root, visited, onPath); found {
			return CycleResult{
				Valid: false,
				Errors: []string{
					fmt.Sprintf("circular dependency detected: %s", strings.Join(chain, " -> ")),
				},
			}
		}
	}

	return CycleResult{Valid: true}
}

// frame is one suspended node in the iterative depth-first search.
type frame struct {
	id   string
	deps []string
	next int
}

// findCycleFrom explores the component reachable from root along forward
// edges. When it meets a node already on the in-progress path it returns the
// path slice from that node's first occurrence through the current node,
// closed with the repeated node.
func findCycleFrom(g Graph, root string, visited, onPath map[string]bool) ([]string, bool) {
	visited[root] = true
	onPath[root] = true
	stack := []frame{{id: root, deps: sortedSet(g[root].DependsOn)}}
	path := []string{root}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.next >= len(top.deps) {
			onPath[top.id] = false
			path = path[:len(path)-1]
			stack = stack[:len(stack)-1]
			continue
		}

		dep := top.deps[top.next]
		top.next++

		if onPath[dep] {
			start := 0
			for i, id := range path {
				if id == dep {
					start = i
					break
				}
			}
			chain := append(append([]string{}, path[start:]...), dep)
			return chain, true
		}

		if !visited[dep] {
			visited[dep] = true
			onPath[dep] = true
			path = append(path, dep)
			stack = append(stack, frame{id: dep, deps: sortedSet(g[dep].DependsOn)})
		}
	}

	return nil, false
}
