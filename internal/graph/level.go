package graph

import "sort"

// AssignLevels resolves an execution level for every node and returns the
// nodes grouped by level. A node with no dependencies sits at level 1;
// otherwise its level is one past the highest level among its dependencies,
// so a dependent always lands strictly above everything it depends on.
//
// The pass is a Kahn-style propagation over in-degrees: zero-in-degree nodes
// seed the queue at level 1, and each dequeued node pushes max-level updates
// along its backward edges. Callers must have established acyclicity first;
// on a cyclic graph the nodes trapped in the cycle never drain.
func AssignLevels(g Graph) map[int][]string {
	indegree := make(map[string]int, len(g))
	var queue []string

	for _, id := range g.IDs() {
		node := g[id]
		indegree[id] = len(node.DependsOn)
		if indegree[id] == 0 {
			node.Level = 1
			queue = append(queue, id)
		}
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		node := g[id]

		for _, depID := range sortedSet(node.Dependents) {
			dependent := g[depID]
			if node.Level+1 > dependent.Level {
				dependent.Level = node.Level + 1
			}
			indegree[depID]--
			if indegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	byLevel := make(map[int][]string)
	for id, node := range g {
		byLevel[node.Level] = append(byLevel[node.Level], id)
	}
	for _, ids := range byLevel {
		sort.Strings(ids)
	}
	return byLevel
}
