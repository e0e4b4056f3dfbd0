package plan

import (
	"sort"
	"time"

	"github.com/dpsmith/dpsmith/internal/dp"
	"github.com/dpsmith/dpsmith/internal/graph"
)

// ResolveResult carries the outcome of one resolve pass. Plan is nil
// whenever Errors is non-empty.
type ResolveResult struct {
	Plan     *Yadasmith
	Errors   []string
	Warnings []string
}

// Valid reports whether the pass produced a plan.
func (r ResolveResult) Valid() bool {
	return len(r.Errors) == 0
}

// Resolve compiles a set of prescriptions into a Yadasmith. It runs
// structural validation, graph construction, cycle detection, leveling and
// compilation in sequence, and short-circuits before compiling when any
// structural or cycle error is present.
func Resolve(records []dp.Prescription) ResolveResult {
	vr := dp.Validate(records)
	result := ResolveResult{Errors: vr.Errors, Warnings: vr.Warnings}

	g := graph.Build(records)
	if cr := graph.DetectCycles(g); !cr.Valid {
		result.Errors = append(result.Errors, cr.Errors...)
	}
	if len(result.Errors) > 0 {
		return result
	}

	result.Plan = Compile(g, graph.AssignLevels(g))
	return result
}

// Compile assembles the leveled graph into an ordered plan. Entries within a
// level sort by priority descending, ties broken by identifier ascending
// using plain byte-wise comparison — locale collation would make the order
// environment-dependent. Every entry starts at pending; the compiled plan
// never inherits status from a previous one.
func Compile(g graph.Graph, byLevel map[int][]string) *Yadasmith {
	levelNums := make([]int, 0, len(byLevel))
	for n := range byLevel {
		levelNums = append(levelNums, n)
	}
	sort.Ints(levelNums)

	levels := make([]Level, 0, len(levelNums))
	for _, n := range levelNums {
		entries := make([]Entry, 0, len(byLevel[n]))
		for _, id := range byLevel[n] {
			entries = append(entries, Entry{
				Ref:    g[id].DP.Name,
				ID:     id,
				Status: StatusPending,
				Level:  n,
			})
		}

		sort.SliceStable(entries, func(i, j int) bool {
			pi := g[entries[i].ID].DP.Priority
			pj := g[entries[j].ID].DP.Priority
			if pi != pj {
				return pi > pj
			}
			return entries[i].ID < entries[j].ID
		})

		levels = append(levels, Level{Level: n, Entries: entries})
	}

	return &Yadasmith{
		Version:    Version,
		CompiledAt: time.Now().UTC().Format(time.RFC3339),
		Levels:     levels,
	}
}
