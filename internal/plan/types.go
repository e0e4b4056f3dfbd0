package plan

// Status is the lifecycle state of one plan entry. The mark and reset
// operations only ever move entries between pending and completed;
// in_progress and skipped belong to the vocabulary for external status
// producers.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusSkipped    Status = "skipped"
)

// Version is the fixed tag written into every compiled plan.
const Version = "1"

// Yadasmith is the compiled execution plan: a leveled, deterministically
// ordered arrangement of every prescription, plus the live completion status
// tracked against it. Once written it is the sole source of truth for task
// status; recompiling always restarts every entry at pending.
type Yadasmith struct {
	Version    string  `json:"version"`
	CompiledAt string  `json:"compiled_at"`
	Levels     []Level `json:"levels"`
}

// Level groups the entries that can run once every lower level is done.
type Level struct {
	Level   int     `json:"level"`
	Entries []Entry `json:"entries"`
}

// Entry is one scheduled prescription. Level is a denormalized copy of the
// enclosing level number for convenient lookup.
type Entry struct {
	Ref    string `json:"ref"`
	ID     string `json:"id"`
	Status Status `json:"status"`
	Level  int    `json:"level"`
}

// FlattenedOrder returns entry identifiers in execution order: level
// ascending, then the compiled intra-level order.
func (y *Yadasmith) FlattenedOrder() []string {
	var ids []string
	for _, lvl := range y.Levels {
		for _, e := range lvl.Entries {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// TaskByID looks an entry up across all levels. The returned pointer aliases
// the plan, so callers can mutate the entry in place. Nil means absent.
func (y *Yadasmith) TaskByID(id string) *Entry {
	for i := range y.Levels {
		entries := y.Levels[i].Entries
		for j := range entries {
			if entries[j].ID == id {
				return &entries[j]
			}
		}
	}
	return nil
}

// TotalEntries counts entries across all levels.
func (y *Yadasmith) TotalEntries() int {
	n := 0
	for _, lvl := range y.Levels {
		n += len(lvl.Entries)
	}
	return n
}

// CountStatus counts entries currently in the given status.
func (y *Yadasmith) CountStatus(status Status) int {
	n := 0
	for _, lvl := range y.Levels {
		for _, e := range lvl.Entries {
			if e.Status == status {
				n++
			}
		}
	}
	return n
}
