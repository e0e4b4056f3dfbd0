package state

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/dpsmith/dpsmith/internal/log"
	"github.com/dpsmith/dpsmith/internal/plan"
	"github.com/dpsmith/dpsmith/internal/ux"
)

// Store persists the compiled plan for one project root and applies status
// mutations to it. Every mutation reads the full plan, changes it in memory
// and rewrites the whole file; there is no locking, so concurrent writers
// from separate processes can race (accepted single-writer limitation).
type Store struct {
	root   string
	logger *log.Logger
}

// NewStore creates a store rooted at the given project directory.
func NewStore(root string) *Store {
	return &Store{
		root:   root,
		logger: log.DefaultLogger().With("component", "state"),
	}
}

// Result reports the outcome of a mark operation. Expected failures (unknown
// identifier, missing plan) land in Errors; only storage I/O faults travel
// as Go errors.
type Result struct {
	Valid  bool
	Errors []string
}

// Summary aggregates plan status. Pending is derived as Total minus
// Completed, so entries parked in in_progress or skipped count as not done.
type Summary struct {
	Total           int    `json:"total"`
	Completed       int    `json:"completed"`
	Pending         int    `json:"pending"`
	PercentComplete int    `json:"percent_complete"`
	NextTask        string `json:"next_task,omitempty"`
}

func (s *Store) planPath() string {
	return ux.NewPathDefaults().PlanFile(s.root)
}

// Write serializes the plan, overwriting any prior content.
func (s *Store) Write(p *plan.Yadasmith) error {
	if p == nil {
		return fmt.Errorf("plan is nil")
	}

	path := s.planPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create plan directory: %w", err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write plan file: %w", err)
	}

	s.logger.Debug("plan written", "path", path, "entries", p.TotalEntries())
	return nil
}

// Read deserializes the stored plan. An absent plan is not an error; it
// comes back as (nil, nil).
func (s *Store) Read() (*plan.Yadasmith, error) {
	data, err := os.ReadFile(s.planPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read plan file: %w", err)
	}

	var p plan.Yadasmith
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshal plan: %w", err)
	}
	return &p, nil
}

// Has reports whether a compiled plan exists for this root.
func (s *Store) Has() bool {
	_, err := os.Stat(s.planPath())
	return err == nil
}

// MarkOne sets exactly one entry to completed, leaving every other entry
// untouched, and refreshes the compilation timestamp.
func (s *Store) MarkOne(id string) (Result, error) {
	p, err := s.Read()
	if err != nil {
		return Result{}, err
	}
	if p == nil {
		return Result{Errors: []string{s.noPlanMessage()}}, nil
	}

	entry := p.TaskByID(id)
	if entry == nil {
		return Result{Errors: []string{fmt.Sprintf("task not found: %s", id)}}, nil
	}

	entry.Status = plan.StatusCompleted
	p.CompiledAt = nowStamp()
	if err := s.Write(p); err != nil {
		return Result{}, err
	}
	return Result{Valid: true}, nil
}

// MarkThrough resynchronizes the whole plan to a single frontier: every
// entry up to and including the target, in flattened level order, is forced
// to completed; every completed entry strictly after the target reverts to
// pending. Entries after the target that were already pending stay as they
// are, as do in_progress and skipped ones.
func (s *Store) MarkThrough(id string) (Result, error) {
	p, err := s.Read()
	if err != nil {
		return Result{}, err
	}
	if p == nil {
		return Result{Errors: []string{s.noPlanMessage()}}, nil
	}
	if p.TaskByID(id) == nil {
		return Result{Errors: []string{fmt.Sprintf("task not found: %s", id)}}, nil
	}

	passedTarget := false
	for i := range p.Levels {
		entries := p.Levels[i].Entries
		for j := range entries {
			e := &entries[j]
			if !passedTarget {
				e.Status = plan.StatusCompleted
				if e.ID == id {
					passedTarget = true
				}
				continue
			}
			if e.Status == plan.StatusCompleted {
				e.Status = plan.StatusPending
			}
		}
	}

	p.CompiledAt = nowStamp()
	if err := s.Write(p); err != nil {
		return Result{}, err
	}
	return Result{Valid: true}, nil
}

// ResetAll reverts every completed entry to pending; other statuses stay
// untouched. A missing plan is a warning, never an error.
func (s *Store) ResetAll() ([]string, error) {
	p, err := s.Read()
	if err != nil {
		return nil, err
	}
	if p == nil {
		s.logger.Warn("reset requested without a compiled plan", "root", s.root)
		return []string{s.noPlanMessage() + "; nothing to reset"}, nil
	}

	for i := range p.Levels {
		entries := p.Levels[i].Entries
		for j := range entries {
			if entries[j].Status == plan.StatusCompleted {
				entries[j].Status = plan.StatusPending
			}
		}
	}

	p.CompiledAt = nowStamp()
	if err := s.Write(p); err != nil {
		return nil, err
	}
	return nil, nil
}

// Status computes the aggregate summary. A missing plan yields a zeroed
// summary rather than failing.
func (s *Store) Status() (Summary, error) {
	p, err := s.Read()
	if err != nil {
		return Summary{}, err
	}
	if p == nil {
		return Summary{}, nil
	}

	sum := Summary{
		Total:     p.TotalEntries(),
		Completed: p.CountStatus(plan.StatusCompleted),
	}
	sum.Pending = sum.Total - sum.Completed
	if sum.Total > 0 {
		sum.PercentComplete = int(math.Round(float64(sum.Completed) / float64(sum.Total) * 100))
	}

	// Next task approximates the frontier: the first entry in flattened
	// order that is not yet completed.
	for _, id := range p.FlattenedOrder() {
		if e := p.TaskByID(id); e != nil && e.Status != plan.StatusCompleted {
			sum.NextTask = e.ID
			break
		}
	}

	return sum, nil
}

func (s *Store) noPlanMessage() string {
	return fmt.Sprintf("no compiled plan found at %s", s.planPath())
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
