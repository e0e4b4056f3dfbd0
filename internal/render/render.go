// Package render produces the human-readable and diagram views of compiled
// plans. It is a thin presentation layer; all plan semantics live in the
// plan and state packages.
package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/dpsmith/dpsmith/internal/dp"
	"github.com/dpsmith/dpsmith/internal/plan"
	"github.com/dpsmith/dpsmith/internal/state"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	levelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	mutedStyle     = lipgloss.NewStyle().Faint(true)
)

// Renderer writes plan views to a single output writer.
type Renderer struct {
	w       io.Writer
	noColor bool
}

// New creates a Renderer. With noColor set, all lipgloss styling is dropped.
func New(w io.Writer, noColor bool) *Renderer {
	return &Renderer{w: w, noColor: noColor}
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if r.noColor {
		return text
	}
	return s.Render(text)
}

// Plan writes the leveled plan as an indented table, one block per level.
func (r *Renderer) Plan(p *plan.Yadasmith) {
	fmt.Fprintln(r.w, r.style(titleStyle, fmt.Sprintf("Yadasmith v%s (compiled %s)", p.Version, p.CompiledAt)))
	for _, lvl := range p.Levels {
		fmt.Fprintln(r.w, r.style(levelStyle, fmt.Sprintf("Level %d", lvl.Level)))
		for _, e := range lvl.Entries {
			marker := r.style(pendingStyle, "○")
			if e.Status == plan.StatusCompleted {
				marker = r.style(completedStyle, "●")
			}
			fmt.Fprintf(r.w, "  %s %s %s\n", marker, e.ID, r.style(mutedStyle, e.Ref))
		}
	}
}

// Summary writes the aggregate status line and the next task, if any.
func (r *Renderer) Summary(sum state.Summary) {
	if sum.Total == 0 {
		fmt.Fprintln(r.w, "No compiled plan. Run 'dpsmith compile' first.")
		return
	}

	fmt.Fprintln(r.w, r.style(titleStyle, "Workflow status"))
	fmt.Fprintf(r.w, "  %s %d completed\n", r.style(completedStyle, "●"), sum.Completed)
	fmt.Fprintf(r.w, "  %s %d pending\n", r.style(pendingStyle, "○"), sum.Pending)
	fmt.Fprintf(r.w, "  %d%% complete (%d tasks)\n", sum.PercentComplete, sum.Total)
	if sum.NextTask != "" {
		fmt.Fprintf(r.w, "  next: %s\n", sum.NextTask)
	}
}

// Mermaid writes the dependency graph as a Mermaid flowchart, the diagram
// artifact consumed by documentation tooling. Unresolvable dependency
// references are omitted, matching the graph builder.
func (r *Renderer) Mermaid(records []dp.Prescription) {
	known := make(map[string]bool, len(records))
	for _, rec := range records {
		known[rec.ID] = true
	}

	fmt.Fprintln(r.w, "graph TD")
	for _, rec := range records {
		fmt.Fprintf(r.w, "    %s[\"%s\"]\n", rec.ID, rec.Name)
	}
	for _, rec := range records {
		for _, dep := range rec.DependsOn {
			if !known[dep] {
				continue
			}
			fmt.Fprintf(r.w, "    %s --> %s\n", dep, rec.ID)
		}
	}
}
