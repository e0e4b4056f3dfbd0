package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoLevelPlan() *Yadasmith {
	return &Yadasmith{
		Version:    Version,
		CompiledAt: "2026-01-01T00:00:00Z",
		Levels: []Level{
			{Level: 1, Entries: []Entry{
				{Ref: "Alpha", ID: "a", Status: StatusCompleted, Level: 1},
			}},
			{Level: 2, Entries: []Entry{
				{Ref: "Beta", ID: "b", Status: StatusPending, Level: 2},
				{Ref: "Gamma", ID: "c", Status: StatusPending, Level: 2},
			}},
		},
	}
}

func TestFlattenedOrder(t *testing.T) {
	p := twoLevelPlan()
	assert.Equal(t, []string{"a", "b", "c"}, p.FlattenedOrder())
}

func TestTaskByIDAliasesPlan(t *testing.T) {
	p := twoLevelPlan()

	entry := p.TaskByID("b")
	require.NotNil(t, entry)
	assert.Equal(t, "Beta", entry.Ref)

	entry.Status = StatusCompleted
	assert.Equal(t, StatusCompleted, p.Levels[1].Entries[0].Status)
}

func TestTaskByIDAbsent(t *testing.T) {
	assert.Nil(t, twoLevelPlan().TaskByID("ghost"))
}

func TestCounts(t *testing.T) {
	p := twoLevelPlan()
	assert.Equal(t, 3, p.TotalEntries())
	assert.Equal(t, 1, p.CountStatus(StatusCompleted))
	assert.Equal(t, 2, p.CountStatus(StatusPending))
	assert.Equal(t, 0, p.CountStatus(StatusSkipped))
}
