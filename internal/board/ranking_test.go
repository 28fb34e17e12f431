package board

import (
	"testing"

	"github.com/mwhitman/draftboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rb(name string, pts float64) *domain.Player {
	return &domain.Player{Name: name, Position: domain.PosRB, ProjectedPts: pts, Status: domain.PlayerAvailable}
}

func TestNewRanking_FiltersAndSorts(t *testing.T) {
	taken := rb("Taken Back", 400)
	taken.Status = domain.PlayerDrafted
	wr := &domain.Player{Name: "Some WR", Position: domain.PosWR, ProjectedPts: 350, Status: domain.PlayerAvailable}

	r := NewRanking(domain.PosRB, []*domain.Player{
		rb("Mid Back", 210),
		taken,
		rb("Best Back", 270),
		wr,
		rb("Deep Back", 150),
	})

	require.Len(t, r.Players, 3)
	assert.Equal(t, "Best Back", r.Players[0].Name)
	assert.Equal(t, "Mid Back", r.Players[1].Name)
	assert.Equal(t, "Deep Back", r.Players[2].Name)
}

func TestRanking_TopIsMaximum(t *testing.T) {
	r := NewRanking(domain.PosRB, []*domain.Player{
		rb("A", 200), rb("B", 260), rb("C", 180),
	})

	top := r.Top()
	require.NotNil(t, top)
	assert.Equal(t, "B", top.Name)
	for _, p := range r.Players {
		assert.LessOrEqual(t, p.ProjectedPts, top.ProjectedPts)
	}
}

func TestRanking_LowerAtSlip(t *testing.T) {
	r := NewRanking(domain.PosRB, []*domain.Player{
		rb("First", 260), rb("Second", 240), rb("Third", 220),
	})

	// Slip 0: lower is the top player.
	lower := r.Lower(0)
	require.NotNil(t, lower)
	assert.Equal(t, "First", lower.Name)

	// Slip 2: lower is rank 3 (1-based).
	lower = r.Lower(2)
	require.NotNil(t, lower)
	assert.Equal(t, "Third", lower.Name)

	// Slip past the end: undefined.
	assert.Nil(t, r.Lower(3))
	assert.Nil(t, r.Lower(-1))
}

func TestRanking_Dropoff(t *testing.T) {
	r := NewRanking(domain.PosRB, []*domain.Player{
		rb("First", 260), rb("Second", 240), rb("Third", 220),
	})

	drop, ok := r.Dropoff(2)
	require.True(t, ok)
	assert.InDelta(t, 40, drop, 0.001)

	drop, ok = r.Dropoff(0)
	require.True(t, ok)
	assert.InDelta(t, 0, drop, 0.001)

	_, ok = r.Dropoff(5)
	assert.False(t, ok)
}

func TestRanking_Empty(t *testing.T) {
	r := NewRanking(domain.PosK, nil)
	assert.Nil(t, r.Top())
	assert.Nil(t, r.Lower(0))
	_, ok := r.Dropoff(0)
	assert.False(t, ok)
}

// Removing one player from the pool must not change any other player's
// reported points or relative order.
func TestRanking_RemovalLeavesOthersUnchanged(t *testing.T) {
	pool := []*domain.Player{
		rb("First", 260), rb("Second", 240), rb("Third", 220), rb("Fourth", 200),
	}
	before := NewRanking(domain.PosRB, pool)

	// Drop the second-ranked player.
	trimmed := make([]*domain.Player, 0, len(pool)-1)
	for _, p := range pool {
		if p.Name != "Second" {
			trimmed = append(trimmed, p)
		}
	}
	after := NewRanking(domain.PosRB, trimmed)

	pointsBefore := make(map[string]float64)
	for _, p := range before.Players {
		pointsBefore[p.Name] = p.ProjectedPts
	}
	for _, p := range after.Players {
		assert.Equal(t, pointsBefore[p.Name], p.ProjectedPts, "points for %s changed on removal", p.Name)
	}

	// Remaining order is the original order minus the removed player.
	require.Len(t, after.Players, 3)
	assert.Equal(t, "First", after.Players[0].Name)
	assert.Equal(t, "Third", after.Players[1].Name)
	assert.Equal(t, "Fourth", after.Players[2].Name)
}
